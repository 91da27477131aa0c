package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Chandra-006/User-Management/domain"
	"github.com/Chandra-006/User-Management/internal/mocks"
)

func setupAuthRouter(authSvc domain.AuthService, imageStore domain.ImageStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewAuthHandlers(authSvc, imageStore)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)

	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func registerForm() url.Values {
	return url.Values{
		"name":     {"Asha Rao"},
		"email":    {"asha@example.com"},
		"phone":    {"9876543210"},
		"password": {"secret1"},
		"address":  {"12 MG Road"},
		"state":    {"Karnataka"},
		"city":     {"Bengaluru"},
		"country":  {"India"},
		"pincode":  {"560001"},
	}
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_Register(t *testing.T) {
	tests := []struct {
		name            string
		mutateForm      func(form url.Values)
		setupMocks      func(svc *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "successful registration",
			mutateForm:     func(form url.Values) {},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name:            "missing email",
			mutateForm:      func(form url.Values) { form.Del("email") },
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "",
		},
		{
			name:            "short name",
			mutateForm:      func(form url.Values) { form.Set("name", "Al") },
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name must be at least 3 characters",
		},
		{
			name:            "name with digits",
			mutateForm:      func(form url.Values) { form.Set("name", "Asha123") },
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name must contain only alphabets and spaces",
		},
		{
			name:            "short phone",
			mutateForm:      func(form url.Values) { form.Set("phone", "12345") },
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Phone must be 10-15 digits",
		},
		{
			name:            "short password",
			mutateForm:      func(form url.Values) { form.Set("password", "ab1") },
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Password must be at least 6 characters",
		},
		{
			name:            "password without digit",
			mutateForm:      func(form url.Values) { form.Set("password", "abcdefg") },
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Password must contain at least one number",
		},
		{
			name:            "bad pincode",
			mutateForm:      func(form url.Values) { form.Set("pincode", "12") },
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Pincode must be 4-10 digits",
		},
		{
			name:       "email taken",
			mutateForm: func(form url.Values) {},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.RegisterFunc = func(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
					return nil, domain.ErrEmailTaken
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email already registered",
		},
		{
			name:       "phone taken",
			mutateForm: func(form url.Values) {},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.RegisterFunc = func(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
					return nil, domain.ErrPhoneTaken
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Phone already registered",
		},
		{
			name:       "backend failure",
			mutateForm: func(form url.Values) {},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.RegisterFunc = func(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
					return nil, errors.New("db down")
				}
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			r := setupAuthRouter(svc, mocks.NewMockImageStore())

			form := registerForm()
			tt.mutateForm(form)

			w := postForm(r, "/auth/register", form)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedMessage != "" {
				body := decodeBody(t, w)
				if body["message"] != tt.expectedMessage {
					t.Errorf("expected message %q, got %v", tt.expectedMessage, body["message"])
				}
			}
		})
	}
}

func TestAuthHandlers_RegisterResponseShape(t *testing.T) {
	r := setupAuthRouter(mocks.NewMockAuthService(), mocks.NewMockImageStore())

	w := postForm(r, "/auth/register", registerForm())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Error("expected success true")
	}
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object, got %v", body["user"])
	}
	if user["email"] != "asha@example.com" {
		t.Errorf("unexpected email %v", user["email"])
	}
	if _, present := user["password"]; present {
		t.Error("password leaked in response")
	}
	if _, present := user["role"]; present {
		t.Error("registration response must not echo a role")
	}
}

func TestAuthHandlers_RegisterWithProfileImage(t *testing.T) {
	svc := mocks.NewMockAuthService()
	var gotImage string
	svc.RegisterFunc = func(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
		gotImage = in.ProfileImage
		return &domain.User{ID: 1, Email: in.Email, ProfileImage: in.ProfileImage}, nil
	}

	store := mocks.NewMockImageStore()
	store.SaveFunc = func(ctx context.Context, filename, contentType string, rd io.Reader, size int64) (string, error) {
		return "uploads/stored.png", nil
	}

	r := setupAuthRouter(svc, store)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range registerForm() {
		mw.WriteField(k, v[0])
	}
	part, err := mw.CreateFormFile("profile_image", "avatar.png")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	part.Write([]byte("png bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if gotImage != "uploads/stored.png" {
		t.Errorf("expected stored image path passed to register, got %q", gotImage)
	}
}

func TestAuthHandlers_RegisterRejectsBadImage(t *testing.T) {
	store := mocks.NewMockImageStore()
	store.SaveFunc = func(ctx context.Context, filename, contentType string, rd io.Reader, size int64) (string, error) {
		return "", domain.ErrInvalidImageType
	}

	svc := mocks.NewMockAuthService()
	registered := false
	svc.RegisterFunc = func(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
		registered = true
		return &domain.User{ID: 1}, nil
	}

	r := setupAuthRouter(svc, store)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range registerForm() {
		mw.WriteField(k, v[0])
	}
	part, _ := mw.CreateFormFile("profile_image", "nasty.exe")
	part.Write([]byte("not an image"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
	if registered {
		t.Error("registration must not proceed when the image is rejected")
	}
	body := decodeBody(t, w)
	if body["message"] != "Invalid file type" {
		t.Errorf("unexpected message %v", body["message"])
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name            string
		payload         any
		setupMocks      func(svc *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:    "successful login",
			payload: gin.H{"identifier": "asha@example.com", "password": "secret1"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
					return &domain.AuthResult{
						User:         &domain.User{ID: 1, Email: identifier, Role: domain.RoleUser},
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
						ExpiresIn:    3600,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing fields",
			payload:        gin.H{"identifier": "asha@example.com"},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:            "wrong credentials",
			payload:         gin.H{"identifier": "asha@example.com", "password": "wrong"},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid credentials",
		},
		{
			name:    "backend failure",
			payload: gin.H{"identifier": "asha@example.com", "password": "secret1"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
					return nil, errors.New("db down")
				}
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			r := setupAuthRouter(svc, mocks.NewMockImageStore())

			w := postJSON(r, "/auth/login", tt.payload)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedMessage != "" {
				body := decodeBody(t, w)
				if body["message"] != tt.expectedMessage {
					t.Errorf("expected message %q, got %v", tt.expectedMessage, body["message"])
				}
			}
			if tt.expectedStatus == http.StatusOK {
				body := decodeBody(t, w)
				if body["accessToken"] != "access-token" || body["refreshToken"] != "refresh-token" {
					t.Errorf("unexpected tokens in %v", body)
				}
				if body["expiresIn"] != float64(3600) {
					t.Errorf("expected expiresIn 3600, got %v", body["expiresIn"])
				}
				user, ok := body["user"].(map[string]any)
				if !ok {
					t.Fatalf("expected user object, got %v", body["user"])
				}
				if user["role"] != "user" {
					t.Errorf("expected role serialized as string, got %v", user["role"])
				}
			}
		})
	}
}

func TestAuthHandlers_Refresh(t *testing.T) {
	tests := []struct {
		name            string
		payload         any
		setupMocks      func(svc *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:    "successful rotation",
			payload: gin.H{"refreshToken": "current-token"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.RefreshFunc = func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
					return &domain.AuthResult{
						User:         &domain.User{ID: 1},
						AccessToken:  "new-access",
						RefreshToken: "new-refresh",
						ExpiresIn:    3600,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "missing token",
			payload:         gin.H{},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Refresh token is required",
		},
		{
			name:            "invalid token",
			payload:         gin.H{"refreshToken": "spent-token"},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid or expired refresh token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			r := setupAuthRouter(svc, mocks.NewMockImageStore())

			w := postJSON(r, "/auth/refresh", tt.payload)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedMessage != "" {
				body := decodeBody(t, w)
				if body["message"] != tt.expectedMessage {
					t.Errorf("expected message %q, got %v", tt.expectedMessage, body["message"])
				}
			}
			if tt.expectedStatus == http.StatusOK {
				body := decodeBody(t, w)
				if body["accessToken"] != "new-access" || body["refreshToken"] != "new-refresh" {
					t.Errorf("unexpected tokens in %v", body)
				}
				if body["expiresIn"] != float64(3600) {
					t.Errorf("expected expiresIn 3600, got %v", body["expiresIn"])
				}
			}
		})
	}
}
