package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedRole  Role
		expectedError error
	}{
		{
			name:         "user role",
			input:        "user",
			expectedRole: RoleUser,
		},
		{
			name:         "admin role",
			input:        "admin",
			expectedRole: RoleAdmin,
		},
		{
			name:          "unknown role",
			input:         "superuser",
			expectedError: ErrInvalidRole,
		},
		{
			name:          "empty role",
			input:         "",
			expectedError: ErrInvalidRole,
		},
		{
			name:          "case sensitive",
			input:         "Admin",
			expectedError: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tt.expectedRole {
				t.Errorf("expected role %v, got %v", tt.expectedRole, role)
			}
		})
	}
}

func TestRole_String(t *testing.T) {
	if got := RoleUser.String(); got != "user" {
		t.Errorf("expected %q, got %q", "user", got)
	}
	if got := RoleAdmin.String(); got != "admin" {
		t.Errorf("expected %q, got %q", "admin", got)
	}
}

func TestRole_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Role Role `json:"role"`
	}

	data, err := json.Marshal(payload{Role: RoleAdmin})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"role":"admin"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Role != RoleAdmin {
		t.Errorf("expected RoleAdmin, got %v", decoded.Role)
	}

	if err := json.Unmarshal([]byte(`{"role":"root"}`), &decoded); err == nil {
		t.Error("expected error for invalid role, got nil")
	}
}

func TestRole_SQLRoundTrip(t *testing.T) {
	v, err := RoleAdmin.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if v != "admin" {
		t.Errorf("expected %q, got %v", "admin", v)
	}

	var r Role
	if err := r.Scan("admin"); err != nil {
		t.Fatalf("scan string failed: %v", err)
	}
	if r != RoleAdmin {
		t.Errorf("expected RoleAdmin, got %v", r)
	}

	if err := r.Scan([]byte("user")); err != nil {
		t.Fatalf("scan bytes failed: %v", err)
	}
	if r != RoleUser {
		t.Errorf("expected RoleUser, got %v", r)
	}

	if err := r.Scan(42); err == nil {
		t.Error("expected error for unsupported scan type, got nil")
	}
	if err := r.Scan("root"); err == nil {
		t.Error("expected error for unknown role, got nil")
	}
}

func TestRole_ZeroValueIsUser(t *testing.T) {
	var u User
	if u.Role != RoleUser {
		t.Errorf("zero-value role should be RoleUser, got %v", u.Role)
	}
}
