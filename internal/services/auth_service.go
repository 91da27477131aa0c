package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Chandra-006/User-Management/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	userCache   domain.UserCache
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	accessTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	userCache domain.UserCache,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		userCache:   userCache,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		accessTTL:   accessTTL,
	}
}

// Register implements domain.AuthService. The pre-checks give precise
// duplicate errors; a concurrent registration racing past them still loses
// against the unique indexes, which Create surfaces the same way.
func (s *AuthServiceImpl) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.userRepo.FindByPhone(ctx, in.Phone); err == nil {
		return nil, domain.ErrPhoneTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hashedPassword,
		ProfileImage: in.ProfileImage,
		Address:      in.Address,
		State:        in.State,
		City:         in.City,
		Country:      in.Country,
		Pincode:      in.Pincode,
		Role:         domain.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken),
			errors.Is(err, domain.ErrPhoneTaken),
			errors.Is(err, domain.ErrDuplicateIdentity):
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService. Unknown identifier and wrong password
// both return ErrInvalidCredentials so the response carries no
// user-enumeration signal.
func (s *AuthServiceImpl) Login(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// One active session per user: storing the new refresh token revokes any
	// previous session's token.
	if err := s.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	s.invalidateCache(ctx, user.ID)
	user.RefreshToken = refreshToken

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Refresh implements domain.AuthService. Rotation is single-use: the stored
// token is swapped with a conditional write, so a superseded or concurrently
// rotated token always fails with ErrInvalidRefreshToken.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.RefreshToken != refreshToken {
		// A verified token that no longer matches the stored one means a
		// superseded token is being replayed.
		log.Printf("REFRESH_TOKEN_REUSE: user_id=%d timestamp=%s",
			user.ID, time.Now().UTC().Format(time.RFC3339))
		return nil, domain.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	newRefreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.userRepo.RotateRefreshToken(ctx, user.ID, refreshToken, newRefreshToken); err != nil {
		if errors.Is(err, domain.ErrInvalidRefreshToken) {
			// Lost a concurrent rotation race; the presented token is spent.
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	s.invalidateCache(ctx, user.ID)
	user.RefreshToken = newRefreshToken

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// invalidateCache drops the cached record after a mutation; cache failures
// are logged, never surfaced.
func (s *AuthServiceImpl) invalidateCache(ctx context.Context, userID uint) {
	if s.userCache == nil {
		return
	}
	if err := s.userCache.Invalidate(ctx, userID); err != nil {
		log.Printf("cache invalidate failed: user_id=%d error=%v", userID, err)
	}
}
