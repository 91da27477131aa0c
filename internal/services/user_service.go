package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Chandra-006/User-Management/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	userCache   domain.UserCache
	passwordSvc domain.PasswordService
}

// NewUserService creates a new user service
func NewUserService(
	userRepo domain.UserRepository,
	userCache domain.UserCache,
	passwordSvc domain.PasswordService,
) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		userCache:   userCache,
		passwordSvc: passwordSvc,
	}
}

// List implements domain.UserService
func (s *UserServiceImpl) List(ctx context.Context, search string) ([]*domain.User, error) {
	users, err := s.userRepo.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// GetByID implements domain.UserService with a read-through cache: a hit
// skips the database, a miss populates the cache on the way out.
func (s *UserServiceImpl) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if s.userCache != nil {
		user, err := s.userCache.Get(ctx, id)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("cache get failed: user_id=%d error=%v", id, err)
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.userCache != nil {
		if err := s.userCache.Set(ctx, user); err != nil {
			log.Printf("cache set failed: user_id=%d error=%v", id, err)
		}
	}
	return user, nil
}

// Update implements domain.UserService. Nil fields are left untouched; the
// password is re-hashed only when the supplied value meets the minimum
// length policy, otherwise the stored hash stays as it is.
func (s *UserServiceImpl) Update(ctx context.Context, id uint, upd domain.UserUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Address != nil {
		user.Address = *upd.Address
	}
	if upd.State != nil {
		user.State = *upd.State
	}
	if upd.City != nil {
		user.City = *upd.City
	}
	if upd.Country != nil {
		user.Country = *upd.Country
	}
	if upd.Pincode != nil {
		user.Pincode = *upd.Pincode
	}
	if upd.ProfileImage != nil {
		user.ProfileImage = *upd.ProfileImage
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.Password != nil && len(*upd.Password) >= domain.MinPasswordLength {
		hashed, err := s.passwordSvc.Hash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken),
			errors.Is(err, domain.ErrPhoneTaken),
			errors.Is(err, domain.ErrDuplicateIdentity):
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	s.invalidateCache(ctx, id)

	return user, nil
}

// Delete implements domain.UserService. An authenticated caller can never
// remove their own record through this path.
func (s *UserServiceImpl) Delete(ctx context.Context, id, callerID uint) error {
	if id == callerID {
		return domain.ErrSelfDeletion
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, id)
	return nil
}

func (s *UserServiceImpl) invalidateCache(ctx context.Context, userID uint) {
	if s.userCache == nil {
		return
	}
	if err := s.userCache.Invalidate(ctx, userID); err != nil {
		log.Printf("cache invalidate failed: user_id=%d error=%v", userID, err)
	}
}
