package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Chandra-006/User-Management/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint        `gorm:"primaryKey"`
	Name         string      `gorm:"size:100;not null"`
	Email        string      `gorm:"uniqueIndex:idx_users_email;size:255;not null"`
	Phone        string      `gorm:"uniqueIndex:idx_users_phone;size:32;not null"`
	PasswordHash string      `gorm:"column:password;not null"`
	ProfileImage string      `gorm:"size:255"`
	Address      string      `gorm:"size:150"`
	State        string      `gorm:"size:100;not null"`
	City         string      `gorm:"size:100;not null"`
	Country      string      `gorm:"size:100;not null"`
	Pincode      string      `gorm:"size:10"`
	Role         domain.Role `gorm:"type:varchar(16);not null;default:'user';index"`
	RefreshToken string      `gorm:"size:512"`
	CreatedAt    time.Time   `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. Duplicate email/phone races lose
// against the unique indexes and surface as the matching taken error.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return translateDuplicate(err)
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByIdentifier implements domain.UserRepository
func (r *UserRepositoryImpl) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ? OR phone = ?", identifier, identifier).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// likeEscaper makes % and _ in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search implements domain.UserRepository. LOWER(...) LIKE keeps the query
// portable across Postgres and the SQLite test database.
func (r *UserRepositoryImpl) Search(ctx context.Context, query string) ([]*domain.User, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	var dbUsers []DBUser
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\' OR LOWER(state) LIKE ? ESCAPE '\\' OR LOWER(city) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&dbUsers).Error
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Save(dbUser).Error; err != nil {
		return translateDuplicate(err)
	}
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// SetRefreshToken implements domain.UserRepository
func (r *UserRepositoryImpl) SetRefreshToken(ctx context.Context, userID uint, token string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).
		Update("refresh_token", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// RotateRefreshToken implements domain.UserRepository. The WHERE clause on
// the presented token makes rotation a single conditional write: of two
// concurrent refreshes with the same token, exactly one wins.
func (r *UserRepositoryImpl) RotateRefreshToken(ctx context.Context, userID uint, current, next string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND refresh_token = ?", userID, current).
		Update("refresh_token", next)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidRefreshToken
	}
	return nil
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBUser{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// translateDuplicate maps unique-constraint violations onto the domain
// duplicate errors. Postgres reports the violated constraint by name; the
// SQLite fallback (tests) names the column in the error text.
func translateDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return domain.ErrEmailTaken
		case strings.Contains(pgErr.ConstraintName, "phone"):
			return domain.ErrPhoneTaken
		}
		return domain.ErrDuplicateIdentity
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || errors.Is(err, gorm.ErrDuplicatedKey) {
		switch {
		case strings.Contains(msg, "email"):
			return domain.ErrEmailTaken
		case strings.Contains(msg, "phone"):
			return domain.ErrPhoneTaken
		}
		return domain.ErrDuplicateIdentity
	}
	return err
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		ProfileImage: user.ProfileImage,
		Address:      user.Address,
		State:        user.State,
		City:         user.City,
		Country:      user.Country,
		Pincode:      user.Pincode,
		Role:         user.Role,
		RefreshToken: user.RefreshToken,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		Phone:        dbUser.Phone,
		PasswordHash: dbUser.PasswordHash,
		ProfileImage: dbUser.ProfileImage,
		Address:      dbUser.Address,
		State:        dbUser.State,
		City:         dbUser.City,
		Country:      dbUser.Country,
		Pincode:      dbUser.Pincode,
		Role:         dbUser.Role,
		RefreshToken: dbUser.RefreshToken,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
