package repository

import (
	"context"
	"errors"
	"fmt"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// duplicateKey reports whether err is a unique-constraint violation:
// gorm's translated sentinel, or the raw MySQL 1062 in case the
// connection was opened without error translation.
func duplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if duplicateKey(err) {
			return fmt.Errorf("%w: username or email already taken", apperr.ErrConflict)
		}
		return fmt.Errorf("%w: create user: %v", apperr.ErrStorage, err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: find user: %v", apperr.ErrStorage, err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find user: %v", apperr.ErrStorage, err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("%w: update user: %v", apperr.ErrStorage, err)
	}
	return nil
}

// AddReputation adjusts a user's reputation total with a relative SQL
// expression, so concurrent adjustments never overwrite each other.
func (r *UserRepository) AddReputation(ctx context.Context, userID uint, delta int) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("reputation", gorm.Expr("reputation + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("%w: add reputation: %v", apperr.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", apperr.ErrNotFound, userID)
	}
	return nil
}
