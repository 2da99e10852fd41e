package service

import (
	"context"
	"fmt"
	"time"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUserStore is the slice of the user repository auth needs.
type AuthUserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type AuthService struct {
	repo      AuthUserStore
	jwtSecret string
	jwtExpire time.Duration
}

func NewAuthService(repo AuthUserStore, secret string, expire time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpire: expire,
	}
}

// Register handles user registration
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		IsActive:  true,
		LastLogin: time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login handles user authentication
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthorized)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: account disabled", apperr.ErrForbidden)
	}

	// Update last login
	user.LastLogin = time.Now().UTC()
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"admin":    user.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(s.jwtExpire).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}
