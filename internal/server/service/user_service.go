package service

import (
	"context"
	"mime/multipart"

	"techblog/internal/ports/models"
	"techblog/internal/server/repository"
)

// AvatarStore uploads a user avatar and returns its URL.
type AvatarStore interface {
	UploadAvatar(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type UserService struct {
	repo    *repository.UserRepository
	entries *repository.ReputationRepository
	avatars AvatarStore
}

func NewUserService(repo *repository.UserRepository, entries *repository.ReputationRepository, avatars AvatarStore) *UserService {
	return &UserService{repo: repo, entries: entries, avatars: avatars}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// SetAvatar uploads the image and stores its URL on the user record.
func (s *UserService) SetAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	url, err := s.avatars.UploadAvatar(ctx, file)
	if err != nil {
		return "", err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	user.AvatarURL = url
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

// ReputationHistory returns the user's most recent ledger entries.
func (s *UserService) ReputationHistory(ctx context.Context, userID uint, limit int) ([]models.ReputationEntry, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return s.entries.ListByUser(ctx, userID, limit)
}
