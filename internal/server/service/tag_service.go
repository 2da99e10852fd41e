package service

import (
	"context"
	"strings"

	"techblog/internal/ports/models"
	"techblog/internal/server/repository"
)

type TagService struct {
	repo *repository.TagRepository
}

func NewTagService(repo *repository.TagRepository) *TagService {
	return &TagService{repo: repo}
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.repo.List(ctx)
}

// DefineTag sets or updates a tag definition (admin curation).
func (s *TagService) DefineTag(ctx context.Context, name, definition string) error {
	tag := &models.Tag{
		Name:       strings.ToLower(strings.TrimSpace(name)),
		Definition: definition,
	}
	return s.repo.Upsert(ctx, tag)
}
