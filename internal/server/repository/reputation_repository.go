package repository

import (
	"context"
	"fmt"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"

	"gorm.io/gorm"
)

type ReputationRepository struct {
	db *gorm.DB
}

func NewReputationRepository(db *gorm.DB) *ReputationRepository {
	return &ReputationRepository{db: db}
}

func (r *ReputationRepository) CreateEntry(ctx context.Context, entry *models.ReputationEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("%w: create reputation entry: %v", apperr.ErrStorage, err)
	}
	return nil
}

// NetApplied sums the applied amounts of a user's entries for one target
// across the given reasons. Credits are positive and revocations
// negative, so the sum is the reputation the target still holds.
func (r *ReputationRepository) NetApplied(ctx context.Context, userID uint, targetType, targetID string, reasons []string) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&models.ReputationEntry{}).
		Select("COALESCE(SUM(applied), 0)").
		Where("user_id = ? AND target_type = ? AND target_id = ? AND reason IN ?", userID, targetType, targetID, reasons).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("%w: sum applied reputation: %v", apperr.ErrStorage, err)
	}
	return total, nil
}

func (r *ReputationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.ReputationEntry, error) {
	var entries []models.ReputationEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list reputation entries: %v", apperr.ErrStorage, err)
	}
	return entries, nil
}
