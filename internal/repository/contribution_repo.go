package repository

import (
	"context"

	"anoa.com/greencampus/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContributionRepository interface {
	Create(ctx context.Context, contribution *model.Contribution) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Contribution, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type contributionRepository struct {
	db *gorm.DB
}

func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

func (r *contributionRepository) Create(ctx context.Context, contribution *model.Contribution) error {
	return r.db.WithContext(ctx).Create(contribution).Error
}

func (r *contributionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Contribution, error) {
	var contributions []*model.Contribution
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contributions).Error; err != nil {
		return nil, err
	}
	return contributions, nil
}

func (r *contributionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Contribution{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
