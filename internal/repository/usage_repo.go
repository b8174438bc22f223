package repository

import (
	"context"

	"anoa.com/greencampus/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageRepository interface {
	// Insert writes a usage record unless one already exists for the same
	// date. It reports whether a row was actually inserted. The conflict is
	// resolved by the database, so concurrent admins cannot both win.
	Insert(ctx context.Context, usage *model.ResourceUsage) (bool, error)
	FindAllOrdered(ctx context.Context) ([]*model.ResourceUsage, error)
	Count(ctx context.Context) (int64, error)
}

type usageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) Insert(ctx context.Context, usage *model.ResourceUsage) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoNothing: true,
		}).
		Create(usage)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *usageRepository) FindAllOrdered(ctx context.Context) ([]*model.ResourceUsage, error) {
	var records []*model.ResourceUsage
	if err := r.db.WithContext(ctx).Order("date").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *usageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ResourceUsage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
