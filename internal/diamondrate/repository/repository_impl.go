package repository

import (
	"context"
	"errors"

	"github.com/aurelia-jewels/aurelia/internal/diamondrate/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, rate *domain.DiamondRate) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "clarity"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"price_per_carat", "is_active", "updated_at",
		}),
	}).Create(rate).Error
}

func (r *repo) FindByClarity(ctx context.Context, db *gorm.DB, clarity string) (*domain.DiamondRate, error) {
	var rate domain.DiamondRate
	err := db.WithContext(ctx).Where("clarity = ?", clarity).First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *repo) FindActiveByClarity(ctx context.Context, db *gorm.DB, clarity string) (*domain.DiamondRate, error) {
	var rate domain.DiamondRate
	err := db.WithContext(ctx).
		Where("clarity = ? AND is_active = ?", clarity, true).
		First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.DiamondRate, error) {
	var items []domain.DiamondRate
	err := db.WithContext(ctx).Order("clarity ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
