package repository

import (
	"context"
	"errors"

	"github.com/aurelia-jewels/aurelia/internal/goldrate/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, rate *domain.GoldRate) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "purity"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"price_per_10g", "is_active", "updated_at",
		}),
	}).Create(rate).Error
}

func (r *repo) FindByPurity(ctx context.Context, db *gorm.DB, purity int) (*domain.GoldRate, error) {
	var rate domain.GoldRate
	err := db.WithContext(ctx).Where("purity = ?", purity).First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *repo) FindActiveByPurity(ctx context.Context, db *gorm.DB, purity int) (*domain.GoldRate, error) {
	var rate domain.GoldRate
	err := db.WithContext(ctx).
		Where("purity = ? AND is_active = ?", purity, true).
		First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.GoldRate, error) {
	var items []domain.GoldRate
	err := db.WithContext(ctx).Order("purity ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
