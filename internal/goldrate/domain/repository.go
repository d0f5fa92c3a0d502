package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Upsert(ctx context.Context, db *gorm.DB, rate *GoldRate) error
	FindByPurity(ctx context.Context, db *gorm.DB, purity int) (*GoldRate, error)
	FindActiveByPurity(ctx context.Context, db *gorm.DB, purity int) (*GoldRate, error)
	List(ctx context.Context, db *gorm.DB) ([]GoldRate, error)
}
