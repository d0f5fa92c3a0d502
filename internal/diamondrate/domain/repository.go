package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Upsert(ctx context.Context, db *gorm.DB, rate *DiamondRate) error
	FindByClarity(ctx context.Context, db *gorm.DB, clarity string) (*DiamondRate, error)
	FindActiveByClarity(ctx context.Context, db *gorm.DB, clarity string) (*DiamondRate, error)
	List(ctx context.Context, db *gorm.DB) ([]DiamondRate, error)
}
