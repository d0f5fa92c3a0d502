package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, charge *Charge) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Charge, error)
	List(ctx context.Context, db *gorm.DB, filter ListRequest) ([]Charge, error)
	ListActive(ctx context.Context, db *gorm.DB) ([]Charge, error)
	FindActiveTax(ctx context.Context, db *gorm.DB, excludeID snowflake.ID) (*Charge, error)
	Update(ctx context.Context, db *gorm.DB, charge *Charge) error
}
