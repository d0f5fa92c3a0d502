package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// GoldRate is the per-purity quote the resolver prices gold against.
// Quotes are per 10 grams, which is how bullion rates are published.
// At most one row exists per purity; inactive rows are never served
// to the resolver.
type GoldRate struct {
	ID          snowflake.ID `gorm:"primaryKey"`
	Purity      int          `gorm:"not null;uniqueIndex"`
	PricePer10g float64      `gorm:"column:price_per_10g;not null"`
	IsActive    bool         `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (GoldRate) TableName() string { return "gold_rates" }

func (r *GoldRate) Validate() error {
	if r.Purity <= 0 {
		return ErrInvalidPurity
	}
	if r.PricePer10g <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

var (
	ErrInvalidPurity = errors.New("invalid_purity")
	ErrInvalidPrice  = errors.New("invalid_price")
	ErrNotFound      = errors.New("not_found")
)
