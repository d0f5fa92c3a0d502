package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// DiamondRate is the per-clarity quote the resolver prices stones
// against, in currency per carat. Clarity grades are stored uppercase
// (VS1, SI2, ...) and at most one row exists per grade.
type DiamondRate struct {
	ID            snowflake.ID `gorm:"primaryKey"`
	Clarity       string       `gorm:"type:text;not null;uniqueIndex"`
	PricePerCarat float64      `gorm:"column:price_per_carat;not null"`
	IsActive      bool         `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (DiamondRate) TableName() string { return "diamond_rates" }

func (r *DiamondRate) Validate() error {
	if strings.TrimSpace(r.Clarity) == "" {
		return ErrInvalidClarity
	}
	if r.PricePerCarat <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// NormalizeClarity canonicalizes a clarity grade for lookup.
func NormalizeClarity(clarity string) string {
	return strings.ToUpper(strings.TrimSpace(clarity))
}

var (
	ErrInvalidClarity = errors.New("invalid_clarity")
	ErrInvalidPrice   = errors.New("invalid_price")
	ErrNotFound       = errors.New("not_found")
)
