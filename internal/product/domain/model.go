package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Product is a catalog piece described purely by its physical
// specification. It carries no stored price: every read computes one
// from the current rate and charge tables.
type Product struct {
	ID          snowflake.ID      `gorm:"primaryKey"`
	SKU         string            `gorm:"column:sku;type:text;not null;uniqueIndex"`
	Slug        string            `gorm:"type:text;not null;uniqueIndex"`
	Name        string            `gorm:"type:text;not null"`
	Description *string           `gorm:"type:text"`
	GoldPurity  int               `gorm:"column:gold_purity;not null"`
	GoldWeight  float64           `gorm:"column:gold_weight;not null"` // grams
	Clarity     string            `gorm:"column:diamond_clarity;type:text"`
	Carat       float64           `gorm:"column:diamond_carat;not null"`
	Active      bool              `gorm:"not null;default:true"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

func (p *Product) Validate() error {
	if p.SKU == "" {
		return ErrInvalidSKU
	}
	if p.Name == "" {
		return ErrInvalidName
	}
	if p.GoldPurity < 0 {
		return ErrInvalidPurity
	}
	if p.GoldWeight < 0 {
		return ErrInvalidWeight
	}
	if p.Carat < 0 {
		return ErrInvalidCarat
	}
	return nil
}
