package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// ChargeType selects how a charge amount is interpreted.
type ChargeType string

const (
	ChargeTypePerGram    ChargeType = "PER_GRAM"
	ChargeTypePerCarat   ChargeType = "PER_CARAT"
	ChargeTypeFlat       ChargeType = "FLAT"
	ChargeTypePercentage ChargeType = "PERCENTAGE"
)

// ApplyOn selects the base a percentage charge is computed against.
type ApplyOn string

const (
	ApplyOnGoldValue    ApplyOn = "GOLD_VALUE"
	ApplyOnDiamondValue ApplyOn = "DIAMOND_VALUE"
	ApplyOnSubtotal     ApplyOn = "SUBTOTAL"
	ApplyOnFinalAmount  ApplyOn = "FINAL_AMOUNT"
)

// Category selects which reporting bucket a charge contribution lands in.
type Category string

const (
	CategoryMaking Category = "MAKING"
	CategoryOther  Category = "OTHER"
)

// Charge is a configurable pricing rule applied on top of metal and stone
// value. IsTax marks the single charge the resolver treats as GST;
// Category routes non-tax contributions into the making or other bucket.
// Both tags are explicit columns; when a write omits them they default
// from the legacy name convention (see DeriveIsTax, DeriveCategory) so
// charge lists authored under that scheme keep pricing identically.
type Charge struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	Name      string       `gorm:"type:text;not null"`
	Type      ChargeType   `gorm:"type:text;not null"`
	Amount    float64      `gorm:"not null"`
	ApplyOn   ApplyOn      `gorm:"column:apply_on;type:text;not null"`
	IsTax     bool         `gorm:"column:is_tax;not null;default:false"`
	Category  Category     `gorm:"type:text;not null;default:'OTHER'"`
	IsActive  bool         `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Charge) TableName() string { return "charges" }

func (c *Charge) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidName
	}
	switch c.Type {
	case ChargeTypePerGram, ChargeTypePerCarat, ChargeTypeFlat, ChargeTypePercentage:
	default:
		return ErrInvalidType
	}
	switch c.ApplyOn {
	case ApplyOnGoldValue, ApplyOnDiamondValue, ApplyOnSubtotal, ApplyOnFinalAmount:
	default:
		return ErrInvalidApplyOn
	}
	if c.Amount <= 0 {
		return ErrInvalidAmount
	}
	switch c.Category {
	case CategoryMaking, CategoryOther:
	default:
		return ErrInvalidCategory
	}
	return nil
}

// DeriveIsTax applies the legacy name convention: names containing "gst"
// (case-insensitive) designate the tax charge. Used only to default the
// IsTax tag when a write omits it.
func DeriveIsTax(name string) bool {
	return strings.Contains(strings.ToLower(name), "gst")
}

// DeriveCategory applies the legacy name convention: names containing
// "making" land in the making bucket, everything else in other. Used only
// to default the Category tag when a write omits it.
func DeriveCategory(name string) Category {
	if strings.Contains(strings.ToLower(name), "making") {
		return CategoryMaking
	}
	return CategoryOther
}
