package seed

import (
	"context"
	"errors"

	chargedomain "github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const (
	defaultMakingChargeName = "Making Charges"
	defaultGSTChargeName    = "GST"
)

// EnsureDefaults seeds the charge list a fresh install needs to quote
// sensible prices: a per-gram making charge and a 3% GST. Rate tables
// start empty on purpose; missing rates price as zero until an admin
// publishes real quotes, and seeding stale bullion prices would be
// worse than seeding none.
func EnsureDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureChargeTx(ctx, tx, node, chargedomain.Charge{
			Name:     defaultMakingChargeName,
			Type:     chargedomain.ChargeTypePerGram,
			Amount:   500,
			ApplyOn:  chargedomain.ApplyOnGoldValue,
			Category: chargedomain.CategoryMaking,
		}); err != nil {
			return err
		}
		return ensureChargeTx(ctx, tx, node, chargedomain.Charge{
			Name:     defaultGSTChargeName,
			Type:     chargedomain.ChargeTypePercentage,
			Amount:   3,
			ApplyOn:  chargedomain.ApplyOnFinalAmount,
			IsTax:    true,
			Category: chargedomain.CategoryOther,
		})
	})
}

func ensureChargeTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, charge chargedomain.Charge) error {
	var existing chargedomain.Charge
	err := tx.WithContext(ctx).
		Where("name = ?", charge.Name).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	charge.ID = node.Generate()
	charge.IsActive = true
	return tx.WithContext(ctx).Create(&charge).Error
}
