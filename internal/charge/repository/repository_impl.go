package repository

import (
	"context"
	"errors"

	"github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/aurelia-jewels/aurelia/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, charge *domain.Charge) error {
	return db.WithContext(ctx).Create(charge).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Charge, error) {
	var c domain.Charge
	err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListRequest) ([]domain.Charge, error) {
	var items []domain.Charge
	stmt := db.WithContext(ctx).Model(&domain.Charge{})

	if filter.Name != "" {
		stmt = stmt.Where("name = ?", filter.Name)
	}
	if filter.Type != "" {
		stmt = stmt.Where("type = ?", filter.Type)
	}
	if filter.IsActive != nil {
		stmt = stmt.Where("is_active = ?", *filter.IsActive)
	}

	stmt = option.WithSortBy(option.WithQuerySortBy(filter.SortBy, filter.OrderBy, map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
	})).Apply(stmt)

	if err := stmt.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active charges in insertion order.
func (r *repo) ListActive(ctx context.Context, db *gorm.DB) ([]domain.Charge, error) {
	var items []domain.Charge
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindActiveTax returns the active tax-designated charge, excluding the
// given id so an update does not conflict with the row it is modifying.
// Returns nil when no other active tax charge exists.
func (r *repo) FindActiveTax(ctx context.Context, db *gorm.DB, excludeID snowflake.ID) (*domain.Charge, error) {
	var c domain.Charge
	err := db.WithContext(ctx).
		Where("is_tax = ? AND is_active = ? AND id <> ?", true, true, excludeID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, charge *domain.Charge) error {
	if charge == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE charges
		 SET name = ?, type = ?, amount = ?, apply_on = ?, is_tax = ?, category = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		charge.Name,
		charge.Type,
		charge.Amount,
		charge.ApplyOn,
		charge.IsTax,
		charge.Category,
		charge.IsActive,
		charge.UpdatedAt,
		charge.ID,
	).Error
}
