package service

import (
	"context"
	"testing"

	"github.com/aurelia-jewels/aurelia/internal/product/domain"
	"github.com/aurelia-jewels/aurelia/internal/product/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&domain.Product{}))

	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateProductBuildsSlugAndNormalizesClarity(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Create(context.Background(), domain.CreateRequest{
		SKU:        "RING-001",
		Name:       "Classic Solitaire Ring",
		GoldPurity: 22,
		GoldWeight: 5,
		Clarity:    " vs1 ",
		Carat:      0.4,
	})
	assert.NoError(t, err)
	assert.Equal(t, "classic-solitaire-ring-ring-001", resp.Slug)
	assert.Equal(t, "VS1", resp.Clarity)
	assert.True(t, resp.Active)
}

func TestCreateProductValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "No SKU"})
	assert.ErrorIs(t, err, domain.ErrInvalidSKU)

	_, err = svc.Create(ctx, domain.CreateRequest{SKU: "RING-002", Name: "Bad Weight", GoldWeight: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidWeight)
}

func TestGetBySlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		SKU:        "PEND-007",
		Name:       "Teardrop Pendant",
		GoldPurity: 18,
		GoldWeight: 3.2,
	})
	assert.NoError(t, err)

	found, err := svc.GetBySlug(ctx, created.Slug)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetBySlug(ctx, "missing-slug")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArchiveProductHidesItFromActiveList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		SKU:        "RING-003",
		Name:       "Vintage Band",
		GoldPurity: 22,
		GoldWeight: 4,
	})
	assert.NoError(t, err)

	archived, err := svc.Archive(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, archived.Active)

	active := true
	listed, err := svc.List(ctx, domain.ListRequest{Active: &active})
	assert.NoError(t, err)
	assert.Empty(t, listed)

	// Archived products stay addressable by id.
	got, err := svc.Get(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, got.Active)
}

func TestUpdateProductPartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		SKU:        "RING-004",
		Name:       "Band",
		GoldPurity: 22,
		GoldWeight: 5,
	})
	assert.NoError(t, err)

	weight := 6.5
	updated, err := svc.Update(ctx, domain.UpdateRequest{
		ID:         created.ID,
		GoldWeight: &weight,
	})
	assert.NoError(t, err)
	assert.Equal(t, 6.5, updated.GoldWeight)
	assert.Equal(t, "Band", updated.Name)
	assert.Equal(t, created.Slug, updated.Slug)
}
