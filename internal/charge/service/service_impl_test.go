package service

import (
	"context"
	"testing"

	"github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/aurelia-jewels/aurelia/internal/charge/repository"
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
	assert.NoError(t, db.AutoMigrate(&domain.Charge{}))

	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func boolPtr(v bool) *bool { return &v }

func TestCreateCharge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "Making Charges",
		Type:    domain.ChargeTypePerGram,
		Amount:  800,
		ApplyOn: domain.ApplyOnGoldValue,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Making Charges", resp.Name)
	assert.True(t, resp.IsActive)
}

func TestCreateChargeDerivesTagsFromName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	making, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "Making Charges",
		Type:    domain.ChargeTypePerGram,
		Amount:  800,
		ApplyOn: domain.ApplyOnGoldValue,
	})
	assert.NoError(t, err)
	assert.False(t, making.IsTax)
	assert.Equal(t, domain.CategoryMaking, making.Category)

	gst, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "gst (3%)",
		Type:    domain.ChargeTypePercentage,
		Amount:  3,
		ApplyOn: domain.ApplyOnFinalAmount,
	})
	assert.NoError(t, err)
	assert.True(t, gst.IsTax)
	assert.Equal(t, domain.CategoryOther, gst.Category)

	plain, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "Hallmarking",
		Type:    domain.ChargeTypeFlat,
		Amount:  45,
		ApplyOn: domain.ApplyOnSubtotal,
	})
	assert.NoError(t, err)
	assert.False(t, plain.IsTax)
	assert.Equal(t, domain.CategoryOther, plain.Category)
}

func TestCreateChargeExplicitTagsOverrideName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category := domain.CategoryMaking
	resp, err := svc.Create(ctx, domain.CreateRequest{
		Name:     "GST Adjustment",
		Type:     domain.ChargeTypePercentage,
		Amount:   2,
		ApplyOn:  domain.ApplyOnSubtotal,
		IsTax:    boolPtr(false),
		Category: &category,
	})
	assert.NoError(t, err)
	assert.False(t, resp.IsTax)
	assert.Equal(t, domain.CategoryMaking, resp.Category)
}

func TestCreateChargeRejectsBadCategory(t *testing.T) {
	svc := newTestService(t)

	bad := domain.Category("TAXES")
	_, err := svc.Create(context.Background(), domain.CreateRequest{
		Name:     "Hallmarking",
		Type:     domain.ChargeTypeFlat,
		Amount:   45,
		ApplyOn:  domain.ApplyOnSubtotal,
		Category: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestCreateSecondActiveTaxChargeConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "GST",
		Type:    domain.ChargeTypePercentage,
		Amount:  3,
		ApplyOn: domain.ApplyOnFinalAmount,
	})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateRequest{
		Name:    "State GST",
		Type:    domain.ChargeTypePercentage,
		Amount:  9,
		ApplyOn: domain.ApplyOnFinalAmount,
	})
	assert.ErrorIs(t, err, domain.ErrTaxChargeExists)

	// An inactive second tax charge is allowed; only active rows compete.
	_, err = svc.Create(ctx, domain.CreateRequest{
		Name:     "State GST",
		Type:     domain.ChargeTypePercentage,
		Amount:   9,
		ApplyOn:  domain.ApplyOnFinalAmount,
		IsActive: boolPtr(false),
	})
	assert.NoError(t, err)
}

func TestUpdateTaxTagConflictsWithExistingTaxCharge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "GST",
		Type:    domain.ChargeTypePercentage,
		Amount:  3,
		ApplyOn: domain.ApplyOnFinalAmount,
	})
	assert.NoError(t, err)

	plain, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "Hallmarking",
		Type:    domain.ChargeTypeFlat,
		Amount:  45,
		ApplyOn: domain.ApplyOnSubtotal,
	})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, domain.UpdateRequest{
		ID:    plain.ID,
		IsTax: boolPtr(true),
	})
	assert.ErrorIs(t, err, domain.ErrTaxChargeExists)
}

func TestUpdateTaxChargeDoesNotConflictWithItself(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	gst, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "GST",
		Type:    domain.ChargeTypePercentage,
		Amount:  3,
		ApplyOn: domain.ApplyOnFinalAmount,
	})
	assert.NoError(t, err)

	amount := 5.0
	updated, err := svc.Update(ctx, domain.UpdateRequest{
		ID:     gst.ID,
		Amount: &amount,
	})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, updated.Amount)
	assert.True(t, updated.IsTax)
}

func TestCreateChargeRejectsBadEnums(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "Packaging",
		Type:    "PER_ITEM",
		Amount:  50,
		ApplyOn: domain.ApplyOnSubtotal,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	_, err = svc.Create(ctx, domain.CreateRequest{
		Name:    "Packaging",
		Type:    domain.ChargeTypeFlat,
		Amount:  50,
		ApplyOn: "TOTAL",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidApplyOn)

	_, err = svc.Create(ctx, domain.CreateRequest{
		Name:    "Packaging",
		Type:    domain.ChargeTypeFlat,
		Amount:  0,
		ApplyOn: domain.ApplyOnSubtotal,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestUpdateChargePartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "GST",
		Type:    domain.ChargeTypePercentage,
		Amount:  3,
		ApplyOn: domain.ApplyOnFinalAmount,
	})
	assert.NoError(t, err)

	amount := 5.0
	updated, err := svc.Update(ctx, domain.UpdateRequest{
		ID:     created.ID,
		Amount: &amount,
	})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, updated.Amount)
	assert.Equal(t, "GST", updated.Name)
	assert.Equal(t, domain.ChargeTypePercentage, updated.Type)
}

func TestUpdateChargeUnknownID(t *testing.T) {
	svc := newTestService(t)

	name := "Renamed"
	_, err := svc.Update(context.Background(), domain.UpdateRequest{
		ID:   "123456789",
		Name: &name,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeactivateCharge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "Hallmarking",
		Type:    domain.ChargeTypeFlat,
		Amount:  45,
		ApplyOn: domain.ApplyOnSubtotal,
	})
	assert.NoError(t, err)

	resp, err := svc.Deactivate(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, resp.IsActive)

	active := true
	listed, err := svc.List(ctx, domain.ListRequest{IsActive: &active})
	assert.NoError(t, err)
	assert.Empty(t, listed)
}

func TestListChargesFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{
		Name:    "Making Charges",
		Type:    domain.ChargeTypePerGram,
		Amount:  800,
		ApplyOn: domain.ApplyOnGoldValue,
	})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{
		Name:     "Old Festive Discount Fee",
		Type:     domain.ChargeTypeFlat,
		Amount:   100,
		ApplyOn:  domain.ApplyOnSubtotal,
		IsActive: boolPtr(false),
	})
	assert.NoError(t, err)

	all, err := svc.List(ctx, domain.ListRequest{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	perGram, err := svc.List(ctx, domain.ListRequest{Type: string(domain.ChargeTypePerGram)})
	assert.NoError(t, err)
	assert.Len(t, perGram, 1)
	assert.Equal(t, "Making Charges", perGram[0].Name)
}
