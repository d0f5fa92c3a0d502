package service

import (
	"context"
	"strings"
	"time"

	"github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("charge.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	name := strings.TrimSpace(req.Name)

	// Tags default from the legacy name convention when the request
	// omits them, so charge lists authored under the old scheme price
	// the same after migrating.
	isTax := domain.DeriveIsTax(name)
	if req.IsTax != nil {
		isTax = *req.IsTax
	}
	category := domain.DeriveCategory(name)
	if req.Category != nil {
		category = *req.Category
	}

	now := time.Now().UTC()
	c := &domain.Charge{
		ID:        s.genID.Generate(),
		Name:      name,
		Type:      req.Type,
		Amount:    req.Amount,
		ApplyOn:   req.ApplyOn,
		IsTax:     isTax,
		Category:  category,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkTaxUniqueness(ctx, c); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, s.db, c); err != nil {
		return nil, err
	}

	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	filter := domain.ListRequest{
		Name:     strings.TrimSpace(req.Name),
		Type:     strings.TrimSpace(req.Type),
		IsActive: req.IsActive,
		SortBy:   strings.TrimSpace(req.SortBy),
		OrderBy:  strings.TrimSpace(req.OrderBy),
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(&item))
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
	}
	if req.ApplyOn != nil {
		item.ApplyOn = *req.ApplyOn
	}
	if req.IsTax != nil {
		item.IsTax = *req.IsTax
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkTaxUniqueness(ctx, item); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Deactivate(ctx context.Context, rawID string) (*domain.Response, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(rawID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.IsActive = false
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

// checkTaxUniqueness enforces that at most one active charge carries the
// tax designation. Resolution would otherwise have to pick one
// arbitrarily.
func (s *Service) checkTaxUniqueness(ctx context.Context, c *domain.Charge) error {
	if !c.IsTax || !c.IsActive {
		return nil
	}
	existing, err := s.repo.FindActiveTax(ctx, s.db, c.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		s.log.Warn("rejecting write: active tax charge already exists",
			zap.String("existing_id", existing.ID.String()),
			zap.String("existing_name", existing.Name),
		)
		return domain.ErrTaxChargeExists
	}
	return nil
}

func toResponse(c *domain.Charge) domain.Response {
	return domain.Response{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      c.Type,
		Amount:    c.Amount,
		ApplyOn:   c.ApplyOn,
		IsTax:     c.IsTax,
		Category:  c.Category,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
