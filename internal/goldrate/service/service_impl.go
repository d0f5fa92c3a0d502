package service

import (
	"context"
	"time"

	"github.com/aurelia-jewels/aurelia/internal/goldrate/domain"
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
		log:   p.Log.Named("goldrate.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertRequest) (*domain.Response, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now().UTC()
	rate := &domain.GoldRate{
		ID:          s.genID.Generate(),
		Purity:      req.Purity,
		PricePer10g: req.PricePer10g,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := rate.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, s.db, rate); err != nil {
		return nil, err
	}

	// Re-read so the response carries the surviving row's identity when
	// the upsert hit an existing purity.
	stored, err := s.repo.FindByPurity(ctx, s.db, req.Purity)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrNotFound
	}

	s.log.Info("gold rate updated",
		zap.Int("purity", stored.Purity),
		zap.Float64("price_per_10g", stored.PricePer10g),
		zap.Bool("is_active", stored.IsActive),
	)

	resp := toResponse(stored)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(&item))
	}
	return resp, nil
}

func toResponse(r *domain.GoldRate) domain.Response {
	return domain.Response{
		ID:          r.ID.String(),
		Purity:      r.Purity,
		PricePer10g: r.PricePer10g,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
