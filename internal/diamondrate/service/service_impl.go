package service

import (
	"context"
	"time"

	"github.com/aurelia-jewels/aurelia/internal/diamondrate/domain"
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
		log:   p.Log.Named("diamondrate.service"),
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
	rate := &domain.DiamondRate{
		ID:            s.genID.Generate(),
		Clarity:       domain.NormalizeClarity(req.Clarity),
		PricePerCarat: req.PricePerCarat,
		IsActive:      active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := rate.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, s.db, rate); err != nil {
		return nil, err
	}

	stored, err := s.repo.FindByClarity(ctx, s.db, rate.Clarity)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrNotFound
	}

	s.log.Info("diamond rate updated",
		zap.String("clarity", stored.Clarity),
		zap.Float64("price_per_carat", stored.PricePerCarat),
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

func toResponse(r *domain.DiamondRate) domain.Response {
	return domain.Response{
		ID:            r.ID.String(),
		Clarity:       r.Clarity,
		PricePerCarat: r.PricePerCarat,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
