package domain

import (
	"context"
	"time"
)

type Service interface {
	Upsert(ctx context.Context, req UpsertRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
}

type UpsertRequest struct {
	Purity      int     `json:"purity"`
	PricePer10g float64 `json:"price_per_10g"`
	IsActive    *bool   `json:"is_active"`
}

type Response struct {
	ID          string    `json:"id"`
	Purity      int       `json:"purity"`
	PricePer10g float64   `json:"price_per_10g"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
