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
	Clarity       string  `json:"clarity"`
	PricePerCarat float64 `json:"price_per_carat"`
	IsActive      *bool   `json:"is_active"`
}

type Response struct {
	ID            string    `json:"id"`
	Clarity       string    `json:"clarity"`
	PricePerCarat float64   `json:"price_per_carat"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
