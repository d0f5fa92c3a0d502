package domain

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	GetBySlug(ctx context.Context, slug string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Archive(ctx context.Context, id string) (*Response, error)
}

type ListRequest struct {
	Name       string
	GoldPurity *int
	Clarity    string
	Active     *bool
	SortBy     string
	OrderBy    string
}

type CreateRequest struct {
	SKU         string         `json:"sku"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	GoldPurity  int            `json:"gold_purity"`
	GoldWeight  float64        `json:"gold_weight"`
	Clarity     string         `json:"diamond_clarity"`
	Carat       float64        `json:"diamond_carat"`
	Active      *bool          `json:"active"`
	Metadata    map[string]any `json:"metadata"`
}

type UpdateRequest struct {
	ID          string          `json:"id"`
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	GoldPurity  *int            `json:"gold_purity,omitempty"`
	GoldWeight  *float64        `json:"gold_weight,omitempty"`
	Clarity     *string         `json:"diamond_clarity,omitempty"`
	Carat       *float64        `json:"diamond_carat,omitempty"`
	Active      *bool           `json:"active,omitempty"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
}

type Response struct {
	ID          string         `json:"id"`
	SKU         string         `json:"sku"`
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	GoldPurity  int            `json:"gold_purity"`
	GoldWeight  float64        `json:"gold_weight"`
	Clarity     string         `json:"diamond_clarity,omitempty"`
	Carat       float64        `json:"diamond_carat"`
	Active      bool           `json:"active"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
