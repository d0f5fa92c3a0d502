package domain

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Deactivate(ctx context.Context, id string) (*Response, error)
}

type ListRequest struct {
	Name     string
	Type     string
	IsActive *bool
	SortBy   string
	OrderBy  string
}

type CreateRequest struct {
	Name     string     `json:"name"`
	Type     ChargeType `json:"type"`
	Amount   float64    `json:"amount"`
	ApplyOn  ApplyOn    `json:"apply_on"`
	IsTax    *bool      `json:"is_tax"`
	Category *Category  `json:"category"`
	IsActive *bool      `json:"is_active"`
}

type UpdateRequest struct {
	ID       string      `json:"id"`
	Name     *string     `json:"name,omitempty"`
	Type     *ChargeType `json:"type,omitempty"`
	Amount   *float64    `json:"amount,omitempty"`
	ApplyOn  *ApplyOn    `json:"apply_on,omitempty"`
	IsTax    *bool       `json:"is_tax,omitempty"`
	Category *Category   `json:"category,omitempty"`
	IsActive *bool       `json:"is_active,omitempty"`
}

type Response struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      ChargeType `json:"type"`
	Amount    float64    `json:"amount"`
	ApplyOn   ApplyOn    `json:"apply_on"`
	IsTax     bool       `json:"is_tax"`
	Category  Category   `json:"category"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
