package domain

import (
	"context"
	"time"
)

type Service interface {
	Valuation(ctx context.Context) (*Valuation, error)
}

// Valuation is a point-in-time sum over every active product, priced
// at the rates in force when the request is served. It is never
// persisted; re-running it after a rate change yields new totals.
type Valuation struct {
	TotalItems        int       `json:"total_items"`
	TotalGoldValue    float64   `json:"total_gold_value"`
	TotalDiamondValue float64   `json:"total_diamond_value"`
	TotalMaking       float64   `json:"total_making_charges"`
	TotalOther        float64   `json:"total_other_charges"`
	TotalGST          float64   `json:"total_gst"`
	TotalValue        float64   `json:"total_value"`
	ValidAsOf         time.Time `json:"valid_as_of"`
	Lines             []Line    `json:"lines"`
}

type Line struct {
	ProductID  string  `json:"product_id"`
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	FinalPrice float64 `json:"final_price"`
}
