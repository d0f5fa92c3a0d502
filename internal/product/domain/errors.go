package domain

import "errors"

var (
	ErrInvalidSKU    = errors.New("invalid_sku")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidPurity = errors.New("invalid_gold_purity")
	ErrInvalidWeight = errors.New("invalid_gold_weight")
	ErrInvalidCarat  = errors.New("invalid_diamond_carat")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
