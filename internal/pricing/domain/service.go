package domain

import "context"

// Service computes itemized prices from the live rate and charge
// tables. A missing rate row is a valid zero-value state, not an
// error; only infrastructure failures surface as errors.
type Service interface {
	Quote(ctx context.Context, item Item) (*Breakdown, error)
	QuoteAll(ctx context.Context, items []Item) ([]Breakdown, error)
}
