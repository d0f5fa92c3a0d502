// Package domain defines the pricing resolver's contracts. The resolver
// is the only place in the repository that turns a physical
// specification into money; everything else reads or writes the tables
// it consumes.
package domain

import (
	"time"

	productdomain "github.com/aurelia-jewels/aurelia/internal/product/domain"
)

// Item is the physical specification a price is computed from.
type Item struct {
	GoldPurity int     // karat, lookup key into the gold rate table
	GoldWeight float64 // grams
	Clarity    string  // lookup key into the diamond rate table, may be empty
	Carat      float64 // may be 0 for gold-only pieces
}

// ItemOf extracts the priceable specification from a product response.
func ItemOf(p productdomain.Response) Item {
	return Item{
		GoldPurity: p.GoldPurity,
		GoldWeight: p.GoldWeight,
		Clarity:    p.Clarity,
		Carat:      p.Carat,
	}
}

// Policy carries resolver knobs sourced from the pricing config holder.
type Policy struct {
	// GatePerUnitCharges requires PER_GRAM/PER_CARAT charges to name
	// their matching apply_on base before they contribute.
	GatePerUnitCharges bool
}

// Breakdown is the fully itemized, tax-inclusive sale price. It is
// ephemeral: recomputed on every read and never persisted, so a rate
// change is visible on the next request and historical orders hold no
// price snapshot from this subsystem.
type Breakdown struct {
	GoldRate      float64   `json:"gold_rate"`
	DiamondRate   float64   `json:"diamond_rate"`
	GoldValue     float64   `json:"gold_value"`
	DiamondValue  float64   `json:"diamond_value"`
	SubTotal      float64   `json:"sub_total"`
	MakingCharges float64   `json:"making_charges"`
	OtherCharges  float64   `json:"other_charges"`
	GST           float64   `json:"gst"`
	FinalPrice    float64   `json:"final_price"`
	ValidAsOf     time.Time `json:"valid_as_of"`
}
