package service

import (
	"time"

	chargedomain "github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/aurelia-jewels/aurelia/internal/pricing/domain"
)

// Resolve computes the itemized price for one item against the supplied
// rate quotes and charge list. It is pure and total: a nil rate prices
// that material at zero (fail-open for legitimately absent table rows),
// and a charge with an unknown type or apply_on contributes zero
// instead of failing the whole quote.
//
// The pipeline, in order: material values, subtotal, per-charge
// contributions split into making/other by the charge's category tag,
// taxable amount, GST from the tax-designated charge against the taxable
// amount, final price. Charge order never changes the totals: the write
// path guarantees at most one active tax charge, and the loop keeps the
// first defensively should the store ever hold more.
func Resolve(item domain.Item, goldRate, diamondRate *float64, charges []chargedomain.Charge, policy domain.Policy, now time.Time) domain.Breakdown {
	var gr, dr float64
	if goldRate != nil {
		gr = *goldRate
	}
	if diamondRate != nil {
		dr = *diamondRate
	}

	// Gold is quoted per 10 grams; divide before weighting.
	goldValue := (gr / 10) * item.GoldWeight
	diamondValue := dr * item.Carat
	subTotal := goldValue + diamondValue

	var taxCharge *chargedomain.Charge
	var makingCharges, otherCharges float64

	for i := range charges {
		c := &charges[i]
		if !c.IsActive {
			continue
		}
		if c.IsTax {
			if taxCharge == nil {
				taxCharge = c
			}
			continue
		}

		var amount float64
		switch c.Type {
		case chargedomain.ChargeTypePerGram:
			if !policy.GatePerUnitCharges || c.ApplyOn == chargedomain.ApplyOnGoldValue {
				amount = c.Amount * item.GoldWeight
			}
		case chargedomain.ChargeTypePerCarat:
			if !policy.GatePerUnitCharges || c.ApplyOn == chargedomain.ApplyOnDiamondValue {
				amount = c.Amount * item.Carat
			}
		case chargedomain.ChargeTypeFlat:
			amount = c.Amount
		case chargedomain.ChargeTypePercentage:
			switch c.ApplyOn {
			case chargedomain.ApplyOnGoldValue:
				amount = (goldValue * c.Amount) / 100
			case chargedomain.ApplyOnDiamondValue:
				amount = (diamondValue * c.Amount) / 100
			case chargedomain.ApplyOnSubtotal:
				amount = (subTotal * c.Amount) / 100
			}
			// FINAL_AMOUNT is reserved for the GST pass below; an
			// ordinary percentage charge against it contributes nothing.
		}

		if c.Category == chargedomain.CategoryMaking {
			makingCharges += amount
		} else {
			otherCharges += amount
		}
	}

	taxableAmount := subTotal + makingCharges + otherCharges

	var gst float64
	if taxCharge != nil && taxCharge.Type == chargedomain.ChargeTypePercentage {
		gst = (taxableAmount * taxCharge.Amount) / 100
	}

	return domain.Breakdown{
		GoldRate:      gr,
		DiamondRate:   dr,
		GoldValue:     goldValue,
		DiamondValue:  diamondValue,
		SubTotal:      subTotal,
		MakingCharges: makingCharges,
		OtherCharges:  otherCharges,
		GST:           gst,
		FinalPrice:    taxableAmount + gst,
		ValidAsOf:     now,
	}
}
