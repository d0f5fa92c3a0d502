package service

import (
	"testing"
	"time"

	chargedomain "github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/aurelia-jewels/aurelia/internal/pricing/domain"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func gatedPolicy() domain.Policy {
	return domain.Policy{GatePerUnitCharges: true}
}

func f64(v float64) *float64 { return &v }

func TestResolve_GoldValuePerTenGrams(t *testing.T) {
	// 22K at 66000 per 10g, 5g piece.
	b := Resolve(domain.Item{GoldPurity: 22, GoldWeight: 5}, f64(66000), nil, nil, gatedPolicy(), testNow)

	assert.Equal(t, 33000.0, b.GoldValue)
	assert.Equal(t, 0.0, b.DiamondValue)
	assert.Equal(t, 33000.0, b.FinalPrice)
}

func TestResolve_DiamondValuePerCarat(t *testing.T) {
	// VS1 at 45000 per carat, 0.4ct stone.
	b := Resolve(domain.Item{Clarity: "VS1", Carat: 0.4}, nil, f64(45000), nil, gatedPolicy(), testNow)

	assert.InDelta(t, 18000.0, b.DiamondValue, 1e-9)
	assert.InDelta(t, 18000.0, b.FinalPrice, 1e-9)
}

func TestResolve_MakingChargePerGram(t *testing.T) {
	charges := []chargedomain.Charge{
		{
			Name:     "Making Charges",
			Type:     chargedomain.ChargeTypePerGram,
			Amount:   800,
			ApplyOn:  chargedomain.ApplyOnGoldValue,
			Category: chargedomain.CategoryMaking,
			IsActive: true,
		},
	}

	b := Resolve(domain.Item{GoldWeight: 5}, f64(66000), nil, charges, gatedPolicy(), testNow)

	assert.Equal(t, 4000.0, b.MakingCharges)
	assert.Equal(t, 0.0, b.OtherCharges)
	assert.Equal(t, 37000.0, b.FinalPrice)
}

func TestResolve_GSTAgainstTaxableAmount(t *testing.T) {
	// taxable = 33000 + 18000 + 4000 = 55000, GST 3% = 1650.
	charges := []chargedomain.Charge{
		{
			Name:     "Making Charges",
			Type:     chargedomain.ChargeTypePerGram,
			Amount:   800,
			ApplyOn:  chargedomain.ApplyOnGoldValue,
			Category: chargedomain.CategoryMaking,
			IsActive: true,
		},
		{
			Name:     "GST",
			Type:     chargedomain.ChargeTypePercentage,
			Amount:   3,
			ApplyOn:  chargedomain.ApplyOnFinalAmount,
			IsTax:    true,
			IsActive: true,
		},
	}

	item := domain.Item{GoldWeight: 5, Clarity: "VS1", Carat: 0.4}
	b := Resolve(item, f64(66000), f64(45000), charges, gatedPolicy(), testNow)

	assert.InDelta(t, 55000.0, b.SubTotal+b.MakingCharges+b.OtherCharges, 1e-9)
	assert.InDelta(t, 1650.0, b.GST, 1e-9)
	assert.InDelta(t, 56650.0, b.FinalPrice, 1e-9)

	// GST must be computed against the taxable amount, not the bare
	// subtotal: subTotal*3% would be 1530, which is wrong.
	assert.NotEqual(t, 1530.0, b.GST)
}

func TestResolve_NoActiveCharges(t *testing.T) {
	b := Resolve(domain.Item{GoldWeight: 2}, f64(60000), nil, nil, gatedPolicy(), testNow)

	assert.Equal(t, 0.0, b.MakingCharges)
	assert.Equal(t, 0.0, b.OtherCharges)
	assert.Equal(t, 0.0, b.GST)
	assert.Equal(t, b.GoldValue+b.DiamondValue, b.FinalPrice)
}

func TestResolve_ZeroCaratIgnoresDiamondRate(t *testing.T) {
	b := Resolve(domain.Item{GoldWeight: 10, Carat: 0}, f64(66000), f64(45000), nil, gatedPolicy(), testNow)

	assert.Equal(t, 0.0, b.DiamondValue)
	assert.Equal(t, 66000.0, b.GoldValue)
}

func TestResolve_NilRatesPriceAsZero(t *testing.T) {
	b := Resolve(domain.Item{GoldWeight: 5, Carat: 1}, nil, nil, nil, gatedPolicy(), testNow)

	assert.Equal(t, 0.0, b.GoldValue)
	assert.Equal(t, 0.0, b.DiamondValue)
	assert.Equal(t, 0.0, b.FinalPrice)
}

func TestResolve_InactiveChargesContributeNothing(t *testing.T) {
	charges := []chargedomain.Charge{
		{
			Name:     "Making Charges",
			Type:     chargedomain.ChargeTypePerGram,
			Amount:   800,
			ApplyOn:  chargedomain.ApplyOnGoldValue,
			Category: chargedomain.CategoryMaking,
			IsActive: false,
		},
		{
			Name:     "GST",
			Type:     chargedomain.ChargeTypePercentage,
			Amount:   3,
			ApplyOn:  chargedomain.ApplyOnFinalAmount,
			IsTax:    true,
			IsActive: false,
		},
	}

	b := Resolve(domain.Item{GoldWeight: 5}, f64(66000), nil, charges, gatedPolicy(), testNow)

	assert.Equal(t, 0.0, b.MakingCharges)
	assert.Equal(t, 0.0, b.GST)
	assert.Equal(t, 33000.0, b.FinalPrice)

	// Toggling isActive must change the output.
	charges[0].IsActive = true
	charges[1].IsActive = true
	toggled := Resolve(domain.Item{GoldWeight: 5}, f64(66000), nil, charges, gatedPolicy(), testNow)
	assert.Greater(t, toggled.FinalPrice, b.FinalPrice)
}

func TestResolve_PercentageBases(t *testing.T) {
	charges := []chargedomain.Charge{
		{Name: "Wastage", Type: chargedomain.ChargeTypePercentage, Amount: 10, ApplyOn: chargedomain.ApplyOnGoldValue, Category: chargedomain.CategoryOther, IsActive: true},
		{Name: "Certification", Type: chargedomain.ChargeTypePercentage, Amount: 5, ApplyOn: chargedomain.ApplyOnDiamondValue, Category: chargedomain.CategoryOther, IsActive: true},
		{Name: "Handling", Type: chargedomain.ChargeTypePercentage, Amount: 1, ApplyOn: chargedomain.ApplyOnSubtotal, Category: chargedomain.CategoryOther, IsActive: true},
	}

	item := domain.Item{GoldWeight: 10, Carat: 1}
	b := Resolve(item, f64(50000), f64(40000), charges, gatedPolicy(), testNow)

	// gold 50000, diamond 40000, subtotal 90000
	// wastage 5000 + certification 2000 + handling 900 = 7900
	assert.InDelta(t, 7900.0, b.OtherCharges, 1e-9)
	assert.InDelta(t, 97900.0, b.FinalPrice, 1e-9)
}

func TestResolve_PercentageOnFinalAmountReservedForGST(t *testing.T) {
	charges := []chargedomain.Charge{
		{Name: "Surcharge", Type: chargedomain.ChargeTypePercentage, Amount: 5, ApplyOn: chargedomain.ApplyOnFinalAmount, Category: chargedomain.CategoryOther, IsActive: true},
	}

	b := Resolve(domain.Item{GoldWeight: 5}, f64(66000), nil, charges, gatedPolicy(), testNow)

	assert.Equal(t, 0.0, b.OtherCharges)
	assert.Equal(t, 33000.0, b.FinalPrice)
}

func TestResolve_UnknownTypeAndApplyOnDegradeToZero(t *testing.T) {
	charges := []chargedomain.Charge{
		{Name: "Mystery", Type: chargedomain.ChargeType("PER_PIECE"), Amount: 500, ApplyOn: chargedomain.ApplyOnSubtotal, Category: chargedomain.CategoryOther, IsActive: true},
		{Name: "Misconfigured", Type: chargedomain.ChargeTypePercentage, Amount: 5, ApplyOn: chargedomain.ApplyOn("TOTAL"), Category: chargedomain.CategoryOther, IsActive: true},
	}

	b := Resolve(domain.Item{GoldWeight: 5}, f64(66000), nil, charges, gatedPolicy(), testNow)

	assert.Equal(t, 0.0, b.OtherCharges)
	assert.Equal(t, 33000.0, b.FinalPrice)
}

// The write path guarantees a single active tax charge; if the store
// ever holds more, the resolver must keep the first and stay stable
// rather than stack them.
func TestResolve_DuplicateTaxChargesKeepFirst(t *testing.T) {
	charges := []chargedomain.Charge{
		{Name: "GST", Type: chargedomain.ChargeTypePercentage, Amount: 3, ApplyOn: chargedomain.ApplyOnFinalAmount, IsTax: true, IsActive: true},
		{Name: "State GST", Type: chargedomain.ChargeTypePercentage, Amount: 9, ApplyOn: chargedomain.ApplyOnFinalAmount, IsTax: true, IsActive: true},
	}

	b := Resolve(domain.Item{GoldWeight: 5}, f64(66000), nil, charges, gatedPolicy(), testNow)

	assert.InDelta(t, 990.0, b.GST, 1e-9) // 3% of 33000, not 12%
}

func TestResolve_NonPercentageTaxChargeYieldsZeroTax(t *testing.T) {
	charges := []chargedomain.Charge{
		{Name: "GST", Type: chargedomain.ChargeTypeFlat, Amount: 500, ApplyOn: chargedomain.ApplyOnFinalAmount, IsTax: true, IsActive: true},
	}

	b := Resolve(domain.Item{GoldWeight: 5}, f64(66000), nil, charges, gatedPolicy(), testNow)

	assert.Equal(t, 0.0, b.GST)
	assert.Equal(t, 33000.0, b.FinalPrice)
}

func TestResolve_TaxTagDecidesNotName(t *testing.T) {
	// A charge named GST without the tax tag is an ordinary percentage
	// charge; a tax-tagged charge named anything else drives GST.
	charges := []chargedomain.Charge{
		{Name: "GST Adjustment", Type: chargedomain.ChargeTypePercentage, Amount: 2, ApplyOn: chargedomain.ApplyOnSubtotal, Category: chargedomain.CategoryOther, IsActive: true},
		{Name: "Sales Tax", Type: chargedomain.ChargeTypePercentage, Amount: 3, ApplyOn: chargedomain.ApplyOnFinalAmount, IsTax: true, IsActive: true},
	}

	b := Resolve(domain.Item{GoldWeight: 5}, f64(66000), nil, charges, gatedPolicy(), testNow)

	assert.InDelta(t, 660.0, b.OtherCharges, 1e-9)  // 2% of 33000
	assert.InDelta(t, 1009.8, b.GST, 1e-9)          // 3% of 33660
	assert.InDelta(t, 34669.8, b.FinalPrice, 1e-9)
}

func TestResolve_PerUnitGatingPolicy(t *testing.T) {
	charges := []chargedomain.Charge{
		{Name: "Making Charges", Type: chargedomain.ChargeTypePerGram, Amount: 800, ApplyOn: chargedomain.ApplyOnSubtotal, Category: chargedomain.CategoryMaking, IsActive: true},
	}
	item := domain.Item{GoldWeight: 5}

	gated := Resolve(item, f64(66000), nil, charges, domain.Policy{GatePerUnitCharges: true}, testNow)
	assert.Equal(t, 0.0, gated.MakingCharges)

	ungated := Resolve(item, f64(66000), nil, charges, domain.Policy{GatePerUnitCharges: false}, testNow)
	assert.Equal(t, 4000.0, ungated.MakingCharges)
}

func TestResolve_ChargeOrderDoesNotChangeTotals(t *testing.T) {
	charges := []chargedomain.Charge{
		{Name: "Making Charges", Type: chargedomain.ChargeTypePerGram, Amount: 800, ApplyOn: chargedomain.ApplyOnGoldValue, Category: chargedomain.CategoryMaking, IsActive: true},
		{Name: "Hallmarking", Type: chargedomain.ChargeTypeFlat, Amount: 45, ApplyOn: chargedomain.ApplyOnSubtotal, Category: chargedomain.CategoryOther, IsActive: true},
		{Name: "Wastage", Type: chargedomain.ChargeTypePercentage, Amount: 2, ApplyOn: chargedomain.ApplyOnGoldValue, Category: chargedomain.CategoryOther, IsActive: true},
	}
	reversed := []chargedomain.Charge{charges[2], charges[1], charges[0]}

	item := domain.Item{GoldWeight: 5, Carat: 0.25}
	forward := Resolve(item, f64(66000), f64(45000), charges, gatedPolicy(), testNow)
	backward := Resolve(item, f64(66000), f64(45000), reversed, gatedPolicy(), testNow)

	assert.InDelta(t, forward.FinalPrice, backward.FinalPrice, 1e-9)
	assert.InDelta(t, forward.MakingCharges, backward.MakingCharges, 1e-9)
	assert.InDelta(t, forward.OtherCharges, backward.OtherCharges, 1e-9)
}

func TestResolve_NonNegativeChargesNeverDecreasePrice(t *testing.T) {
	charges := []chargedomain.Charge{
		{Name: "Making Charges", Type: chargedomain.ChargeTypePerGram, Amount: 650, ApplyOn: chargedomain.ApplyOnGoldValue, Category: chargedomain.CategoryMaking, IsActive: true},
		{Name: "Hallmarking", Type: chargedomain.ChargeTypeFlat, Amount: 45, ApplyOn: chargedomain.ApplyOnSubtotal, Category: chargedomain.CategoryOther, IsActive: true},
		{Name: "GST", Type: chargedomain.ChargeTypePercentage, Amount: 3, ApplyOn: chargedomain.ApplyOnFinalAmount, IsTax: true, IsActive: true},
	}

	item := domain.Item{GoldWeight: 8, Clarity: "SI1", Carat: 0.5}
	b := Resolve(item, f64(66000), f64(30000), charges, gatedPolicy(), testNow)

	assert.GreaterOrEqual(t, b.FinalPrice, b.SubTotal)
}

func TestResolve_Idempotent(t *testing.T) {
	charges := []chargedomain.Charge{
		{Name: "Making Charges", Type: chargedomain.ChargeTypePerGram, Amount: 800, ApplyOn: chargedomain.ApplyOnGoldValue, Category: chargedomain.CategoryMaking, IsActive: true},
		{Name: "GST", Type: chargedomain.ChargeTypePercentage, Amount: 3, ApplyOn: chargedomain.ApplyOnFinalAmount, IsTax: true, IsActive: true},
	}

	item := domain.Item{GoldWeight: 5, Clarity: "VS1", Carat: 0.4}
	first := Resolve(item, f64(66000), f64(45000), charges, gatedPolicy(), testNow)
	second := Resolve(item, f64(66000), f64(45000), charges, gatedPolicy(), testNow)

	assert.Equal(t, first, second)
}
