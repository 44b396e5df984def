package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/fiscal-engine/fiscal"
	"github.com/warp/fiscal-engine/tax"
)

// =============================================================================
// INTEREST / ROL
// =============================================================================

func TestResolveInterest_SplitReconciles(t *testing.T) {
	tests := []struct {
		name                    string
		active, passive, rol    float64
		wantDeductible, wantNon float64
	}{
		{"fully offset by active", 10000, 8000, 100000, 8000, 0},
		{"capped by ROL", 0, 50000, 100000, 30000, 20000},
		{"offset then capped", 5000, 50000, 60000, 23000, 27000},
		{"no passive interest", 5000, 0, 100000, 0, 0},
		{"negative inputs degrade to zero", -100, -200, -300, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tax.ResolveInterest(
				fiscal.NewMoneyFromFloat(tt.active),
				fiscal.NewMoneyFromFloat(tt.passive),
				fiscal.NewMoneyFromFloat(tt.rol),
			)

			assert.InDelta(t, tt.wantDeductible, d.Deductible.Float64(), 0.001)
			assert.InDelta(t, tt.wantNon, d.NonDeductible.Float64(), 0.001)

			// deductible + non-deductible == passive, to the cent
			sum := d.Deductible.Add(d.NonDeductible)
			assert.InDelta(t, d.PassiveInterest.Float64(), sum.Float64(), 0.001)
		})
	}
}

// =============================================================================
// LOSS CARRY-FORWARD
// =============================================================================

func TestApplyLossCarryForward(t *testing.T) {
	money := fiscal.NewMoneyFromFloat

	t.Run("no income consumes nothing", func(t *testing.T) {
		d := tax.ApplyLossCarryForward(money(0), money(5000), money(8000))
		assert.True(t, d.TotalUsed.IsZero())
		assert.InDelta(t, 8000, d.RemainingOrdinary.Float64(), 0.001)
	})

	t.Run("first-three-year losses are unlimited", func(t *testing.T) {
		d := tax.ApplyLossCarryForward(money(100000), money(100000), money(50000))
		assert.InDelta(t, 100000, d.UsedFirst3Years.Float64(), 0.001)
		assert.True(t, d.UsedOrdinary.IsZero(), "nothing remains for ordinary losses")
		assert.InDelta(t, 50000, d.RemainingOrdinary.Float64(), 0.001)
	})

	t.Run("ordinary losses capped at 80 percent", func(t *testing.T) {
		d := tax.ApplyLossCarryForward(money(100000), money(0), money(200000))
		assert.InDelta(t, 80000, d.UsedOrdinary.Float64(), 0.001)
		assert.InDelta(t, 120000, d.RemainingOrdinary.Float64(), 0.001)
	})

	t.Run("priority and cap combined", func(t *testing.T) {
		// 30000 from the first three years, then 80% of the remaining 70000.
		d := tax.ApplyLossCarryForward(money(100000), money(30000), money(100000))
		assert.InDelta(t, 30000, d.UsedFirst3Years.Float64(), 0.001)
		assert.InDelta(t, 56000, d.UsedOrdinary.Float64(), 0.001)
		assert.InDelta(t, 86000, d.TotalUsed.Float64(), 0.001)
		assert.InDelta(t, 44000, d.RemainingOrdinary.Float64(), 0.001)
	})
}

// =============================================================================
// SUPER-DEDUCTION
// =============================================================================

func TestResolveSuperDeduction(t *testing.T) {
	money := fiscal.NewMoneyFromFloat

	t.Run("zero new-hire cost yields zero", func(t *testing.T) {
		d := tax.ResolveSuperDeduction(money(0), money(50000))
		assert.True(t, d.Deduction.IsZero())
	})

	t.Run("base limited by total increase", func(t *testing.T) {
		d := tax.ResolveSuperDeduction(money(40000), money(30000))
		assert.InDelta(t, 30000, d.EligibleBase.Float64(), 0.001)
		assert.InDelta(t, 6000, d.Deduction.Float64(), 0.001)
	})

	t.Run("twenty percent of the new-hire cost", func(t *testing.T) {
		d := tax.ResolveSuperDeduction(money(25000), money(40000))
		assert.InDelta(t, 5000, d.Deduction.Float64(), 0.001)
	})
}

// =============================================================================
// IRAP
// =============================================================================

func TestResolveIRAP_EmployeeCostAddBack(t *testing.T) {
	// GIVEN: Revenue 500k, costs 300k of which 80k employee costs
	// WHEN: Resolving IRAP
	// THEN: The base adds employee costs back: 500k - (300k - 80k) = 280k

	in := standardInput()
	result := pinnedEngine().Calculate(in)

	assert.InDelta(t, 280000, result.IRAP.GrossBase.Float64(), 0.01)
	assert.InDelta(t, 24000, result.IRAP.Deductions.Float64(), 0.01, "30% of employee costs")
}

func TestResolveIRAP_RegionFallbackAndCalabria(t *testing.T) {
	in := standardInput()

	// Unknown region falls back to the national rate.
	in.Region = "ATLANTIDE"
	result := pinnedEngine().Calculate(in)
	assert.InDelta(t, 0.039, result.IRAP.Rate.InexactFloat64(), 1e-9)

	// Calabria gets the flat bonus deduction on top of the contribution share.
	in.Region = "CALABRIA"
	result = pinnedEngine().Calculate(in)
	assert.InDelta(t, 0.0497, result.IRAP.Rate.InexactFloat64(), 1e-9)
	assert.InDelta(t, 39000, result.IRAP.Deductions.Float64(), 0.01, "24000 + 15000 flat")
}

func TestResolveIRAP_BaseFlooredAtZero(t *testing.T) {
	in := standardInput()
	in.Revenue = 10000
	in.Costs = 200000
	in.EmployeeCosts = 20000

	result := pinnedEngine().Calculate(in)
	assert.True(t, result.IRAP.TaxableBase.IsZero())
	assert.True(t, result.IRAP.Tax.IsZero())
}

// =============================================================================
// CONTRIBUTIONS
// =============================================================================

func TestResolveContributions_ClampAndGating(t *testing.T) {
	tests := []struct {
		name        string
		salary      float64
		wantAdmin   float64
	}{
		{"below floor clamps up", 10000, 18555 * 0.24},
		{"within band", 40000, 9600},
		{"above ceiling clamps down", 150000, 92413 * 0.24},
		{"zero salary no contribution", 0, 0},
		{"negative salary no contribution", -5000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := standardInput()
			in.AdminSalary = tt.salary
			result := pinnedEngine().Calculate(in)
			assert.InDelta(t, tt.wantAdmin, result.Contributions.Admin.Float64(), 0.01)
		})
	}

	t.Run("employee share needs headcount and cost", func(t *testing.T) {
		in := standardInput()
		in.Employees = 0
		result := pinnedEngine().Calculate(in)
		assert.True(t, result.Contributions.Employees.IsZero())

		in = standardInput()
		in.EmployeeCosts = 0
		result = pinnedEngine().Calculate(in)
		assert.True(t, result.Contributions.Employees.IsZero())
	})
}

// =============================================================================
// ACCONTI
// =============================================================================

func TestResolveAcconti_PriorDataAndFallback(t *testing.T) {
	t.Run("prior profit drives the IRES base", func(t *testing.T) {
		in := standardInput()
		in.Utile2024 = 100000
		in.PlannedInvestment = 0 // premiale ineligible, keep the rate standard

		result := pinnedEngine().Calculate(in)
		assert.InDelta(t, 24000, result.Acconti.IRESBase.Float64(), 0.01)
		assert.InDelta(t, 9600, result.Acconti.IRESFirst.Float64(), 0.01)
		assert.InDelta(t, 14400, result.Acconti.IRESSecond.Float64(), 0.01)
	})

	t.Run("fallback is 80 percent of the current tax", func(t *testing.T) {
		result := pinnedEngine().Calculate(standardInput())
		// IRES 48000 -> base 38400 -> 40/60 split.
		assert.InDelta(t, 38400, result.Acconti.IRESBase.Float64(), 0.01)
		assert.InDelta(t, 15360, result.Acconti.IRESFirst.Float64(), 0.01)
		assert.InDelta(t, 23040, result.Acconti.IRESSecond.Float64(), 0.01)
	})

	t.Run("prior revenue and costs drive the IRAP base", func(t *testing.T) {
		in := standardInput()
		in.Revenue2024 = 400000
		in.Costs2024 = 250000

		result := pinnedEngine().Calculate(in)
		// 150000 x 4.82%
		assert.InDelta(t, 7230, result.Acconti.IRAPBase.Float64(), 0.01)
	})
}

// =============================================================================
// VAT
// =============================================================================

func TestResolveVAT_QuarterlyDeadlines(t *testing.T) {
	in := standardInput()
	in.OutputVAT = floatPtr(50000)
	in.InputVAT = floatPtr(30000)

	result := pinnedEngine().Calculate(in)

	assert.InDelta(t, 20000, result.VAT.Total.Float64(), 0.01)
	require.Len(t, result.VAT.Deadlines, 4)
	for _, d := range result.VAT.Deadlines {
		assert.InDelta(t, 5000, d.Amount.Float64(), 0.01)
		assert.Equal(t, tax.CategoryVAT, d.Category)
	}
	// Last installment lands in January of the next year.
	last := result.VAT.Deadlines[3]
	assert.Equal(t, 2026, last.Date.Year())
}

func TestResolveVAT_MonthlyDeadlines(t *testing.T) {
	in := standardInput()
	in.VATRegime = "MENSILE"
	in.OutputVAT = floatPtr(60000)
	in.InputVAT = floatPtr(24000)

	result := pinnedEngine().Calculate(in)

	require.Len(t, result.VAT.Deadlines, 12)
	total := fiscal.Zero
	for _, d := range result.VAT.Deadlines {
		assert.InDelta(t, 3000, d.Amount.Float64(), 0.01)
		total = total.Add(d.Amount)
	}
	assert.InDelta(t, 36000, total.Float64(), 0.01)

	// December's installment is due in January of the next year.
	last := result.VAT.Deadlines[11]
	assert.Equal(t, 2026, last.Date.Year())
	assert.Contains(t, last.Description, "Dicembre")
}

func TestResolveVAT_UnknownRegime_NoDeadlines(t *testing.T) {
	// GIVEN: An unrecognized filing-frequency code
	// WHEN: Resolving VAT
	// THEN: No deadlines, but the quarterly-equivalent amount is computed

	in := standardInput()
	in.VATRegime = "ANNUALE"
	in.OutputVAT = floatPtr(40000)
	in.InputVAT = floatPtr(20000)

	result := pinnedEngine().Calculate(in)

	assert.Empty(t, result.VAT.Deadlines)
	assert.InDelta(t, 5000, result.VAT.QuarterlyEquivalent.Float64(), 0.01)
}

func TestResolveVAT_EstimatesAndCarriedDebt(t *testing.T) {
	// GIVEN: No explicit VAT amounts and a carried VAT debt
	// WHEN: Resolving VAT
	// THEN: 22% estimates apply and the debt is added on top

	in := standardInput()
	in.HasVATDebt = true
	in.VATDebtAmount = 10000

	result := pinnedEngine().Calculate(in)

	// 22% of 500000 - 22% of 300000 = 110000 - 66000 = 44000, plus the debt.
	assert.InDelta(t, 44000, result.VAT.NetVAT.Float64(), 0.01)
	assert.InDelta(t, 54000, result.VAT.Total.Float64(), 0.01)
}

func TestResolveVAT_NegativeNetFloorsAtZero(t *testing.T) {
	in := standardInput()
	in.OutputVAT = floatPtr(10000)
	in.InputVAT = floatPtr(30000)

	result := pinnedEngine().Calculate(in)
	assert.True(t, result.VAT.NetVAT.IsZero())
}
