package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/fiscal-engine/tax"
)

// eligibleInput satisfies all five premiale conditions.
func eligibleInput() tax.Input {
	in := standardInput()
	in.Utile2024 = 100000
	in.Utile2023 = 80000
	in.PlannedInvestment = 30000
	in.AvgHeadcount = 5
	in.PriorHeadcount = 5
	in.NewHires = 1
	in.HasUsedCIG = false
	return in
}

func TestPremiale_EachConditionBlocksIndependently(t *testing.T) {
	// GIVEN: An otherwise-eligible company
	// WHEN: Breaking one condition at a time
	// THEN: Eligibility is lost each time, and only that condition reports false

	tests := []struct {
		name  string
		mutate func(*tax.Input)
		check  func(t *testing.T, c tax.PremialeConditions)
	}{
		{
			name:   "no prior profit",
			mutate: func(in *tax.Input) { in.Utile2024 = 0 },
			check: func(t *testing.T, c tax.PremialeConditions) {
				assert.False(t, c.ReserveAllocated)
			},
		},
		{
			name:   "investment below requirement",
			mutate: func(in *tax.Input) { in.PlannedInvestment = 10000 },
			check: func(t *testing.T, c tax.PremialeConditions) {
				assert.False(t, c.InvestmentSufficient)
			},
		},
		{
			name:   "no historical headcount",
			mutate: func(in *tax.Input) { in.AvgHeadcount = 0 },
			check: func(t *testing.T, c tax.PremialeConditions) {
				assert.False(t, c.WorkforceMaintained)
			},
		},
		{
			name:   "workforce shrinking",
			mutate: func(in *tax.Input) { in.AvgHeadcount = 10 },
			check: func(t *testing.T, c tax.PremialeConditions) {
				assert.False(t, c.WorkforceMaintained)
			},
		},
		{
			name:   "no new hires",
			mutate: func(in *tax.Input) { in.NewHires = 0 },
			check: func(t *testing.T, c tax.PremialeConditions) {
				assert.False(t, c.NewHiresSufficient)
			},
		},
		{
			name:   "wage support used",
			mutate: func(in *tax.Input) { in.HasUsedCIG = true },
			check: func(t *testing.T, c tax.PremialeConditions) {
				assert.False(t, c.NoWageSupportUsed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := eligibleInput()
			tt.mutate(&in)

			result := pinnedEngine().Calculate(in)
			require.NotNil(t, result.Premiale)
			assert.False(t, result.Premiale.Eligible)
			assert.InDelta(t, 0.24, result.IRESRate.InexactFloat64(), 1e-9)
			tt.check(t, result.Premiale.Conditions)
		})
	}
}

func TestPremiale_InvestmentRequirement_GreatestOfThree(t *testing.T) {
	// GIVEN: Reserve-based, prior-profit-based and floor thresholds
	// WHEN: Evaluating eligibility
	// THEN: The requirement is the greatest of the three

	in := eligibleInput()
	// Reserve = 80% of 100000 = 80000; 30% of that = 24000.
	// 24% of utile2023 (80000) = 19200. Floor = 20000. Greatest = 24000.
	result := pinnedEngine().Calculate(in)

	require.NotNil(t, result.Premiale)
	assert.InDelta(t, 24000, result.Premiale.InvestmentRequired.Float64(), 0.01)
	assert.InDelta(t, 80000, result.Premiale.ReserveRequired.Float64(), 0.01)

	// With tiny prior profits the fixed floor dominates.
	in.Utile2024 = 1000
	in.Utile2023 = 0
	in.PlannedInvestment = 20000
	result = pinnedEngine().Calculate(in)
	require.NotNil(t, result.Premiale)
	assert.InDelta(t, 20000, result.Premiale.InvestmentRequired.Float64(), 0.01)
	assert.True(t, result.Premiale.Conditions.InvestmentSufficient)
}

func TestPremiale_MinimumHires_RoundsUp(t *testing.T) {
	// GIVEN: A prior headcount of 150 (1% = 1.5)
	// WHEN: Evaluating the new-hire condition
	// THEN: The minimum is ceil(1.5) = 2

	in := eligibleInput()
	in.PriorHeadcount = 150
	in.AvgHeadcount = 1
	in.NewHires = 1

	result := pinnedEngine().Calculate(in)
	require.NotNil(t, result.Premiale)
	assert.Equal(t, 2, result.Premiale.MinimumHires)
	assert.False(t, result.Premiale.Conditions.NewHiresSufficient)

	in.NewHires = 2
	result = pinnedEngine().Calculate(in)
	require.NotNil(t, result.Premiale)
	assert.True(t, result.Premiale.Conditions.NewHiresSufficient)
}
