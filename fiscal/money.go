/*
Package fiscal provides the core value types for fiscal calculations.

PURPOSE:
  This package contains domain-agnostic types for money arithmetic, calendar
  dates, fiscal events, and payment scheduling. Whether computing corporate
  tax, VAT installments, or social contributions, the same primitives handle
  amounts, deadlines, and running balances.

KEY CONCEPTS IN THIS FILE (money.go):
  - Money: A currency amount backed by decimal.Decimal
  - Rounding: Half-away-from-zero to two decimals, applied at the output
    boundary only — intermediate arithmetic stays unrounded

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Immutability: Money values are never mutated, every operation returns
     a new value
  3. Late rounding: Round2/Float64 are formatting steps, not computation steps

USAGE:
  tax := fiscal.NewMoney(48000).Mul(fiscal.NewMoneyFromFloat(0.24).Value())
  out := tax.Round2().Float64()

SEE ALSO:
  - date.go: Calendar date value type
  - event.go: Fiscal events and the calendar
  - schedule.go: Payment schedule replay
*/
package fiscal

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency amount with exact decimal arithmetic
// =============================================================================

type Money struct {
	value decimal.Decimal
}

func NewMoney(value int64) Money           { return Money{value: decimal.NewFromInt(value)} }
func NewMoneyFromFloat(value float64) Money { return Money{value: decimal.NewFromFloat(value)} }
func NewMoneyFromDecimal(d decimal.Decimal) Money { return Money{value: d} }

var Zero = Money{value: decimal.Zero}

// MustParseMoney parses a decimal string, returning zero on malformed input.
func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero
	}
	return Money{value: d}
}

func (m Money) Value() decimal.Decimal      { return m.value }
func (m Money) Add(b Money) Money           { return Money{value: m.value.Add(b.value)} }
func (m Money) Sub(b Money) Money           { return Money{value: m.value.Sub(b.value)} }
func (m Money) Mul(s decimal.Decimal) Money { return Money{value: m.value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money { return Money{value: m.value.Div(s)} }
func (m Money) Neg() Money                  { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                  { return Money{value: m.value.Abs()} }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsPositive() bool            { return m.value.IsPositive() }
func (m Money) GreaterThan(b Money) bool    { return m.value.GreaterThan(b.value) }
func (m Money) GreaterThanOrEqual(b Money) bool { return m.value.GreaterThanOrEqual(b.value) }
func (m Money) LessThan(b Money) bool       { return m.value.LessThan(b.value) }
func (m Money) Min(b Money) Money           { if m.LessThan(b) { return m }; return b }
func (m Money) Max(b Money) Money           { if m.GreaterThan(b) { return m }; return b }

// FloorZero clamps a negative amount to zero. Tax bases are floored at zero
// after every deduction step.
func (m Money) FloorZero() Money {
	if m.IsNegative() {
		return Zero
	}
	return m
}

// Round2 rounds half-away-from-zero to two decimal places. This is the final
// formatting step; pipeline arithmetic never rounds.
func (m Money) Round2() Money {
	return Money{value: m.value.Round(2)}
}

// Float64 returns the rounded two-decimal representation for DTOs.
func (m Money) Float64() float64 {
	f, _ := m.Round2().value.Float64()
	return f
}

// CeilCents rounds up to the next cent. Used by the installment planner so a
// monthly amount never undershoots the gap it is meant to close.
func (m Money) CeilCents() Money {
	return Money{value: m.value.Mul(hundred).Ceil().Div(hundred)}
}

var hundred = decimal.NewFromInt(100)
