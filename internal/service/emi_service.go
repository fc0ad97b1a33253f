package service

import (
	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ComputeStandardEmi resolves the installment used everywhere downstream.
// An explicit override on the terms bypasses the annuity formula entirely.
func ComputeStandardEmi(terms domain.LoanTerms) decimal.Decimal {
	if terms.OverrideEmi != nil {
		return *terms.OverrideEmi
	}
	return ComputeEmi(terms.Principal, terms.AnnualRatePercent, int(terms.TenureMonths))
}

// ComputeEmi calculates the fixed monthly installment using the standard
// reducing-balance annuity formula, rounded to whole currency units.
// Formula: P * r * (1+r)^n / ((1+r)^n - 1) with r = annualRate/1200.
// A zero rate makes the formula degenerate, so it falls back to an even
// split of the principal.
func ComputeEmi(principal, annualRatePercent decimal.Decimal, tenureMonths int) decimal.Decimal {
	if tenureMonths <= 0 {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(tenureMonths))
	if annualRatePercent.IsZero() {
		return principal.Div(months).Round(0)
	}
	r := annualRatePercent.Div(decimal.NewFromInt(1200))
	growth := one.Add(r).Pow(months)
	emi := principal.Mul(r).Mul(growth).Div(growth.Sub(one))
	return emi.Round(0)
}
