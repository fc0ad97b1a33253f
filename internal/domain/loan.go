package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrLoanPrincipalInvalid = errors.New("loan principal must be positive")
	ErrLoanTenureInvalid    = errors.New("loan tenure must be at least 1 month")
	ErrLoanRateInvalid      = errors.New("annual interest rate must not be negative")
	ErrLoanEmiInvalid       = errors.New("installment override must be positive")
)

// LoanTerms describes a loan as entered by the user. Terms are never
// persisted; every schedule and metrics computation starts from a fresh
// copy supplied by the caller.
type LoanTerms struct {
	Principal         decimal.Decimal  `json:"principal"`
	TenureMonths      int32            `json:"tenureMonths"`
	AnnualRatePercent decimal.Decimal  `json:"annualRatePercent"`
	OverrideEmi       *decimal.Decimal `json:"overrideEmi,omitempty"`
}

func (t *LoanTerms) Validate() error {
	if t.Principal.LessThanOrEqual(decimal.Zero) {
		return ErrLoanPrincipalInvalid
	}
	if t.TenureMonths < 1 {
		return ErrLoanTenureInvalid
	}
	if t.AnnualRatePercent.IsNegative() {
		return ErrLoanRateInvalid
	}
	if t.OverrideEmi != nil && t.OverrideEmi.LessThanOrEqual(decimal.Zero) {
		return ErrLoanEmiInvalid
	}
	return nil
}

// MonthlyRate returns the monthly interest rate as a fraction
// (annual percent / 1200).
func (t *LoanTerms) MonthlyRate() decimal.Decimal {
	return t.AnnualRatePercent.Div(decimal.NewFromInt(1200))
}
