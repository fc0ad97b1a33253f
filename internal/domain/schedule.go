package domain

import "github.com/shopspring/decimal"

// ScheduleEntry is one simulated month of the amortization run. Entries
// are produced fresh on every recompute and never mutated afterwards.
type ScheduleEntry struct {
	Month                    int32           `json:"month"`
	Emi                      decimal.Decimal `json:"emi"`
	InterestPortion          decimal.Decimal `json:"interestPortion"`
	PrincipalPortion         decimal.Decimal `json:"principalPortion"`
	Prepayment               decimal.Decimal `json:"prepayment"`
	Lumpsum                  decimal.Decimal `json:"lumpsum"`
	EndingBalance            decimal.Decimal `json:"endingBalance"`
	CumulativeTotalPaid      decimal.Decimal `json:"cumulativeTotalPaid"`
	CumulativeInterest       decimal.Decimal `json:"cumulativeInterest"`
	CumulativePrincipal      decimal.Decimal `json:"cumulativePrincipal"`
	ActualPrincipalReduction decimal.Decimal `json:"actualPrincipalReduction"`
}

// ProgressMetrics summarizes how far along a loan is and what the extra
// payments have bought compared to paying only the standard installment.
type ProgressMetrics struct {
	PayoffPercent         float64         `json:"payoffPercent"`
	PrincipalPaidPercent  float64         `json:"principalPaidPercent"`
	InterestPaidPercent   float64         `json:"interestPaidPercent"`
	RemainingBalance      decimal.Decimal `json:"remainingBalance"`
	RemainingTenureMonths int32           `json:"remainingTenureMonths"`
	InterestSaved         decimal.Decimal `json:"interestSaved"`
	MonthsSaved           int32           `json:"monthsSaved"`
}
