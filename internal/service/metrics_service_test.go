package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
)

func TestComputeProgressMetrics_EmptySchedule(t *testing.T) {
	terms := milLoanTerms()
	emi := ComputeStandardEmi(terms)

	metrics := ComputeProgressMetrics(nil, terms, emi)

	if !metrics.RemainingBalance.Equal(terms.Principal) {
		t.Errorf("Expected remaining balance %s, got %s", terms.Principal.String(), metrics.RemainingBalance.String())
	}
	if metrics.RemainingTenureMonths != terms.TenureMonths {
		t.Errorf("Expected remaining tenure %d, got %d", terms.TenureMonths, metrics.RemainingTenureMonths)
	}
	if metrics.PayoffPercent != 0 {
		t.Errorf("Expected zero payoff percent, got %f", metrics.PayoffPercent)
	}
	if metrics.MonthsSaved != 0 {
		t.Errorf("Expected zero months saved, got %d", metrics.MonthsSaved)
	}
}

func TestComputeProgressMetrics_FullPayoff(t *testing.T) {
	terms := milLoanTerms()
	emi := ComputeStandardEmi(terms)
	schedule := Simulate(terms, domain.PaymentLedger{}, emi)

	metrics := ComputeProgressMetrics(schedule, terms, emi)

	if metrics.PayoffPercent != 100 {
		t.Errorf("Expected 100%% payoff, got %f", metrics.PayoffPercent)
	}
	if !metrics.RemainingBalance.IsZero() {
		t.Errorf("Expected zero remaining balance, got %s", metrics.RemainingBalance.String())
	}
	if metrics.RemainingTenureMonths != 0 {
		t.Errorf("Expected zero remaining tenure, got %d", metrics.RemainingTenureMonths)
	}
	// Full tenure run saves no months
	if metrics.MonthsSaved != 0 {
		t.Errorf("Expected zero months saved, got %d", metrics.MonthsSaved)
	}
	if metrics.InterestSaved.IsNegative() {
		t.Errorf("Expected non-negative interest saved, got %s", metrics.InterestSaved.String())
	}
}

func TestComputeProgressMetrics_LumpsumSavings(t *testing.T) {
	terms := milLoanTerms()
	emi := ComputeStandardEmi(terms)
	ledger := domain.NewPaymentLedger([]*domain.PaymentRecord{
		{Month: 6, Prepayment: decimal.Zero, Lumpsum: decimal.NewFromInt(200000)},
	})
	schedule := Simulate(terms, ledger, emi)

	metrics := ComputeProgressMetrics(schedule, terms, emi)

	if metrics.MonthsSaved <= 0 {
		t.Errorf("Expected months saved, got %d", metrics.MonthsSaved)
	}
	if !metrics.InterestSaved.IsPositive() {
		t.Errorf("Expected positive interest saved, got %s", metrics.InterestSaved.String())
	}
	expectedSaved := int32(12 - len(schedule))
	if metrics.MonthsSaved != expectedSaved {
		t.Errorf("Expected %d months saved, got %d", expectedSaved, metrics.MonthsSaved)
	}
}

func TestComputeProgressMetrics_StalledLoan(t *testing.T) {
	// An installment below the interest never closes the loan and must
	// not report savings or saved months
	override := decimal.NewFromInt(100)
	terms := milLoanTerms()
	terms.OverrideEmi = &override
	schedule := Simulate(terms, domain.PaymentLedger{}, override)

	metrics := ComputeProgressMetrics(schedule, terms, override)

	if metrics.MonthsSaved != 0 {
		t.Errorf("Expected zero months saved, got %d", metrics.MonthsSaved)
	}
	if !metrics.RemainingBalance.Equal(terms.Principal) {
		t.Errorf("Expected remaining balance %s, got %s", terms.Principal.String(), metrics.RemainingBalance.String())
	}
	if metrics.PayoffPercent != 0 {
		t.Errorf("Expected zero payoff percent, got %f", metrics.PayoffPercent)
	}
	if metrics.InterestSaved.IsNegative() {
		t.Errorf("Expected non-negative interest saved, got %s", metrics.InterestSaved.String())
	}
}

func TestComputeProgressMetrics_PercentagesWithinRange(t *testing.T) {
	terms := milLoanTerms()
	emi := ComputeStandardEmi(terms)
	ledger := domain.NewPaymentLedger([]*domain.PaymentRecord{
		{Month: 2, Prepayment: decimal.NewFromInt(10000), Lumpsum: decimal.Zero},
	})
	schedule := Simulate(terms, ledger, emi)

	metrics := ComputeProgressMetrics(schedule, terms, emi)

	for name, pct := range map[string]float64{
		"payoff":    metrics.PayoffPercent,
		"principal": metrics.PrincipalPaidPercent,
	} {
		if pct < 0 || pct > 100 {
			t.Errorf("Expected %s percent in [0, 100], got %f", name, pct)
		}
	}
	if metrics.InterestPaidPercent < 0 {
		t.Errorf("Expected non-negative interest percent, got %f", metrics.InterestPaidPercent)
	}
}
