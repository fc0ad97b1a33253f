package service

import (
	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeProgressMetrics reduces the simulated schedule into the summary
// the dashboard renders: progress percentages, remaining balance and
// tenure, and the savings versus a run with no extra payments. It never
// mutates the schedule.
func ComputeProgressMetrics(schedule []*domain.ScheduleEntry, terms domain.LoanTerms, standardEmi decimal.Decimal) domain.ProgressMetrics {
	metrics := domain.ProgressMetrics{
		RemainingBalance:      terms.Principal,
		RemainingTenureMonths: terms.TenureMonths,
		InterestSaved:         decimal.Zero,
	}
	if len(schedule) == 0 {
		return metrics
	}

	last := schedule[len(schedule)-1]
	remaining := last.EndingBalance
	entries := int32(len(schedule))

	metrics.RemainingBalance = remaining
	if remaining.IsPositive() {
		metrics.RemainingTenureMonths = terms.TenureMonths - entries
		if metrics.RemainingTenureMonths < 0 {
			metrics.RemainingTenureMonths = 0
		}
	} else {
		metrics.RemainingTenureMonths = 0
	}

	metrics.PayoffPercent = percentOf(terms.Principal.Sub(remaining), terms.Principal)
	metrics.PrincipalPaidPercent = percentOf(last.CumulativePrincipal, terms.Principal)

	// Interest the loan would cost over the full nominal term with no
	// extra payments ever made.
	baselineInterest := standardEmi.Mul(decimal.NewFromInt(int64(terms.TenureMonths))).Sub(terms.Principal)
	if baselineInterest.IsPositive() {
		metrics.InterestPaidPercent = percentOf(last.CumulativeInterest, baselineInterest)
	}

	projected := projectRemainingInterest(remaining, terms.MonthlyRate(), standardEmi, metrics.RemainingTenureMonths)
	saved := baselineInterest.Sub(last.CumulativeInterest.Add(projected))
	if saved.IsNegative() {
		saved = decimal.Zero
	}
	metrics.InterestSaved = saved

	// Time savings are only claimed once the loan has actually closed;
	// until then the final payoff month is unknown.
	if !remaining.IsPositive() {
		monthsSaved := terms.TenureMonths - entries
		if monthsSaved < 0 {
			monthsSaved = 0
		}
		metrics.MonthsSaved = monthsSaved
	}

	return metrics
}

// projectRemainingInterest runs the payoff forward from the current
// balance under standard installments only, accumulating interest until
// the balance clears or the remaining tenure runs out. A month whose
// installment covers no principal would never make progress, so the
// projection stops there instead of looping.
func projectRemainingInterest(balance, monthlyRate, standardEmi decimal.Decimal, months int32) decimal.Decimal {
	total := decimal.Zero
	for m := int32(0); m < months && balance.IsPositive(); m++ {
		out := amortizeMonth(balance, monthlyRate, standardEmi, decimal.Zero, decimal.Zero)
		if !out.principalPortion.IsPositive() {
			break
		}
		total = total.Add(out.interest)
		balance = out.newBalance
	}
	return total
}

func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	pct, _ := part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}
