package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ScheduleCache stores serialized schedules keyed by a content hash of
// the inputs, so any change to the terms or the ledger misses the cache
// instead of needing explicit invalidation.
type ScheduleCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ScheduleService builds amortization schedules. The simulation itself is
// pure; the optional cache only short-circuits recomputation for inputs
// already seen.
type ScheduleService struct {
	cache ScheduleCache
}

// NewScheduleService creates a new ScheduleService. Passing a nil cache
// disables caching.
func NewScheduleService(cache ScheduleCache) *ScheduleService {
	return &ScheduleService{cache: cache}
}

// BuildSchedule simulates the loan month by month against the ledger and
// returns the ordered schedule. The result is a deterministic function of
// (terms, ledger): calling it twice with equal inputs yields equal output.
func (s *ScheduleService) BuildSchedule(terms domain.LoanTerms, ledger domain.PaymentLedger) ([]*domain.ScheduleEntry, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	standardEmi := ComputeStandardEmi(terms)

	var key string
	if s.cache != nil {
		key = scheduleCacheKey(terms, ledger)
		if cached, ok := s.cache.Get(key); ok {
			var entries []*domain.ScheduleEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
			log.Warn().Str("key", key).Msg("Discarding unreadable cached schedule")
		}
	}

	entries := Simulate(terms, ledger, standardEmi)

	if s.cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(key, string(data)); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("Failed to cache schedule")
			}
		}
	}

	return entries, nil
}

// Simulate runs the amortization month by month, starting from the full
// principal. Each month resolves the effective payments from the ledger,
// accrues interest, splits the installment, applies extras, and emits one
// entry. The run ends the first month the balance reaches zero (that
// entry is included) or when the nominal tenure is exhausted, whichever
// comes first. A positive residual balance after the tenure is a valid
// terminal state, not an error.
func Simulate(terms domain.LoanTerms, ledger domain.PaymentLedger, standardEmi decimal.Decimal) []*domain.ScheduleEntry {
	monthlyRate := terms.MonthlyRate()
	balance := terms.Principal

	cumInterest := decimal.Zero
	cumPrincipal := decimal.Zero
	cumPaid := decimal.Zero

	entries := make([]*domain.ScheduleEntry, 0, terms.TenureMonths)
	for month := int32(1); month <= terms.TenureMonths; month++ {
		emiPaid, prepayment, lumpsum := ledger.Effective(month, standardEmi)
		out := amortizeMonth(balance, monthlyRate, emiPaid, prepayment, lumpsum)

		cumInterest = cumInterest.Add(out.interest)
		cumPrincipal = cumPrincipal.Add(out.actualReduction)
		cumPaid = cumPaid.Add(emiPaid).Add(prepayment).Add(lumpsum)

		entries = append(entries, &domain.ScheduleEntry{
			Month:                    month,
			Emi:                      emiPaid,
			InterestPortion:          out.interest,
			PrincipalPortion:         out.principalPortion,
			Prepayment:               prepayment,
			Lumpsum:                  lumpsum,
			EndingBalance:            out.newBalance,
			CumulativeTotalPaid:      cumPaid,
			CumulativeInterest:       cumInterest,
			CumulativePrincipal:      cumPrincipal,
			ActualPrincipalReduction: out.actualReduction,
		})

		balance = out.newBalance
		if !balance.IsPositive() {
			break
		}
	}

	return entries
}

// monthOutcome is the result of applying one month of payments to a balance.
type monthOutcome struct {
	interest         decimal.Decimal
	principalPortion decimal.Decimal
	actualReduction  decimal.Decimal
	newBalance       decimal.Decimal
}

// amortizeMonth applies a single month to the running balance. The
// installment-driven principal reduction is clamped to [0, balance]: an
// installment below the accrued interest reduces nothing (no negative
// amortization), and the loan never overshoots past zero. Extra payments
// hit the balance directly, floored at zero; the excess of a final-month
// overpayment is capped rather than refunded.
func amortizeMonth(balance, monthlyRate, emiPaid, prepayment, lumpsum decimal.Decimal) monthOutcome {
	interest := balance.Mul(monthlyRate).Round(0)

	principalPortion := emiPaid.Sub(interest)
	if principalPortion.IsNegative() {
		principalPortion = decimal.Zero
	}
	if principalPortion.GreaterThan(balance) {
		principalPortion = balance
	}

	newBalance := balance.Sub(principalPortion).Sub(prepayment).Sub(lumpsum)
	if newBalance.IsNegative() {
		newBalance = decimal.Zero
	}

	return monthOutcome{
		interest:         interest,
		principalPortion: principalPortion,
		actualReduction:  balance.Sub(newBalance),
		newBalance:       newBalance,
	}
}

// cacheKeyRecord is the canonical shape hashed for the cache key. Only
// ledger fields that identify the record's content participate; repo
// bookkeeping timestamps do not.
type cacheKeyRecord struct {
	Month      int32  `json:"month"`
	Date       string `json:"date"`
	EmiPaid    string `json:"emiPaid"`
	Prepayment string `json:"prepayment"`
	Lumpsum    string `json:"lumpsum"`
}

// scheduleCacheKey hashes the full (terms, ledger) content. Records are
// serialized in month order so equal ledgers always hash equally.
func scheduleCacheKey(terms domain.LoanTerms, ledger domain.PaymentLedger) string {
	months := make([]int32, 0, len(ledger))
	for m := range ledger {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	records := make([]cacheKeyRecord, 0, len(months))
	for _, m := range months {
		r := ledger[m]
		emiPaid := ""
		if r.EmiPaid != nil {
			emiPaid = r.EmiPaid.String()
		}
		records = append(records, cacheKeyRecord{
			Month:      r.Month,
			Date:       r.Date.Format("2006-01-02"),
			EmiPaid:    emiPaid,
			Prepayment: r.Prepayment.String(),
			Lumpsum:    r.Lumpsum.String(),
		})
	}

	overrideEmi := ""
	if terms.OverrideEmi != nil {
		overrideEmi = terms.OverrideEmi.String()
	}

	payload, _ := json.Marshal(struct {
		Principal   string           `json:"principal"`
		Tenure      int32            `json:"tenure"`
		Rate        string           `json:"rate"`
		OverrideEmi string           `json:"overrideEmi"`
		Records     []cacheKeyRecord `json:"records"`
	}{
		Principal:   terms.Principal.String(),
		Tenure:      terms.TenureMonths,
		Rate:        terms.AnnualRatePercent.String(),
		OverrideEmi: overrideEmi,
		Records:     records,
	})

	sum := sha256.Sum256(payload)
	return "schedule:" + hex.EncodeToString(sum[:])
}
