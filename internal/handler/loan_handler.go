package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/arvhie/payoff/payoff-backend/internal/service"
)

// LoanHandler handles amortization and progress HTTP requests
type LoanHandler struct {
	scheduleService *service.ScheduleService
	ledgerService   *service.PaymentLedgerService
	defaultTerms    domain.LoanTerms
}

// NewLoanHandler creates a new LoanHandler. defaultTerms are the
// configured terms of the tracked loan, used when a request omits its own.
func NewLoanHandler(scheduleService *service.ScheduleService, ledgerService *service.PaymentLedgerService, defaultTerms domain.LoanTerms) *LoanHandler {
	return &LoanHandler{
		scheduleService: scheduleService,
		ledgerService:   ledgerService,
		defaultTerms:    defaultTerms,
	}
}

// LoanTermsRequest carries loan terms in a request body. All fields are
// optional; missing fields fall back to the configured loan.
type LoanTermsRequest struct {
	Principal    string `json:"principal,omitempty"`
	TenureMonths int32  `json:"tenureMonths,omitempty"`
	AnnualRate   string `json:"annualRate,omitempty"`
	OverrideEmi  string `json:"overrideEmi,omitempty"`
}

// EmiResponse represents the computed standard installment
type EmiResponse struct {
	Emi          string `json:"emi"`
	Principal    string `json:"principal"`
	TenureMonths int32  `json:"tenureMonths"`
	AnnualRate   string `json:"annualRate"`
}

// resolveTerms merges request overrides onto the configured defaults
func (h *LoanHandler) resolveTerms(req LoanTermsRequest) (domain.LoanTerms, error) {
	terms := h.defaultTerms

	if req.Principal != "" {
		principal, err := decimal.NewFromString(req.Principal)
		if err != nil {
			return domain.LoanTerms{}, domain.ErrLoanPrincipalInvalid
		}
		terms.Principal = principal
	}
	if req.TenureMonths != 0 {
		terms.TenureMonths = req.TenureMonths
	}
	if req.AnnualRate != "" {
		rate, err := decimal.NewFromString(req.AnnualRate)
		if err != nil {
			return domain.LoanTerms{}, domain.ErrLoanRateInvalid
		}
		terms.AnnualRatePercent = rate
	}
	if req.OverrideEmi != "" {
		override, err := decimal.NewFromString(req.OverrideEmi)
		if err != nil {
			return domain.LoanTerms{}, domain.ErrLoanEmiInvalid
		}
		terms.OverrideEmi = &override
	}

	if err := terms.Validate(); err != nil {
		return domain.LoanTerms{}, err
	}
	return terms, nil
}

// ComputeEmi handles POST /api/v1/loan/emi
func (h *LoanHandler) ComputeEmi(c echo.Context) error {
	var req LoanTermsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	terms, err := h.resolveTerms(req)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	emi := service.ComputeStandardEmi(terms)

	return c.JSON(http.StatusOK, EmiResponse{
		Emi:          emi.String(),
		Principal:    terms.Principal.String(),
		TenureMonths: terms.TenureMonths,
		AnnualRate:   terms.AnnualRatePercent.String(),
	})
}

// BuildSchedule handles POST /api/v1/loan/schedule
// The stored payment ledger is applied on top of the resolved terms.
func (h *LoanHandler) BuildSchedule(c echo.Context) error {
	var req LoanTermsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	terms, err := h.resolveTerms(req)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	ledger, err := h.ledgerService.LoadLedger()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load payment ledger")
		return NewInternalError(c, "Failed to load payment ledger")
	}

	schedule, err := h.scheduleService.BuildSchedule(terms, ledger)
	if err != nil {
		if isTermsError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Msg("Failed to build schedule")
		return NewInternalError(c, "Failed to build schedule")
	}

	return c.JSON(http.StatusOK, schedule)
}

// MetricsResponse bundles the schedule's terminal state with the
// derived progress and savings numbers
type MetricsResponse struct {
	Metrics     domain.ProgressMetrics `json:"metrics"`
	StandardEmi string                 `json:"standardEmi"`
}

// ComputeMetrics handles POST /api/v1/loan/metrics
func (h *LoanHandler) ComputeMetrics(c echo.Context) error {
	var req LoanTermsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	terms, err := h.resolveTerms(req)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	ledger, err := h.ledgerService.LoadLedger()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load payment ledger")
		return NewInternalError(c, "Failed to load payment ledger")
	}

	schedule, err := h.scheduleService.BuildSchedule(terms, ledger)
	if err != nil {
		if isTermsError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Msg("Failed to build schedule")
		return NewInternalError(c, "Failed to build schedule")
	}

	standardEmi := service.ComputeStandardEmi(terms)
	metrics := service.ComputeProgressMetrics(schedule, terms, standardEmi)

	return c.JSON(http.StatusOK, MetricsResponse{
		Metrics:     metrics,
		StandardEmi: standardEmi.String(),
	})
}

func isTermsError(err error) bool {
	return errors.Is(err, domain.ErrLoanPrincipalInvalid) ||
		errors.Is(err, domain.ErrLoanTenureInvalid) ||
		errors.Is(err, domain.ErrLoanRateInvalid) ||
		errors.Is(err, domain.ErrLoanEmiInvalid)
}
