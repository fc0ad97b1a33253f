package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/arvhie/payoff/payoff-backend/internal/service"
	"github.com/arvhie/payoff/payoff-backend/internal/util"
)

// LedgerHandler handles payment ledger HTTP requests
type LedgerHandler struct {
	ledgerService *service.PaymentLedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *service.PaymentLedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// PaymentRecordResponse represents a ledger row in API responses
type PaymentRecordResponse struct {
	Month      int32   `json:"month"`
	Date       string  `json:"date,omitempty"`
	EmiPaid    *string `json:"emiPaid,omitempty"`
	Prepayment string  `json:"prepayment"`
	Lumpsum    string  `json:"lumpsum"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// UpsertPaymentRecordRequest represents the upsert request body.
// EmiPaid empty or absent means the standard installment was paid.
type UpsertPaymentRecordRequest struct {
	Date       string `json:"date,omitempty"`
	EmiPaid    string `json:"emiPaid,omitempty"`
	Prepayment string `json:"prepayment,omitempty"`
	Lumpsum    string `json:"lumpsum,omitempty"`
}

// GetRecords handles GET /api/v1/payments
func (h *LedgerHandler) GetRecords(c echo.Context) error {
	records, err := h.ledgerService.GetRecords()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get payment records")
		return NewInternalError(c, "Failed to get payment records")
	}

	response := make([]PaymentRecordResponse, len(records))
	for i, record := range records {
		response[i] = toPaymentRecordResponse(record)
	}

	return c.JSON(http.StatusOK, response)
}

// GetRecord handles GET /api/v1/payments/:month
func (h *LedgerHandler) GetRecord(c echo.Context) error {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", nil)
	}

	record, err := h.ledgerService.GetRecord(int32(month))
	if err != nil {
		if errors.Is(err, domain.ErrPaymentRecordNotFound) {
			return NewNotFoundError(c, "No payment record for month")
		}
		if errors.Is(err, domain.ErrPaymentMonthInvalid) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Int("month", month).Msg("Failed to get payment record")
		return NewInternalError(c, "Failed to get payment record")
	}

	return c.JSON(http.StatusOK, toPaymentRecordResponse(record))
}

// UpsertRecord handles PUT /api/v1/payments/:month
func (h *LedgerHandler) UpsertRecord(c echo.Context) error {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", nil)
	}

	var req UpsertPaymentRecordRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	record := &domain.PaymentRecord{
		Month:      int32(month),
		Prepayment: decimal.Zero,
		Lumpsum:    decimal.Zero,
	}

	record.Date, err = util.ParseDate(req.Date)
	if err != nil {
		return NewValidationError(c, "Date must be YYYY-MM-DD", []ValidationError{{Field: "date", Message: "expected YYYY-MM-DD"}})
	}

	if req.EmiPaid != "" {
		emiPaid, err := decimal.NewFromString(req.EmiPaid)
		if err != nil {
			return NewValidationError(c, "emiPaid must be a number", []ValidationError{{Field: "emiPaid", Message: "expected a number"}})
		}
		record.EmiPaid = &emiPaid
	}
	if req.Prepayment != "" {
		record.Prepayment, err = decimal.NewFromString(req.Prepayment)
		if err != nil {
			return NewValidationError(c, "prepayment must be a number", []ValidationError{{Field: "prepayment", Message: "expected a number"}})
		}
	}
	if req.Lumpsum != "" {
		record.Lumpsum, err = decimal.NewFromString(req.Lumpsum)
		if err != nil {
			return NewValidationError(c, "lumpsum must be a number", []ValidationError{{Field: "lumpsum", Message: "expected a number"}})
		}
	}

	saved, err := h.ledgerService.UpsertRecord(record)
	if err != nil {
		if isPaymentValidationError(err) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Int("month", month).Msg("Failed to upsert payment record")
		return NewInternalError(c, "Failed to save payment record")
	}

	return c.JSON(http.StatusOK, toPaymentRecordResponse(saved))
}

// DeleteRecord handles DELETE /api/v1/payments/:month
func (h *LedgerHandler) DeleteRecord(c echo.Context) error {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", nil)
	}

	if err := h.ledgerService.DeleteRecord(int32(month)); err != nil {
		if errors.Is(err, domain.ErrPaymentRecordNotFound) {
			return NewNotFoundError(c, "No payment record for month")
		}
		log.Error().Err(err).Int("month", month).Msg("Failed to delete payment record")
		return NewInternalError(c, "Failed to delete payment record")
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearRecords handles DELETE /api/v1/payments
func (h *LedgerHandler) ClearRecords(c echo.Context) error {
	if err := h.ledgerService.ClearLedger(); err != nil {
		log.Error().Err(err).Msg("Failed to clear payment ledger")
		return NewInternalError(c, "Failed to clear payment ledger")
	}

	return c.NoContent(http.StatusNoContent)
}

func toPaymentRecordResponse(record *domain.PaymentRecord) PaymentRecordResponse {
	response := PaymentRecordResponse{
		Month:      record.Month,
		Date:       util.FormatDate(record.Date),
		Prepayment: record.Prepayment.String(),
		Lumpsum:    record.Lumpsum.String(),
		CreatedAt:  record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  record.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if record.EmiPaid != nil {
		emiPaid := record.EmiPaid.String()
		response.EmiPaid = &emiPaid
	}
	return response
}

func isPaymentValidationError(err error) bool {
	return errors.Is(err, domain.ErrPaymentMonthInvalid) ||
		errors.Is(err, domain.ErrPaymentEmiInvalid) ||
		errors.Is(err, domain.ErrPaymentPrepaymentInvalid) ||
		errors.Is(err, domain.ErrPaymentLumpsumInvalid)
}
