package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentRecordNotFound    = errors.New("payment record not found")
	ErrPaymentMonthInvalid      = errors.New("payment month must be at least 1")
	ErrPaymentEmiInvalid        = errors.New("paid installment must be positive")
	ErrPaymentPrepaymentInvalid = errors.New("prepayment must not be negative")
	ErrPaymentLumpsumInvalid    = errors.New("lumpsum must not be negative")
)

// PaymentRecord is a sparse per-month override entered through the ledger
// grid. EmiPaid nil means the standard installment was paid that month.
// The date is display-only and never feeds the math.
type PaymentRecord struct {
	Month      int32            `json:"month"`
	Date       time.Time        `json:"date"`
	EmiPaid    *decimal.Decimal `json:"emiPaid,omitempty"`
	Prepayment decimal.Decimal  `json:"prepayment"`
	Lumpsum    decimal.Decimal  `json:"lumpsum"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func (p *PaymentRecord) Validate() error {
	if p.Month < 1 {
		return ErrPaymentMonthInvalid
	}
	if p.EmiPaid != nil && p.EmiPaid.LessThanOrEqual(decimal.Zero) {
		return ErrPaymentEmiInvalid
	}
	if p.Prepayment.IsNegative() {
		return ErrPaymentPrepaymentInvalid
	}
	if p.Lumpsum.IsNegative() {
		return ErrPaymentLumpsumInvalid
	}
	return nil
}

// PaymentLedger is the read view the simulator consumes: at most one
// record per month, keyed by month number. The owning service keeps the
// one-record-per-month invariant; the engine only reads.
type PaymentLedger map[int32]*PaymentRecord

// NewPaymentLedger builds a ledger from a list of records. Later records
// win on duplicate months, mirroring how the grid overwrites a row.
func NewPaymentLedger(records []*PaymentRecord) PaymentLedger {
	ledger := make(PaymentLedger, len(records))
	for _, r := range records {
		ledger[r.Month] = r
	}
	return ledger
}

// Effective resolves the amounts the simulator should apply for a month.
// A missing month synthesizes the defaults: standard EMI, no extras.
func (l PaymentLedger) Effective(month int32, standardEmi decimal.Decimal) (emiPaid, prepayment, lumpsum decimal.Decimal) {
	record, ok := l[month]
	if !ok {
		return standardEmi, decimal.Zero, decimal.Zero
	}
	emiPaid = standardEmi
	if record.EmiPaid != nil {
		emiPaid = *record.EmiPaid
	}
	return emiPaid, record.Prepayment, record.Lumpsum
}

type PaymentRecordRepository interface {
	Upsert(record *PaymentRecord) (*PaymentRecord, error)
	GetByMonth(month int32) (*PaymentRecord, error)
	GetAll() ([]*PaymentRecord, error)
	Delete(month int32) error
	DeleteAll() error
}
