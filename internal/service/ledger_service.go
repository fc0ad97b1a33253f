package service

import (
	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/arvhie/payoff/payoff-backend/internal/websocket"
)

// PaymentLedgerService handles payment record business logic
type PaymentLedgerService struct {
	recordRepo     domain.PaymentRecordRepository
	eventPublisher websocket.EventPublisher
}

// NewPaymentLedgerService creates a new PaymentLedgerService
func NewPaymentLedgerService(recordRepo domain.PaymentRecordRepository) *PaymentLedgerService {
	return &PaymentLedgerService{
		recordRepo: recordRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *PaymentLedgerService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *PaymentLedgerService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// UpsertRecord validates and stores a payment record for a month.
// Writing a month that already has a record replaces it.
func (s *PaymentLedgerService) UpsertRecord(record *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.recordRepo.Upsert(record)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.PaymentRecordUpdated(saved))

	return saved, nil
}

// GetRecord retrieves the payment record for a month
func (s *PaymentLedgerService) GetRecord(month int32) (*domain.PaymentRecord, error) {
	if month < 1 {
		return nil, domain.ErrPaymentMonthInvalid
	}
	return s.recordRepo.GetByMonth(month)
}

// GetRecords retrieves all stored payment records ordered by month
func (s *PaymentLedgerService) GetRecords() ([]*domain.PaymentRecord, error) {
	return s.recordRepo.GetAll()
}

// LoadLedger builds the sparse payment ledger from all stored records
func (s *PaymentLedgerService) LoadLedger() (domain.PaymentLedger, error) {
	records, err := s.recordRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return domain.NewPaymentLedger(records), nil
}

// DeleteRecord removes the payment record for a month.
// The month falls back to default behavior in subsequent schedules.
func (s *PaymentLedgerService) DeleteRecord(month int32) error {
	record, err := s.recordRepo.GetByMonth(month)
	if err != nil {
		return err
	}

	if err := s.recordRepo.Delete(month); err != nil {
		return err
	}

	s.publishEvent(websocket.PaymentRecordDeleted(record))

	return nil
}

// ClearLedger removes every stored payment record
func (s *PaymentLedgerService) ClearLedger() error {
	if err := s.recordRepo.DeleteAll(); err != nil {
		return err
	}

	s.publishEvent(websocket.PaymentLedgerCleared(nil))

	return nil
}
