package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
)

// PaymentRecordRepository implements domain.PaymentRecordRepository using the payment_records table
type PaymentRecordRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRecordRepository creates a new PaymentRecordRepository
func NewPaymentRecordRepository(pool *pgxpool.Pool) *PaymentRecordRepository {
	return &PaymentRecordRepository{pool: pool}
}

// Upsert inserts or replaces the payment record for a month
func (r *PaymentRecordRepository) Upsert(record *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	ctx := context.Background()

	query := `
		INSERT INTO payment_records (month, payment_date, emi_paid, prepayment, lumpsum)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (month) DO UPDATE SET
			payment_date = EXCLUDED.payment_date,
			emi_paid     = EXCLUDED.emi_paid,
			prepayment   = EXCLUDED.prepayment,
			lumpsum      = EXCLUDED.lumpsum,
			updated_at   = NOW()
		RETURNING month, payment_date, emi_paid, prepayment, lumpsum, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		record.Month,
		record.Date,
		decimalPtrToPgNumeric(record.EmiPaid),
		decimalToPgNumeric(record.Prepayment),
		decimalToPgNumeric(record.Lumpsum),
	)

	saved, err := scanPaymentRecord(row)
	if err != nil {
		return nil, fmt.Errorf("upsert payment record: %w", err)
	}
	return saved, nil
}

// GetByMonth retrieves the payment record for a month
func (r *PaymentRecordRepository) GetByMonth(month int32) (*domain.PaymentRecord, error) {
	ctx := context.Background()

	query := `
		SELECT month, payment_date, emi_paid, prepayment, lumpsum, created_at, updated_at
		FROM payment_records
		WHERE month = $1
	`
	record, err := scanPaymentRecord(r.pool.QueryRow(ctx, query, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentRecordNotFound
		}
		return nil, fmt.Errorf("get payment record: %w", err)
	}
	return record, nil
}

// GetAll retrieves all payment records ordered by month
func (r *PaymentRecordRepository) GetAll() ([]*domain.PaymentRecord, error) {
	ctx := context.Background()

	query := `
		SELECT month, payment_date, emi_paid, prepayment, lumpsum, created_at, updated_at
		FROM payment_records
		ORDER BY month
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query payment records: %w", err)
	}
	defer rows.Close()

	var records []*domain.PaymentRecord
	for rows.Next() {
		record, err := scanPaymentRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Delete removes the payment record for a month
func (r *PaymentRecordRepository) Delete(month int32) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM payment_records WHERE month = $1`, month)
	if err != nil {
		return fmt.Errorf("delete payment record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentRecordNotFound
	}
	return nil
}

// DeleteAll removes every payment record
func (r *PaymentRecordRepository) DeleteAll() error {
	ctx := context.Background()

	if _, err := r.pool.Exec(ctx, `DELETE FROM payment_records`); err != nil {
		return fmt.Errorf("clear payment records: %w", err)
	}
	return nil
}

func scanPaymentRecord(s scannable) (*domain.PaymentRecord, error) {
	var (
		record  domain.PaymentRecord
		date    pgtype.Date
		emiPaid pgtype.Numeric
		prepay  pgtype.Numeric
		lumpsum pgtype.Numeric
	)

	err := s.Scan(&record.Month, &date, &emiPaid, &prepay, &lumpsum, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if date.Valid {
		record.Date = date.Time
	} else {
		record.Date = time.Time{}
	}
	record.EmiPaid = pgNumericToDecimalPtr(emiPaid)
	record.Prepayment = pgNumericToDecimal(prepay)
	record.Lumpsum = pgNumericToDecimal(lumpsum)

	return &record, nil
}
