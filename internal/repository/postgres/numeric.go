package postgres

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// scannable abstracts pgx.Row and pgx.Rows for shared scan helpers
type scannable interface {
	Scan(dest ...any) error
}

// pgNumericToDecimal converts a pgtype.Numeric to decimal.Decimal.
// NULL and NaN map to zero.
func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// pgNumericToDecimalPtr converts a nullable pgtype.Numeric to *decimal.Decimal
func pgNumericToDecimalPtr(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := pgNumericToDecimal(n)
	return &d
}

// decimalToPgNumeric converts a decimal.Decimal to pgtype.Numeric
func decimalToPgNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}
	}
	return n
}

// decimalPtrToPgNumeric converts a *decimal.Decimal to a nullable pgtype.Numeric
func decimalPtrToPgNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{Valid: false}
	}
	return decimalToPgNumeric(*d)
}
