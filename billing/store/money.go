package store

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// NumericToDecimal converts a scanned numeric column into an exact decimal.
func NumericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Decimal{}, fmt.Errorf("numeric value is null")
	}
	if n.NaN {
		return decimal.Decimal{}, fmt.Errorf("numeric value is NaN")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

// DecimalToNumeric converts an exact decimal into a numeric bind parameter.
func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}
