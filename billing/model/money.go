package model

import (
	"github.com/shopspring/decimal"
)

// Money carries an exact decimal amount together with its ISO-4217 currency
// code. Amounts are never represented as floats.
type Money struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

func NewMoney(value string, currency string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{Value: d, Currency: currency}, nil
}
