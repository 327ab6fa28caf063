// Package finance holds the monetary calculation core: currency conversion,
// service cost aggregation, booking financials and payment status derivation.
// Every function is pure and operates on an explicit Rates snapshot so results
// are deterministic regardless of when the rate table is mutated.
package finance

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrUnknownCurrency = errors.New("unknown currency code")

// Rates is an immutable snapshot of the exchange rate table. Table maps a
// currency code to units of that currency per 1 unit of the base currency.
// The base currency's own rate is always 1.
type Rates struct {
	Base  string
	Table map[string]float64
}

func NewRates(base string, table map[string]float64) Rates {
	snapshot := make(map[string]float64, len(table)+1)
	for code, rate := range table {
		snapshot[code] = rate
	}

	snapshot[base] = 1

	return Rates{
		Base:  base,
		Table: snapshot,
	}
}

// Rate returns the units-per-base rate for the given currency code.
func (r Rates) Rate(code string) (float64, error) {
	if code == r.Base || code == "" {
		return 1, nil
	}

	rate, ok := r.Table[code]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}

	return rate, nil
}

// RateOrBase behaves like Rate but falls back to 1 (base) for unknown codes.
// The fallback masks bad input, so it is logged rather than returned silently.
func (r Rates) RateOrBase(code string) float64 {
	rate, err := r.Rate(code)
	if err != nil {
		log.Warn().Str("currency", code).Msg("unknown currency code, falling back to base rate")

		return 1
	}

	return rate
}

// ToBase converts an amount expressed in the given currency to the base currency.
func (r Rates) ToBase(amount float64, code string) (float64, error) {
	rate, err := r.Rate(code)
	if err != nil {
		return 0, err
	}

	return amount / rate, nil
}

// FromBase converts a base-currency amount to the given currency.
func (r Rates) FromBase(amount float64, code string) (float64, error) {
	rate, err := r.Rate(code)
	if err != nil {
		return 0, err
	}

	return amount * rate, nil
}

// Convert converts an amount between two currencies via the base currency.
func (r Rates) Convert(amount float64, from, to string) (float64, error) {
	base, err := r.ToBase(amount, from)
	if err != nil {
		return 0, err
	}

	return r.FromBase(base, to)
}
