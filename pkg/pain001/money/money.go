// Package money provides exact, currency-tagged amounts for payment
// instructions. Amounts are constructed from integer minor units and all
// arithmetic stays in decimal space, so control sums never suffer binary
// floating point drift.
package money

import (
	"github.com/shopspring/decimal"

	"fjacquet/pain001/pkg/pain001"
)

// minorUnitDigits maps a currency code to the number of digits of its minor
// unit.
var minorUnitDigits = map[string]int32{
	"CHF": 2,
	"DKK": 2,
	"EUR": 2,
	"GBP": 2,
	"NOK": 2,
	"SEK": 2,
	"USD": 2,
	"JPY": 0,
	"BHD": 3,
	"KWD": 3,
	"TND": 3,
}

// Money is an immutable amount of a single currency, stored with the exact
// number of decimal places of that currency.
type Money struct {
	currency string
	amount   decimal.Decimal
	decimals int32
}

// New creates an amount from integer minor units, e.g. New("CHF", 130000) for
// CHF 1300.00 or New("KWD", 300001) for KWD 300.001.
func New(currency string, minorUnits int64) (Money, error) {
	decimals, ok := minorUnitDigits[currency]
	if !ok {
		return Money{}, pain001.NewValidationError("currency", "%q is not supported", currency)
	}
	return Money{
		currency: currency,
		amount:   decimal.New(minorUnits, -decimals),
		decimals: decimals,
	}, nil
}

// Parse creates an amount from a decimal string such as "1300.00". The value
// must not carry more decimal places than the currency has minor unit digits.
func Parse(currency, value string) (Money, error) {
	decimals, ok := minorUnitDigits[currency]
	if !ok {
		return Money{}, pain001.NewValidationError("currency", "%q is not supported", currency)
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, pain001.NewValidationError("amount", "%q is not a decimal number", value)
	}
	if amount.Exponent() < -decimals {
		return Money{}, pain001.NewValidationError("amount", "%q has more decimal places than %s allows", value, currency)
	}
	return Money{
		currency: currency,
		amount:   amount,
		decimals: decimals,
	}, nil
}

func mustNew(currency string, minorUnits int64) Money {
	m, err := New(currency, minorUnits)
	if err != nil {
		panic(err)
	}
	return m
}

// CHF creates an amount of Swiss francs from centimes.
func CHF(cents int64) Money { return mustNew("CHF", cents) }

// EUR creates an amount of euros from cents.
func EUR(cents int64) Money { return mustNew("EUR", cents) }

// GBP creates an amount of pound sterling from pence.
func GBP(pence int64) Money { return mustNew("GBP", pence) }

// USD creates an amount of US dollars from cents.
func USD(cents int64) Money { return mustNew("USD", cents) }

// JPY creates an amount of Japanese yen.
func JPY(yen int64) Money { return mustNew("JPY", yen) }

// KWD creates an amount of Kuwaiti dinars from fils.
func KWD(fils int64) Money { return mustNew("KWD", fils) }

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Decimals returns the number of minor unit digits of the currency.
func (m Money) Decimals() int32 {
	return m.decimals
}

// Format returns the decimal string with the exact number of minor unit
// digits of the currency, e.g. "1300.00" or "300.001".
func (m Money) Format() string {
	return m.amount.StringFixed(m.decimals)
}

// Equal reports whether two amounts have the same currency and value.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}
