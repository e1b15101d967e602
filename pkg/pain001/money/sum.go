package money

import "github.com/shopspring/decimal"

// Sum accumulates amounts of possibly different currencies into one reporting
// total, as required for the control sum of a message. The formatted value
// uses the largest minor unit digit count seen among the accumulated
// currencies; scaling terms up to the common denominator loses no precision
// because all arithmetic is decimal.
//
// The zero Sum is an empty total.
type Sum struct {
	total    decimal.Decimal
	decimals int32
}

// Plus returns a new Sum with the amount added. Sums are values; the receiver
// is left untouched, which makes accumulation commutative and associative.
func (s Sum) Plus(m Money) Sum {
	decimals := s.decimals
	if m.decimals > decimals {
		decimals = m.decimals
	}
	return Sum{
		total:    s.total.Add(m.amount),
		decimals: decimals,
	}
}

// Merge folds another Sum into this one.
func (s Sum) Merge(other Sum) Sum {
	decimals := s.decimals
	if other.decimals > decimals {
		decimals = other.decimals
	}
	return Sum{
		total:    s.total.Add(other.total),
		decimals: decimals,
	}
}

// Decimal returns the accumulated total.
func (s Sum) Decimal() decimal.Decimal {
	return s.total
}

// Format returns the total with the maximum minor unit digit count observed,
// e.g. "8410.001" when CHF and KWD amounts were summed.
func (s Sum) Format() string {
	return s.total.StringFixed(s.decimals)
}
