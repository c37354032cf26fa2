package fixed

import (
	"math"

	"github.com/rshade/streamfmt/internal/sink"
)

// Reduce drops fraction digits from value / 10^digits until the integer
// part of the magnitude fits in budget digit positions. A negative value
// spends one position on its sign. Each dropped digit is rounded with
// (value+5)/10 under truncating division, which rounds negative halves
// toward zero (-15 becomes -1, not -2).
//
// A budget of zero or less disables reduction and yields a plain integer:
// the result is {value, 0}. Negative digits are treated as zero.
func Reduce(value int64, digits, budget int) ScaledValue {
	if budget <= 0 {
		return ScaledValue{Value: value}
	}
	if digits < 0 {
		digits = 0
	}
	if value < 0 {
		budget--
	}
	limit := pow10(budget)

	for digits > 0 {
		if n, _ := magnitude(value); n < limit {
			break
		}
		value = roundTenth(value)
		digits--
	}
	return ScaledValue{Value: value, Digits: digits}
}

// roundTenth computes (v+5)/10 with Go's truncating division without
// overflowing near math.MaxInt64.
func roundTenth(v int64) int64 {
	if v > math.MaxInt64-5 {
		return v/10 + (v%10+5)/10
	}
	return (v + 5) / 10
}

// Dynamic writes value / 10^digits to s, keeping as many fraction digits
// as the budget allows.
//
//	Dynamic(s, 12345, 2, 4) // 123.5
func Dynamic(s sink.Sink, value int64, digits, budget int) error {
	r := Reduce(value, digits, budget)
	return Fixed(s, r.Value, r.Digits)
}
