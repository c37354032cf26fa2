package fixed

import (
	"fmt"
	"strconv"

	"github.com/rshade/streamfmt/internal/sink"
)

// Fixed writes value / 10^digits to s with exactly digits fraction digits.
// A digits count of zero or less writes the plain decimal value.
//
//	Fixed(s, 1234, 2) // 12.34
//	Fixed(s, 5, 3)    // 0.005
func Fixed(s sink.Sink, value int64, digits int) error {
	if digits <= 0 {
		return s.WriteInt(value, sink.Dec)
	}
	n, neg := magnitude(value)
	return writeScaled(s, neg, n, digits)
}

// AppendFixed appends the Fixed rendering of value / 10^digits to dst.
func AppendFixed(dst []byte, value int64, digits int) ([]byte, error) {
	n, neg := magnitude(value)
	return appendScaled(dst, neg, n, digits)
}

func writeScaled(s sink.Sink, neg bool, n uint64, digits int) error {
	var scratch [bufferSize]byte
	out, err := appendScaled(scratch[:0], neg, n, digits)
	if err != nil {
		return err
	}
	return s.WriteText(string(out))
}

// appendScaled renders the magnitude n with digits fraction digits,
// prefixed by '-' when neg is set.
func appendScaled(dst []byte, neg bool, n uint64, digits int) ([]byte, error) {
	if digits <= 0 {
		if neg {
			dst = append(dst, '-')
		}
		return strconv.AppendUint(dst, n, 10), nil
	}
	if digits > MaxDigits {
		return dst, fmt.Errorf("%w: %d fraction digits, limit %d", ErrCapacity, digits, MaxDigits)
	}

	b := newDigitBuffer()
	i := digits
	for {
		q := n / 10
		if err := b.prepend(byte(n-q*10) + '0'); err != nil {
			return dst, err
		}
		n = q
		i--
		if i == 0 {
			if err := b.prepend('.'); err != nil {
				return dst, err
			}
		}
		if n == 0 {
			break
		}
	}

	// Magnitude ran out before the decimal point: zero-fill the fraction.
	for i > 0 {
		if err := b.prepend('0'); err != nil {
			return dst, err
		}
		i--
		if i == 0 {
			if err := b.prepend('.'); err != nil {
				return dst, err
			}
		}
	}
	// The point is the leftmost character, so the integer part is a single zero.
	if i == 0 {
		if err := b.prepend('0'); err != nil {
			return dst, err
		}
	}
	if neg {
		if err := b.prepend('-'); err != nil {
			return dst, err
		}
	}
	return append(dst, b.bytes()...), nil
}
