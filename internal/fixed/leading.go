package fixed

import (
	"strings"

	"github.com/rshade/streamfmt/internal/sink"
)

// zeroChunk bounds each padding write.
var zeroChunk = strings.Repeat("0", 64)

// normalizeWidthDigits treats digit counts outside [0, width) as zero.
func normalizeWidthDigits(digits, width int) int {
	if digits < 0 || digits >= width {
		return 0
	}
	return digits
}

// LeadingZeros returns how many '0' characters Leading0 writes between the
// sign and the rendered magnitude, along with the fraction digit count
// actually used.
//
// Width counts the sign, the integer digits (including the single zero of
// a purely fractional value) and the fraction digits; the decimal point is
// not counted.
func LeadingZeros(value int64, digits, width int) (zeros, used int) {
	digits = normalizeWidthDigits(digits, width)
	v, neg := magnitude(value)

	consumed := digits
	limit := pow10(digits)
	if neg {
		consumed++
	}
	if v < limit {
		// Purely fractional: the leading zero before the point takes a column.
		consumed++
		limit = mul10(limit)
	}
	for ; consumed < width; consumed++ {
		if v < limit {
			// The threshold only grows, so every remaining column is a zero.
			return width - consumed, digits
		}
		limit = mul10(limit)
	}
	return 0, digits
}

// Leading0 writes value / 10^digits to s left-padded with zeros to width.
// Digit counts below zero or not less than width are treated as zero.
// Nothing is written when the request fails.
//
//	Leading0(s, 1234, 2, 5) // 012.34
func Leading0(s sink.Sink, value int64, digits, width int) error {
	zeros, digits := LeadingZeros(value, digits, width)
	v, neg := magnitude(value)

	var scratch [bufferSize]byte
	body, err := appendScaled(scratch[:0], false, v, digits)
	if err != nil {
		return err
	}
	if neg {
		if err := s.WriteText("-"); err != nil {
			return err
		}
	}
	for zeros > 0 {
		n := min(zeros, len(zeroChunk))
		if err := s.WriteText(zeroChunk[:n]); err != nil {
			return err
		}
		zeros -= n
	}
	return s.WriteText(string(body))
}
