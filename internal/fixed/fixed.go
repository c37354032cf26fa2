// Package fixed renders scaled integers as decimal text.
//
// A scaled integer is a signed value paired with an implied count of
// fraction digits, so {Value: 1234, Digits: 2} represents 12.34. Three
// renderers are provided:
//
//   - Fixed renders the value with exactly the requested fraction digits.
//   - Dynamic drops fraction digits, rounding each away, until the integer
//     part fits a length budget.
//   - Leading0 left-pads the value with zeros to a minimum field width.
//
// All renderers write to an explicit sink.Sink and keep no state between
// calls. Digits are assembled in a bounded buffer; any request that would
// overflow it fails with an error wrapping ErrCapacity.
package fixed

import (
	"errors"
	"math"
	"strconv"
)

// MaxDigits is the largest fraction digit count a renderer accepts.
// It equals the decimal digit count of the largest int64 magnitude.
const MaxDigits = 19

// bufferSize holds a sign, a leading zero, MaxDigits digits and the decimal point.
const bufferSize = 1 + 1 + MaxDigits + 1

// ErrCapacity reports a request whose rendering does not fit the digit buffer.
var ErrCapacity = errors.New("fixed-point rendering exceeds buffer capacity")

// ScaledValue represents Value / 10^Digits.
type ScaledValue struct {
	Value  int64
	Digits int
}

// String renders v with Fixed semantics. Values with more than MaxDigits
// fraction digits print a fmt-style error marker such as
// "%!(CAPACITY=5/10^30)".
func (v ScaledValue) String() string {
	s, err := FormatFixed(v.Value, v.Digits)
	if err != nil {
		return "%!(CAPACITY=" + strconv.FormatInt(v.Value, 10) + "/10^" + strconv.Itoa(v.Digits) + ")"
	}
	return s
}

// digitBuffer is filled from the end toward the start.
type digitBuffer struct {
	buf [bufferSize]byte
	pos int
}

func newDigitBuffer() digitBuffer {
	return digitBuffer{pos: bufferSize}
}

func (b *digitBuffer) prepend(c byte) error {
	if b.pos == 0 {
		return ErrCapacity
	}
	b.pos--
	b.buf[b.pos] = c
	return nil
}

func (b *digitBuffer) bytes() []byte {
	return b.buf[b.pos:]
}

// magnitude returns |v| and whether v is negative. math.MinInt64 is
// handled through the unsigned conversion.
func magnitude(v int64) (uint64, bool) {
	if v < 0 {
		return -uint64(v), true
	}
	return uint64(v), false
}

// pow10 returns 10^n, saturating at math.MaxUint64.
func pow10(n int) uint64 {
	b := uint64(1)
	for ; n > 0; n-- {
		b = mul10(b)
	}
	return b
}

func mul10(b uint64) uint64 {
	if b > math.MaxUint64/10 {
		return math.MaxUint64
	}
	return b * 10
}
