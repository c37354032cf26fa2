package sink

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBase is returned by WriteInt when the radix is not one of the supported bases.
var ErrBase = errors.New("unsupported integer base")

// Sink is a sequential destination for formatted output.
// Implementations are not required to be safe for concurrent use.
type Sink interface {
	// WriteBytes writes raw bytes unchanged.
	WriteBytes(p []byte) error

	// WriteText writes s unchanged.
	WriteText(s string) error

	// WriteInt writes v in the given base.
	// Dec prints the signed value; other bases print the two's-complement
	// bit pattern with upper-case digits.
	WriteInt(v int64, base Base) error

	// WriteNewline terminates the current line.
	WriteNewline() error
}

// Base selects the radix used by WriteInt.
type Base int

// Supported bases.
const (
	Bin Base = 2
	Oct Base = 8
	Dec Base = 10
	Hex Base = 16
)

// Valid reports whether b is a supported base.
func (b Base) Valid() bool {
	switch b {
	case Bin, Oct, Dec, Hex:
		return true
	}
	return false
}

func (b Base) String() string {
	switch b {
	case Bin:
		return "bin"
	case Oct:
		return "oct"
	case Dec:
		return "dec"
	case Hex:
		return "hex"
	default:
		return "base(" + strconv.Itoa(int(b)) + ")"
	}
}

// AppendInt appends the WriteInt representation of v to dst.
func AppendInt(dst []byte, v int64, base Base) ([]byte, error) {
	if !base.Valid() {
		return dst, fmt.Errorf("%w: %d", ErrBase, int(base))
	}
	if base == Dec {
		return strconv.AppendInt(dst, v, 10), nil
	}
	start := len(dst)
	dst = strconv.AppendUint(dst, uint64(v), int(base))
	for i := start; i < len(dst); i++ {
		if c := dst[i]; c >= 'a' && c <= 'f' {
			dst[i] = c - 'a' + 'A'
		}
	}
	return dst, nil
}
