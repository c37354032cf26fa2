package stream

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rshade/streamfmt/internal/fixed"
	"github.com/rshade/streamfmt/internal/sink"
)

// Render writes r to s.
func Render(s sink.Sink, r Request) error {
	switch r.Kind {
	case KindText:
		return s.WriteText(r.Text)
	case KindFixed:
		return fixed.Fixed(s, r.Value, r.Digits)
	case KindDynamic:
		return fixed.Dynamic(s, r.Value, r.Digits, r.Limit)
	case KindLeading0:
		return fixed.Leading0(s, r.Value, r.Digits, r.Limit)
	case KindBased:
		return s.WriteInt(r.Value, r.Base)
	case KindByte:
		return s.WriteBytes([]byte{byte(r.Value)})
	case KindFloat:
		return s.WriteText(formatFloat(r.Float, r.Digits))
	case KindTab:
		return s.WriteText("\t")
	case KindEndl:
		return s.WriteNewline()
	default:
		return fmt.Errorf("%w: %s", ErrKind, r.Kind)
	}
}

// formatFloat prints v in fixed notation. Non-finite values print as
// "nan", "inf" and "-inf".
func formatFloat(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	digits = max(0, min(digits, fixed.MaxDigits))
	return strconv.FormatFloat(v, 'f', digits, 64)
}
