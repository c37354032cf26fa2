// Package stream composes formatting requests and writes them to a sink.
//
// Each piece of output is described by a Request, an explicit tagged value
// naming the formatting mode and carrying its payload. A Stream writes a
// sequence of requests to one sink.Sink and remembers the first failure:
//
//	s := stream.New(w)
//	s.Write(stream.Text("V="), stream.Fixed(1234, 2), stream.Endl())
//	if err := s.Err(); err != nil { ... }
package stream

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/streamfmt/internal/sink"
)

// LibraryVersion identifies the request set understood by this package.
const LibraryVersion = 5

// ErrKind is returned for a request whose Kind is unknown.
var ErrKind = errors.New("unknown request kind")

// Kind selects how a Request is rendered.
type Kind int

// Request kinds.
const (
	KindText Kind = iota
	KindFixed
	KindDynamic
	KindLeading0
	KindBased
	KindByte
	KindFloat
	KindTab
	KindEndl
)

var kindNames = map[Kind]string{
	KindText:     "text",
	KindFixed:    "fixed",
	KindDynamic:  "dynamic",
	KindLeading0: "leading0",
	KindBased:    "based",
	KindByte:     "byte",
	KindFloat:    "float",
	KindTab:      "tab",
	KindEndl:     "endl",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a mode name to a Kind. The base names "bin", "oct", "dec"
// and "hex" select KindBased together with the matching base; for every
// other kind the returned base is sink.Dec.
func ParseKind(name string) (Kind, sink.Base, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "bin":
		return KindBased, sink.Bin, nil
	case "oct":
		return KindBased, sink.Oct, nil
	case "dec":
		return KindBased, sink.Dec, nil
	case "hex":
		return KindBased, sink.Hex, nil
	case "zeropad":
		return KindLeading0, sink.Dec, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, sink.Dec, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrKind, name)
}

// Request is a single formatting instruction.
//
// Value and Digits hold the scaled integer for the numeric kinds. Limit is
// the budget for KindDynamic and the field width for KindLeading0.
type Request struct {
	Kind   Kind
	Value  int64
	Digits int
	Limit  int
	Base   sink.Base
	Float  float64
	Text   string
}

// Text writes s unchanged.
func Text(s string) Request {
	return Request{Kind: KindText, Text: s}
}

// Print writes the default fmt representation of v.
func Print(v any) Request {
	return Text(fmt.Sprint(v))
}

// Fixed writes value / 10^digits with exactly digits fraction digits.
func Fixed(value int64, digits int) Request {
	return Request{Kind: KindFixed, Value: value, Digits: digits}
}

// Dynamic writes value / 10^digits with as many fraction digits as fit
// in budget integer positions.
func Dynamic(value int64, digits, budget int) Request {
	return Request{Kind: KindDynamic, Value: value, Digits: digits, Limit: budget}
}

// Leading0 writes value / 10^digits left-padded with zeros to width.
func Leading0(value int64, digits, width int) Request {
	return Request{Kind: KindLeading0, Value: value, Digits: digits, Limit: width}
}

// Based writes value in the given base.
func Based(value int64, base sink.Base) Request {
	return Request{Kind: KindBased, Value: value, Base: base}
}

// Bin writes value in base 2.
func Bin(value int64) Request { return Based(value, sink.Bin) }

// Oct writes value in base 8.
func Oct(value int64) Request { return Based(value, sink.Oct) }

// Dec writes value in base 10.
func Dec(value int64) Request { return Based(value, sink.Dec) }

// Hex writes value in base 16.
func Hex(value int64) Request { return Based(value, sink.Hex) }

// Byte writes the single raw byte b.
func Byte(b byte) Request {
	return Request{Kind: KindByte, Value: int64(b)}
}

// Float writes v in fixed notation with digits fraction digits.
func Float(v float64, digits int) Request {
	return Request{Kind: KindFloat, Float: v, Digits: digits}
}

// Tab writes a horizontal tab.
func Tab() Request {
	return Request{Kind: KindTab}
}

// Endl terminates the current line.
func Endl() Request {
	return Request{Kind: KindEndl}
}
