package batch

import (
	"errors"
	"fmt"

	"github.com/rshade/streamfmt/internal/profile"
	"github.com/rshade/streamfmt/internal/sink"
	"github.com/rshade/streamfmt/internal/stream"
)

// ErrNoProfiles is returned when a record names a profile but the
// processor has no profile set.
var ErrNoProfiles = errors.New("no profiles loaded")

// DefaultMode is used for records that set neither mode nor profile.
const DefaultMode = "fixed"

// Record is one formatting request read from a batch input line.
type Record struct {
	ID      string `json:"id,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Profile string `json:"profile,omitempty"`
	Value   int64  `json:"value"`
	Digits  int    `json:"digits,omitempty"`
	Budget  int    `json:"budget,omitempty"`
	Width   int    `json:"width,omitempty"`
}

// Result is written for every record. Exactly one of Text and Error is set.
type Result struct {
	ID    string `json:"id,omitempty"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// request resolves rec into a stream request, using profiles when the
// record names one. Profile settings take precedence over the record's
// own mode, digits, budget and width.
func request(rec Record, profiles *profile.Set) (stream.Request, error) {
	if rec.Profile != "" {
		if profiles == nil {
			return stream.Request{}, fmt.Errorf("%w: record asks for %q", ErrNoProfiles, rec.Profile)
		}
		p, err := profiles.Lookup(rec.Profile)
		if err != nil {
			return stream.Request{}, err
		}
		return p.Request(rec.Value), nil
	}

	mode := rec.Mode
	if mode == "" {
		mode = DefaultMode
	}
	kind, base, err := stream.ParseKind(mode)
	if err != nil {
		return stream.Request{}, err
	}
	switch kind {
	case stream.KindFixed:
		return stream.Fixed(rec.Value, rec.Digits), nil
	case stream.KindDynamic:
		return stream.Dynamic(rec.Value, rec.Digits, rec.Budget), nil
	case stream.KindLeading0:
		return stream.Leading0(rec.Value, rec.Digits, rec.Width), nil
	case stream.KindBased:
		return stream.Based(rec.Value, base), nil
	default:
		return stream.Request{}, fmt.Errorf("mode %q does not format integers", mode)
	}
}

// modeLabel names a request for metrics.
func modeLabel(r stream.Request) string {
	if r.Kind == stream.KindBased {
		return r.Base.String()
	}
	return r.Kind.String()
}

func renderString(r stream.Request) (string, error) {
	var b sink.Buffer
	if err := stream.Render(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}
