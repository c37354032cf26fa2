package stream

import "github.com/rshade/streamfmt/internal/sink"

// Stream writes requests to a sink in order. After the first failed
// request every later Write is a no-op and Err reports that failure.
type Stream struct {
	sink sink.Sink
	err  error
}

// New returns a Stream writing to s.
func New(s sink.Sink) *Stream {
	return &Stream{sink: s}
}

// Write renders each request in turn and returns the stream for chaining.
func (s *Stream) Write(reqs ...Request) *Stream {
	for _, r := range reqs {
		if s.err != nil {
			return s
		}
		s.err = Render(s.sink, r)
	}
	return s
}

// Print writes the default fmt representation of each value.
func (s *Stream) Print(vs ...any) *Stream {
	for _, v := range vs {
		s.Write(Print(v))
	}
	return s
}

// Endl terminates the current line.
func (s *Stream) Endl() *Stream {
	return s.Write(Endl())
}

// Err returns the first error encountered, if any.
func (s *Stream) Err() error {
	return s.err
}
