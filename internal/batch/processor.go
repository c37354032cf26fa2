// Package batch formats JSON-lines streams of scaled-integer records.
//
// Each input line is a Record; each produces one Result line on the
// output. Records that fail to format are reported in their Result and
// counted, they do not stop the run. This includes well-formed lines whose
// fields have the wrong type or overflow them. A line that is not valid
// JSON stops the run.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rshade/streamfmt/internal/profile"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Summary describes a completed run.
type Summary struct {
	RunID    string
	Records  int
	Failures int
}

// Processor formats batch records. It is safe for concurrent use; each
// Run gets its own run ID.
type Processor struct {
	logger   zerolog.Logger // logger is immutable (copy-on-write)
	profiles *profile.Set

	registry *prometheus.Registry
	renders  *prometheus.CounterVec
	faults   *prometheus.CounterVec
}

// NewProcessor returns a Processor. profiles may be nil, in which case
// records naming a profile fail with ErrNoProfiles.
func NewProcessor(logger zerolog.Logger, profiles *profile.Set) *Processor {
	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "streamfmt",
		Name:      "renders_total",
		Help:      "Records formatted successfully, by mode.",
	}, []string{"mode"})
	faults := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "streamfmt",
		Name:      "faults_total",
		Help:      "Records that failed to format, by mode.",
	}, []string{"mode"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(renders, faults)

	return &Processor{
		logger:   logger,
		profiles: profiles,
		registry: registry,
		renders:  renders,
		faults:   faults,
	}
}

// Gatherer exposes the processor's metrics.
func (p *Processor) Gatherer() prometheus.Gatherer {
	return p.registry
}

// Format renders a single record.
func (p *Processor) Format(rec Record) (string, error) {
	req, err := request(rec, p.profiles)
	if err != nil {
		p.faults.WithLabelValues("invalid").Inc()
		return "", err
	}
	mode := modeLabel(req)
	text, err := renderString(req)
	if err != nil {
		p.faults.WithLabelValues(mode).Inc()
		return "", err
	}
	p.renders.WithLabelValues(mode).Inc()
	return text, nil
}

// Run reads records from r and writes one result per record to w.
// Blank lines are skipped. Cancellation is checked between records.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	summary := Summary{RunID: uuid.New().String()}
	logger := p.logger.With().Str("run_id", summary.RunID).Logger()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	enc := json.NewEncoder(w)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var (
			rec     Record
			text    string
			typeErr *json.UnmarshalTypeError
		)
		err := json.Unmarshal([]byte(raw), &rec)
		switch {
		case errors.As(err, &typeErr):
			rec.ID = recordID(raw)
			p.faults.WithLabelValues("invalid").Inc()
			err = fmt.Errorf("invalid record: %w", err)
		case err != nil:
			logger.Error().Err(err).Int("line", line).Msg("malformed batch record")
			return summary, fmt.Errorf("line %d: %w", line, err)
		default:
			text, err = p.Format(rec)
		}
		summary.Records++

		res := Result{ID: rec.ID}
		if err != nil {
			summary.Failures++
			res.Error = err.Error()
			logger.Warn().Err(err).Int("line", line).Str("id", rec.ID).Msg("record failed to format")
		} else {
			res.Text = text
			logger.Debug().Int("line", line).Str("id", rec.ID).Str("text", text).Msg("record formatted")
		}
		if err := enc.Encode(res); err != nil {
			return summary, fmt.Errorf("failed to write result for line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read batch input: %w", err)
	}

	logger.Info().
		Int("records", summary.Records).
		Int("failures", summary.Failures).
		Msg("batch complete")
	return summary, nil
}

// recordID recovers the id of a record whose other fields failed to decode.
func recordID(raw string) string {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(raw), &head); err != nil {
		return ""
	}
	return head.ID
}
