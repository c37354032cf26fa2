// Command streamfmt renders scaled integers as decimal text.
//
//	streamfmt fixed 1234 2        # 12.34
//	streamfmt dynamic 12345 2 4   # 123.5
//	streamfmt leading0 1234 2 5   # 012.34
//	streamfmt -batch < records.jsonl
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rshade/streamfmt/internal/batch"
	"github.com/rshade/streamfmt/internal/profile"
	"github.com/rshade/streamfmt/internal/sink"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(zerolog.InfoLevel).With().Timestamp().Str("component", "streamfmt").Logger()

	config, err := parseConfig(args, stderr, logger)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "[streamfmt] %v\n", err)
		return 2
	}
	logger = logger.Level(config.LogLevel)

	var profiles *profile.Set
	if config.ProfilesPath != "" {
		profiles, err = profile.LoadFile(config.ProfilesPath)
		if err != nil {
			logger.Error().Err(err).Msg("failed to load profiles")
			return 1
		}
		logger.Debug().Int("count", profiles.Len()).Msg("profiles loaded")
	}

	processor := batch.NewProcessor(logger, profiles)
	code := 0
	if config.Batch {
		if _, err := processor.Run(ctx, stdin, stdout); err != nil {
			logger.Error().Err(err).Msg("batch failed")
			code = 1
		}
	} else if err := single(processor, config, stdout); err != nil {
		logger.Error().Err(err).Msg("format failed")
		code = 1
	}

	if config.MetricsOut != "" {
		if err := prometheus.WriteToTextfile(config.MetricsOut, processor.Gatherer()); err != nil {
			logger.Error().Err(err).Str("path", config.MetricsOut).Msg("failed to write metrics")
			code = 1
		}
	}
	return code
}

// single formats the positional arguments as one record.
func single(processor *batch.Processor, config *Config, stdout io.Writer) error {
	rec, err := recordFromArgs(config)
	if err != nil {
		return err
	}
	text, err := processor.Format(rec)
	if err != nil {
		return err
	}

	newline := "\n"
	if config.CRLF {
		newline = sink.DefaultNewline
	}
	out := sink.NewWriter(stdout, sink.WithNewline(newline))
	if err := out.WriteText(text); err != nil {
		return err
	}
	return out.WriteNewline()
}

func recordFromArgs(config *Config) (batch.Record, error) {
	if config.Profile != "" {
		value, err := parseInt("VALUE", config.Args[0])
		if err != nil {
			return batch.Record{}, err
		}
		return batch.Record{Profile: config.Profile, Value: value}, nil
	}

	rec := batch.Record{Mode: config.Args[0]}
	var err error
	if rec.Value, err = parseInt("VALUE", config.Args[1]); err != nil {
		return batch.Record{}, err
	}
	if len(config.Args) > 2 {
		digits, err := parseInt("DIGITS", config.Args[2])
		if err != nil {
			return batch.Record{}, err
		}
		rec.Digits = int(digits)
	}
	if len(config.Args) > 3 {
		limit, err := parseInt("LIMIT", config.Args[3])
		if err != nil {
			return batch.Record{}, err
		}
		rec.Budget = int(limit)
		rec.Width = int(limit)
	}
	return rec, nil
}

func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}
