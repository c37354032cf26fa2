package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	envProfiles = "STREAMFMT_PROFILES"
	envLogLevel = "STREAMFMT_LOG_LEVEL"
)

// Config holds the command line settings.
// Args holds the positional arguments left after flag parsing.
type Config struct {
	Batch        bool
	ProfilesPath string
	Profile      string
	MetricsOut   string
	CRLF         bool
	LogLevel     zerolog.Level
	Args         []string
}

// parseConfig parses args, falling back to environment variables for the
// profiles path and log level. An invalid log level is logged and replaced
// by info.
func parseConfig(args []string, output io.Writer, logger zerolog.Logger) (*Config, error) {
	config := &Config{}
	var level string

	fs := flag.NewFlagSet("streamfmt", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "usage: streamfmt [flags] MODE VALUE [DIGITS [LIMIT]]\n")
		fmt.Fprintf(output, "       streamfmt [flags] -profile NAME VALUE\n")
		fmt.Fprintf(output, "       streamfmt [flags] -batch < records.jsonl\n\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&config.Batch, "batch", false, "Read JSON-lines records from stdin and write JSON-lines results")
	fs.StringVar(&config.ProfilesPath, "profiles", os.Getenv(envProfiles), "YAML file with named formatting profiles")
	fs.StringVar(&config.Profile, "profile", "", "Profile to apply to a single VALUE")
	fs.StringVar(&config.MetricsOut, "metrics-out", "", "Write prometheus metrics to this textfile on exit")
	fs.BoolVar(&config.CRLF, "crlf", false, "Terminate single-value output with CRLF")
	fs.StringVar(&level, "log-level", os.Getenv(envLogLevel), "Log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	config.Args = fs.Args()

	config.LogLevel = zerolog.InfoLevel
	if level = strings.TrimSpace(level); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || parsed == zerolog.NoLevel {
			logger.Warn().Str("value", level).Msg("invalid log level, using info")
		} else {
			config.LogLevel = parsed
		}
	}

	switch {
	case config.Batch && len(config.Args) > 0:
		return nil, fmt.Errorf("-batch takes no positional arguments")
	case config.Batch && config.Profile != "":
		return nil, fmt.Errorf("-profile applies to single values; name profiles per record in batch mode")
	case !config.Batch && config.Profile != "" && len(config.Args) != 1:
		return nil, fmt.Errorf("-profile expects exactly one VALUE argument")
	case !config.Batch && config.Profile == "" && (len(config.Args) < 2 || len(config.Args) > 4):
		return nil, fmt.Errorf("expected MODE VALUE [DIGITS [LIMIT]], got %d arguments", len(config.Args))
	case config.Profile != "" && config.ProfilesPath == "":
		return nil, fmt.Errorf("-profile needs -profiles or %s", envProfiles)
	}

	logger.Debug().
		Bool("batch", config.Batch).
		Str("profiles", config.ProfilesPath).
		Str("log_level", config.LogLevel.String()).
		Msg("configuration parsed")

	return config, nil
}
