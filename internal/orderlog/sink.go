package orderlog

import (
	"fmt"
	"io"
	"strings"
)

// Sink receives receipt text and owns whatever resource it writes to
type Sink interface {
	Write(text string) error
	Close() error
}

// NewSink builds the receipt sink selected by the configuration.
// stdout is only used by the stdout sink.
func NewSink(cfg Config, stdout io.Writer) (Sink, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.WithField("config", cfg.String()).Info("Initializing receipt sink")

	switch strings.ToLower(cfg.Sink) {
	case SinkStdout:
		return NewConsoleWriter(stdout), nil
	case SinkFile:
		logger, err := Open(cfg)
		if err != nil {
			return nil, err
		}
		return logger, nil
	default:
		return nil, fmt.Errorf("unsupported receipt sink: %s", cfg.Sink)
	}
}
