package orderlog

import (
	"fmt"
	"strings"
)

const (
	// SinkStdout prints receipts to standard output
	SinkStdout = "stdout"
	// SinkFile appends receipts to the shared log file
	SinkFile = "file"

	// DefaultPath is the log file used when none is configured
	DefaultPath = "log.txt"
)

// Config holds receipt sink configuration
type Config struct {
	// Sink selects where receipts go (stdout, file)
	Sink string

	// File-specific configuration
	Path string
}

// SetDefaults applies the default sink and path
func (c *Config) SetDefaults() {
	if c.Sink == "" {
		c.Sink = SinkFile
	}
	if c.Path == "" {
		c.Path = DefaultPath
	}
}

// Validate checks the sink is known and has what it needs
func (c Config) Validate() error {
	switch strings.ToLower(c.Sink) {
	case SinkStdout:
		return nil
	case SinkFile:
		if c.Path == "" {
			return fmt.Errorf("path is required for %s sink", SinkFile)
		}
		return nil
	default:
		return fmt.Errorf("unsupported receipt sink: %s (supported: %s, %s)", c.Sink, SinkStdout, SinkFile)
	}
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Sink: %s, Path: %s}", c.Sink, c.Path)
}
