package orderlog

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// TimestampLayout is appended to every log entry
const TimestampLayout = time.ANSIC

var (
	// ErrLoggerInit is returned when the log file cannot be opened
	ErrLoggerInit = errors.New("logger initialization failed")
	// ErrLoggerClosed is returned when writing to a closed logger
	ErrLoggerClosed = errors.New("logger is closed")
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// receiptFormatter renders an entry as its message, a space, the local time and a newline
type receiptFormatter struct {
	// now overrides the entry time when set
	now func() time.Time
}

func (f *receiptFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	ts := entry.Time
	if f.now != nil {
		ts = f.now()
	}
	return []byte(entry.Message + " " + ts.Format(TimestampLayout) + "\n"), nil
}

// FileLogger appends timestamped entries to a text file.
// A single instance is meant to be shared by every store.
type FileLogger struct {
	// guards closed; entry writes are serialized by the logrus logger
	mu        sync.RWMutex
	closed    bool
	file      *os.File
	path      string
	formatter *receiptFormatter
	receipts  *logrus.Logger
}

// Open opens the configured log file in append mode, creating it if needed
func Open(cfg Config) (*FileLogger, error) {
	cfg.SetDefaults()

	log.WithFields(logrus.Fields{
		"sink": SinkFile,
		"path": cfg.Path,
	}).Info("Opening receipt log")

	file, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.WithError(err).WithField("path", cfg.Path).Error("Failed to open receipt log")
		return nil, fmt.Errorf("%w: cannot open log file %s: %v", ErrLoggerInit, cfg.Path, err)
	}

	formatter := &receiptFormatter{}
	receipts := &logrus.Logger{
		Out:       file,
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
		ExitFunc:  os.Exit,
	}

	return &FileLogger{
		file:      file,
		path:      cfg.Path,
		formatter: formatter,
		receipts:  receipts,
	}, nil
}

// Write appends text followed by a space, the local time and a newline
func (l *FileLogger) Write(text string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return ErrLoggerClosed
	}

	l.receipts.Info(text)

	log.WithField("path", l.path).Debug("Receipt appended")
	return nil
}

// Close closes the underlying file. Closing twice is a no-op.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	log.WithField("path", l.path).Debug("Closing receipt log")
	return l.file.Close()
}
