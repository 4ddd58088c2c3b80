package orderlog

import (
	"io"
	"sync"
)

const (
	orderSeparator   = "\n\n"
	sectionSeparator = "\n\n\n"
)

// ConsoleWriter prints receipts separated by a blank line.
// Section widens the gap before the next receipt, e.g. between stores.
type ConsoleWriter struct {
	mu      sync.Mutex
	out     io.Writer
	started bool
	section bool
}

// NewConsoleWriter creates a ConsoleWriter printing to out
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

func (w *ConsoleWriter) Write(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		sep := orderSeparator
		if w.section {
			sep = sectionSeparator
		}
		text = sep + text
	}

	if _, err := io.WriteString(w.out, text); err != nil {
		return err
	}
	w.started = true
	w.section = false
	return nil
}

// Section marks the start of a new group of receipts
func (w *ConsoleWriter) Section() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.section = w.started
}

// Close ends the output with a newline if anything was printed.
// The underlying writer is owned by the caller.
func (w *ConsoleWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return nil
	}
	w.started = false
	_, err := io.WriteString(w.out, "\n")
	return err
}
