package metrics

// OrderRecorder is notified of every order a store handles
type OrderRecorder interface {
	RecordOrder(region, kind string, ok bool)
}

// NopRecorder discards every event
type NopRecorder struct{}

func (NopRecorder) RecordOrder(string, string, bool) {}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

func status(ok bool) string {
	if ok {
		return StatusOK
	}
	return StatusError
}
