package widget

import "time"

// ProgressStatus indicates the state of a long-running operation.
type ProgressStatus string

const (
	ProgressRunning ProgressStatus = "running"
	ProgressDone    ProgressStatus = "done"
	ProgressError   ProgressStatus = "error"
	ProgressAborted ProgressStatus = "aborted"
)

// ProgressEvent is one update from a long-running operation (uploads,
// background jobs). Percent is 0..1; negative means indeterminate.
type ProgressEvent struct {
	ID        string
	Message   string
	Status    ProgressStatus
	Percent   float64
	Timestamp time.Time
}

// ProgressEmitter emits events to a channel a widget consumes.
type ProgressEmitter struct {
	Ch chan<- ProgressEvent
}

// Emit sends the event to the channel. Non-blocking: a full channel drops
// the event rather than stalling the producing goroutine.
func (e *ProgressEmitter) Emit(ev ProgressEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
	}
}
