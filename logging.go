package banda

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/banda-ui/banda/state"
)

var (
	loggerMu sync.RWMutex
	logger   = newDiscardLogger()
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Logger returns the kit's logger. It discards everything until SetLogger is
// called — a TUI cannot log to stderr without corrupting the alternate
// screen, so logging is opt-in and usually points at a file.
func Logger() *logrus.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger routes the kit's logging (and the state package's debug lines)
// to l. Pass nil to discard.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newDiscardLogger()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
	state.SetLogger(l)
}
