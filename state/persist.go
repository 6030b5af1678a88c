package state

import (
	"encoding/json"
	"io"

	"github.com/sirupsen/logrus"
)

// logger receives debug lines for swallowed persistence errors.
// Defaults to discard; SetLogger replaces it.
var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// SetLogger routes the package's debug logging to l. Pass nil to discard.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.New()
		l.SetOutput(io.Discard)
	}
	logger = l
}

// NewPersisted creates a state whose value is loaded from and saved to store
// under key. The stored value is parsed at creation; a missing or unparsable
// entry falls back to initial. Every change is re-serialized and written.
//
// Persistence never throws: parse and write failures are swallowed and logged
// at debug level, and the state keeps working in memory.
func NewPersisted[T any](store Store, key string, initial T, opts ...Option[T]) *State[T] {
	value := initial
	if raw, ok := store.Read(key); ok {
		var loaded T
		if err := json.Unmarshal(raw, &loaded); err != nil {
			logger.WithField("key", key).WithError(err).Debug("persisted state: parse failed, using initial")
		} else {
			value = loaded
		}
	}

	s := New(value, opts...)
	s.Subscribe(func(newValue, _ T) {
		raw, err := json.Marshal(newValue)
		if err != nil {
			logger.WithField("key", key).WithError(err).Debug("persisted state: marshal failed, skipping save")
			return
		}
		if err := store.Write(key, raw); err != nil {
			logger.WithField("key", key).WithError(err).Debug("persisted state: write failed, skipping save")
		}
	})
	return s
}
