package search

import "log"

// Observer receives events the engine would otherwise have to log itself,
// keeping the core decoupled from any particular logging mechanism. All
// callbacks are invoked synchronously on the calling goroutine.
type Observer interface {
	// StorageError reports a preference-store failure that was swallowed.
	// op names the operation ("load recent", "save favorites", ...).
	StorageError(op string, err error)
}

// LogObserver writes events to the standard logger.
type LogObserver struct{}

func (LogObserver) StorageError(op string, err error) {
	log.Printf("Warning: preference store %s failed: %v", op, err)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) StorageError(string, error) {}
