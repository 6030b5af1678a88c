package state

import "sync"

// Batching defers subscriber notification until a logical unit of multiple
// mutations completes. The counter is package-level so states created anywhere
// share one batch scope; it is coarse — queued notifications are deferred, not
// deduplicated per state.
var (
	batchMu    sync.Mutex
	batchDepth int
	batchQueue []func()
)

// Batch runs fn with notification deferred. Nested calls are allowed; the
// queue flushes exactly once when the outermost Batch returns. Notifications
// queued during the flush itself run synchronously (the batch is over).
func Batch(fn func()) {
	batchMu.Lock()
	batchDepth++
	batchMu.Unlock()

	defer func() {
		batchMu.Lock()
		batchDepth--
		var queue []func()
		if batchDepth == 0 {
			queue = batchQueue
			batchQueue = nil
		}
		batchMu.Unlock()
		for _, queued := range queue {
			queued()
		}
	}()

	fn()
}

// enqueue runs fn now, or defers it when a batch is open.
func enqueue(fn func()) {
	batchMu.Lock()
	if batchDepth > 0 {
		batchQueue = append(batchQueue, fn)
		batchMu.Unlock()
		return
	}
	batchMu.Unlock()
	fn()
}
