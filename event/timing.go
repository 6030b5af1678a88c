package event

import (
	"sync"
	"time"
)

// Debounce wraps fn so that only the last call in a burst runs, d after the
// burst stops. A later call supersedes a pending one. stop cancels any
// pending invocation; both call and stop are safe to invoke repeatedly and
// from timer goroutines.
func Debounce(d time.Duration, fn func()) (call, stop func()) {
	var mu sync.Mutex
	var timer *time.Timer

	call = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, fn)
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}
	return call, stop
}

// Throttle wraps fn so it runs at most once per d: the first call in a window
// runs immediately (leading edge), further calls within the window coalesce
// into one trailing invocation when the window ends. stop cancels a pending
// trailing call.
func Throttle(d time.Duration, fn func()) (call, stop func()) {
	var mu sync.Mutex
	var inWindow bool
	var trailing bool
	var timer *time.Timer

	var closeWindow func()
	closeWindow = func() {
		mu.Lock()
		if trailing {
			trailing = false
			timer = time.AfterFunc(d, closeWindow)
			mu.Unlock()
			fn()
			return
		}
		inWindow = false
		timer = nil
		mu.Unlock()
	}

	call = func() {
		mu.Lock()
		if inWindow {
			trailing = true
			mu.Unlock()
			return
		}
		inWindow = true
		timer = time.AfterFunc(d, closeWindow)
		mu.Unlock()
		fn()
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
		inWindow = false
		trailing = false
	}
	return call, stop
}
