package lifecycle

import "testing"

func TestRegistry_DisposeRunsLIFO(t *testing.T) {
	r := New(nil)
	var order []int
	r.OnCleanup("w", func() { order = append(order, 1) })
	r.OnCleanup("w", func() { order = append(order, 2) })
	r.OnCleanup("w", func() { order = append(order, 3) })

	r.Dispose("w")
	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("expected LIFO order, got %v", order)
	}
}

func TestRegistry_DisposeIdempotent(t *testing.T) {
	r := New(nil)
	calls := 0
	r.OnCleanup("w", func() { calls++ })

	r.Dispose("w")
	r.Dispose("w")
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRegistry_DisposeIsolatedPerOwner(t *testing.T) {
	r := New(nil)
	var aDone, bDone bool
	r.OnCleanup("a", func() { aDone = true })
	r.OnCleanup("b", func() { bDone = true })

	r.Dispose("a")
	if !aDone || bDone {
		t.Errorf("expected only a disposed, got a=%v b=%v", aDone, bDone)
	}
	if r.Pending("b") != 1 {
		t.Errorf("expected b cleanup still pending")
	}
}

func TestRegistry_PanickingCleanupDoesNotStopOthers(t *testing.T) {
	r := New(nil)
	var survived bool
	r.OnCleanup("w", func() { survived = true })
	r.OnCleanup("w", func() { panic("boom") })

	r.Dispose("w")
	if !survived {
		t.Error("expected remaining cleanup to run after panic")
	}
}

func TestRegistry_DisposeAll(t *testing.T) {
	r := New(nil)
	calls := 0
	r.OnCleanup("a", func() { calls++ })
	r.OnCleanup("b", func() { calls++ })

	r.DisposeAll()
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}
