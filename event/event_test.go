package event

import (
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeymap_BindLookup(t *testing.T) {
	km := NewKeymap()
	km.Bind("q", tea.Quit)
	km.Bind("SPC q", tea.Quit)

	if km.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if km.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if km.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeymap_ScopedHints(t *testing.T) {
	km := NewKeymap()
	km.BindScoped("SPC f", tea.Quit, "Form", []Scope{"form"})
	km.BindWithDesc("SPC q", tea.Quit, "Quit")

	hints := km.LeaderHints("", "gallery")
	if _, ok := hints["f"]; ok {
		t.Error("form-scoped binding should not appear in gallery scope")
	}
	if hints["q"] != "Quit" {
		t.Errorf("expected Quit hint, got %q", hints["q"])
	}

	hints = km.LeaderHints("", "form")
	if hints["f"] != "Form" {
		t.Errorf("expected Form hint in form scope, got %q", hints["f"])
	}
}

func TestKeymap_SubmenuLabel(t *testing.T) {
	km := NewKeymap()
	km.Bind("SPC t d", tea.Quit)
	km.Bind("SPC t l", tea.Quit)
	km.LabelSubmenu("t", "Theme")

	hints := km.LeaderHints("", ScopeAll)
	if hints["t"] != "Theme" {
		t.Errorf("expected submenu label Theme, got %q", hints["t"])
	}
}

func TestHandler_LeaderSequence(t *testing.T) {
	km := NewKeymap()
	var executed bool
	km.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewHandler(km)

	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Error("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd != nil {
		cmd()
	}
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestHandler_EscCancelsLeader(t *testing.T) {
	h := NewHandler(NewKeymap())
	h.Handle(keyMsg(" "))
	consumed, _ := h.Handle(tea.KeyMsg{Type: tea.KeyEsc})
	if !consumed || h.LeaderWaiting {
		t.Errorf("esc should cancel leader mode: consumed=%v waiting=%v", consumed, h.LeaderWaiting)
	}
}

func TestHandler_UnboundKeyPassesThrough(t *testing.T) {
	h := NewHandler(NewKeymap())
	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound key must not be consumed")
	}
}

func TestDebounce_LastCallWins(t *testing.T) {
	var calls int32
	call, stop := Debounce(20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })
	defer stop()

	call()
	call()
	call()
	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected 1 call, got %d", got)
	}
}

func TestDebounce_StopCancelsPending(t *testing.T) {
	var calls int32
	call, stop := Debounce(20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })
	call()
	stop()
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("expected 0 calls after stop, got %d", got)
	}
}

func TestThrottle_LeadingAndTrailing(t *testing.T) {
	var calls int32
	call, stop := Throttle(30*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })
	defer stop()

	call() // leading edge runs immediately
	call() // coalesced into trailing
	call()
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected leading call only, got %d", got)
	}
	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("expected leading + trailing, got %d", got)
	}
}

func TestOutsideClick_SkipsOpeningPress(t *testing.T) {
	o := NewOutsideClick(func() Bounds { return Bounds{X: 10, Y: 10, W: 5, H: 5} })
	o.Arm()

	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	if o.Observe(press(0, 0)) {
		t.Error("first press after arming must be ignored")
	}
	if o.Observe(press(12, 12)) {
		t.Error("press inside bounds must not close")
	}
	if !o.Observe(press(0, 0)) {
		t.Error("outside press should close")
	}
	o.Disarm()
	if o.Observe(press(0, 0)) {
		t.Error("disarmed detector must not report")
	}
}
