package banda

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestElement_TextRender(t *testing.T) {
	e := Text("hello")
	if got := e.Render(); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
}

func TestElement_SetTextInvalidates(t *testing.T) {
	label := Text("before")
	root := Column()
	root.Append(label)
	first := root.Render()
	if !strings.Contains(first, "before") {
		t.Fatalf("expected before in %q", first)
	}

	label.SetText("after")
	second := root.Render()
	if !strings.Contains(second, "after") {
		t.Errorf("expected after in %q", second)
	}
}

func TestElement_CacheReusedWhenClean(t *testing.T) {
	e := Text("x")
	first := e.Render()
	e.cache = "tampered" // prove the cache is served while clean
	if got := e.Render(); got != "tampered" {
		t.Errorf("expected cached render, got %q", got)
	}
	e.SetText("y")
	if got := e.Render(); got != "y" {
		t.Errorf("expected re-render after mutation, got %q", got)
	}
	_ = first
}

func TestElement_HiddenExcluded(t *testing.T) {
	secret := Text("secret")
	root := Column()
	root.Append(Text("visible"), secret)
	secret.SetHidden(true)
	out := root.Render()
	if strings.Contains(out, "secret") {
		t.Errorf("hidden child must not render, got %q", out)
	}
	secret.SetHidden(false)
	if !strings.Contains(root.Render(), "secret") {
		t.Error("unhidden child must render again")
	}
}

func TestElement_RowJoinsHorizontally(t *testing.T) {
	row := Row()
	row.Append(Text("ab"), Text("cd"))
	if got := row.Render(); got != "abcd" {
		t.Errorf("expected abcd, got %q", got)
	}
}

func TestElement_RemoveAndClear(t *testing.T) {
	a, b := Text("a"), Text("b")
	root := Column()
	root.Append(a, b)
	if !root.Remove(a) {
		t.Fatal("expected Remove to find child")
	}
	if root.Remove(a) {
		t.Error("second Remove must report absent")
	}
	root.Clear()
	if len(root.Children()) != 0 {
		t.Error("expected no children after Clear")
	}
}

func TestElement_Find(t *testing.T) {
	inner := Text("x", WithID("needle"))
	root := Column(WithID("root"))
	root.Append(Box().Append(inner))
	if root.Find("needle") != inner {
		t.Error("expected Find to locate nested id")
	}
	if root.Find("missing") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestElement_ClickHitTest(t *testing.T) {
	var clicked string
	row := Row()
	row.Append(
		Text("left", WithOnClick(func() { clicked = "left" })),
		Text("right", WithOnClick(func() { clicked = "right" })),
	)
	row.LayoutAt(0, 0)

	if !row.Click(1, 0) {
		t.Fatal("expected click inside left to land")
	}
	if clicked != "left" {
		t.Errorf("expected left, got %q", clicked)
	}
	// "left" is 4 cells wide, so x=5 lands in "right".
	row.Click(5, 0)
	if clicked != "right" {
		t.Errorf("expected right, got %q", clicked)
	}
	if row.Click(99, 99) {
		t.Error("click outside bounds must not land")
	}
}

func TestElement_BoxOffsetsChildBounds(t *testing.T) {
	child := Text("x", WithID("c"))
	box := Box(WithStyle(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)))
	box.Append(child)
	box.LayoutAt(0, 0)

	b := child.Bounds()
	if b.X != 2 || b.Y != 1 {
		t.Errorf("expected child offset by border+padding, got %+v", b)
	}
}

func TestElement_PlainText(t *testing.T) {
	root := Column()
	root.Append(Text("a"), Row().Append(Text("b"), Text("c")))
	if got := root.PlainText(); got != "a\nb c" {
		t.Errorf("unexpected plain text %q", got)
	}
}

func TestStack_PushPopPeek(t *testing.T) {
	s := &Stack{}
	if s.Pop() != nil || s.Peek() != nil {
		t.Error("empty stack must return nil")
	}
	a := nullComponent{}
	s.Push(a)
	if s.Len() != 1 || s.Peek() == nil {
		t.Error("expected one item after push")
	}
	if s.Pop() == nil || s.Len() != 0 {
		t.Error("expected pop to drain the stack")
	}
}
