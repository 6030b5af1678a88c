package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabs_NavigationSkipsDisabled(t *testing.T) {
	var changes []int
	m := Tabs(TabsOptions{
		Tabs: []Tab{
			{Title: "one"},
			{Title: "two", Disabled: true},
			{Title: "three"},
		},
		OnChange: func(i int) { changes = append(changes, i) },
	}).(*tabsModel)

	m.Update(keyMsg("right"))
	if m.active != 2 {
		t.Fatalf("right should skip the disabled tab, active=%d", m.active)
	}
	m.Update(keyMsg("right"))
	if m.active != 2 {
		t.Fatalf("right at the last tab should stay, active=%d", m.active)
	}
	m.Update(keyMsg("left"))
	if m.active != 0 {
		t.Fatalf("left should skip back over the disabled tab, active=%d", m.active)
	}

	m.Update(keyMsg("2")) // disabled, no-op
	if m.active != 0 {
		t.Fatalf("number jump to a disabled tab should be ignored, active=%d", m.active)
	}
	m.Update(keyMsg("3"))
	if m.active != 2 {
		t.Fatalf("number jump: active=%d", m.active)
	}

	want := []int{2, 0, 2}
	if len(changes) != len(want) {
		t.Fatalf("OnChange calls: got %v, want %v", changes, want)
	}
}

func TestToggle_CheckboxAndSwitch(t *testing.T) {
	var state bool
	m := Checkbox(ToggleOptions{Label: "opt in", OnChange: func(b bool) { state = b }}).(*toggleModel)

	m.Update(keyMsg(" "))
	if !m.Checked() || !state {
		t.Fatal("space should check the box and fire OnChange")
	}
	m.Update(keyMsg("enter"))
	if m.Checked() || state {
		t.Fatal("enter should uncheck and fire OnChange again")
	}

	d := Switch(ToggleOptions{Label: "locked", Disabled: true}).(*toggleModel)
	d.Update(keyMsg(" "))
	if d.Checked() {
		t.Fatal("disabled toggle must ignore input")
	}
}

func TestRadioGroup_SelectionAndDisabled(t *testing.T) {
	var picked string
	m := RadioGroup(RadioGroupOptions{
		Options: []RadioOption{
			{Label: "Small", Value: "s"},
			{Label: "Medium", Value: "m", Disabled: true},
			{Label: "Large", Value: "l"},
		},
		OnChange: func(v string) { picked = v },
	}).(*radioGroupModel)

	m.Update(keyMsg("down")) // skips Medium, lands on Large
	m.Update(keyMsg(" "))
	if picked != "l" || m.Value() != "l" {
		t.Fatalf("expected l selected, picked=%q value=%q", picked, m.Value())
	}

	// Re-selecting the same option does not refire.
	picked = ""
	m.Update(keyMsg(" "))
	if picked != "" {
		t.Fatal("selecting the already-selected option should not fire OnChange")
	}
}

func TestAccordion_ExclusiveToggle(t *testing.T) {
	m := Accordion(AccordionOptions{
		Sections: []AccordionSection{
			{Title: "a", Content: "alpha"},
			{Title: "b", Content: "beta"},
		},
		Exclusive: true,
	}).(*accordionModel)

	m.Update(keyMsg("enter")) // open a
	if !m.sections[0].Open {
		t.Fatal("enter should open the first section")
	}
	m.Update(keyMsg("down"))
	m.Update(keyMsg("enter")) // open b, closing a
	if m.sections[0].Open || !m.sections[1].Open {
		t.Fatalf("exclusive mode: expected only b open, got a=%v b=%v",
			m.sections[0].Open, m.sections[1].Open)
	}
	m.Update(keyMsg("enter")) // toggle b closed
	if m.sections[1].Open {
		t.Fatal("second enter should close the section")
	}
}

func TestRichText_FormattingCommands(t *testing.T) {
	m := RichTextEditor(RichTextOptions{Value: "hello world"}).(*richTextModel)

	m.Update(keyMsg("ctrl+t"))
	m.Update(keyMsg("b"))
	if got := m.Value(); got != "**hello world**" {
		t.Fatalf("bold wrap: got %q", got)
	}
	m.Update(keyMsg("ctrl+t"))
	m.Update(keyMsg("b"))
	if got := m.Value(); got != "hello world" {
		t.Fatalf("bold unwrap: got %q", got)
	}

	m.Update(keyMsg("ctrl+t"))
	m.Update(keyMsg("h"))
	if got := m.Value(); got != "# hello world" {
		t.Fatalf("heading: got %q", got)
	}
	m.Update(keyMsg("ctrl+t"))
	m.Update(keyMsg("h"))
	if got := m.Value(); got != "## hello world" {
		t.Fatalf("heading cycle: got %q", got)
	}

	if n := wordCount("# hello **world** - ` "); n != 2 {
		t.Fatalf("wordCount: got %d, want 2", n)
	}
}

func TestColorPicker_GridAndHexCommit(t *testing.T) {
	var committed []string
	m := ColorPicker(ColorPickerOptions{
		Label:    "Accent",
		Palette:  []string{"#ff0000", "#00ff00", "#0000ff"},
		Columns:  3,
		OnChange: func(hex string) { committed = append(committed, hex) },
	}).(*colorPickerModel)

	m.Update(keyMsg("enter")) // open
	m.Update(keyMsg("right"))
	m.Update(keyMsg("enter")) // commit #00ff00
	if len(committed) != 1 || committed[0] != "#00ff00" {
		t.Fatalf("grid commit: got %v", committed)
	}
	if m.open {
		t.Fatal("commit should close the picker")
	}

	// Hex entry path.
	m.Update(keyMsg("enter")) // reopen
	m.Update(keyMsg("#"))     // hex mode
	m.hex.SetValue("#abcdef")
	m.Update(keyMsg("enter"))
	if len(committed) != 2 || committed[1] != "#abcdef" {
		t.Fatalf("hex commit: got %v", committed)
	}

	// Invalid hex stays open and flags the error.
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("#"))
	m.hex.SetValue("#zzz")
	m.Update(keyMsg("enter"))
	if !m.hexErr || !m.open {
		t.Fatalf("invalid hex: expected error state, hexErr=%v open=%v", m.hexErr, m.open)
	}
}

func TestColorPicker_OutsideClickCloses(t *testing.T) {
	var committed []string
	m := ColorPicker(ColorPickerOptions{
		Label:    "Accent",
		OnChange: func(hex string) { committed = append(committed, hex) },
	}).(*colorPickerModel)

	m.Update(keyMsg("enter"))
	if !m.open {
		t.Fatal("expected palette to open")
	}
	m.View() // establish bounds

	m.Update(pressAt(500, 500)) // opening press, swallowed
	if !m.open {
		t.Fatal("first press after opening must not close")
	}
	m.Update(pressAt(500, 500))
	if m.open {
		t.Fatal("expected outside press to close the palette")
	}
	if len(committed) != 0 {
		t.Fatalf("outside close must not commit: got %v", committed)
	}

	// Hex mode closes too, dropping the pending entry.
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("#"))
	m.View()
	m.Update(pressAt(500, 500))
	m.Update(pressAt(500, 500))
	if m.open || m.hexMode {
		t.Fatalf("outside press in hex mode: open=%v hexMode=%v", m.open, m.hexMode)
	}
}

func TestButton_PressAndDisabled(t *testing.T) {
	pressed := 0
	press := func() tea.Cmd { pressed++; return nil }

	m := Button(ButtonOptions{Label: "Go", OnPress: press}).(*buttonModel)
	m.Update(keyMsg("enter"))
	if pressed != 1 {
		t.Fatalf("enter should press, pressed=%d", pressed)
	}
	m.Update(keyMsg(" "))
	if pressed != 2 {
		t.Fatalf("space should press, pressed=%d", pressed)
	}

	d := Button(ButtonOptions{Label: "No", Disabled: true, OnPress: press}).(*buttonModel)
	d.Update(keyMsg("enter"))
	if pressed != 2 {
		t.Fatal("disabled button must ignore activation")
	}
}

func TestBreadcrumbsAndBadgeRender(t *testing.T) {
	b := Breadcrumbs([]string{"home", "settings", "profile"}, nil)
	if !strings.Contains(b.View(), "profile") {
		t.Fatal("breadcrumbs should render the last segment")
	}
	if Badge("new", BadgeSuccess, nil).View() == "" {
		t.Fatal("badge should render")
	}
	if Breadcrumbs(nil, nil).View() != "" {
		t.Fatal("empty breadcrumbs render nothing")
	}
}
