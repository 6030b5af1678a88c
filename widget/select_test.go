package widget

import "testing"

func testSelectOptions(onChange func(string)) SelectOptions {
	return SelectOptions{
		Label: "Fruit",
		Options: []SelectOption{
			{Label: "Apple", Value: "apple"},
			{Label: "Banana", Value: "banana", Disabled: true},
		},
		Groups: []SelectGroup{
			{Label: "Citrus", Options: []SelectOption{
				{Label: "Orange", Value: "orange"},
				{Label: "Lemon", Value: "lemon"},
			}},
			{Label: "Berries", Options: []SelectOption{
				{Label: "Strawberry", Value: "strawberry"},
			}},
		},
		Searchable: true,
		OnChange:   onChange,
	}
}

func TestSelect_FlattenKeepsGroupHeaders(t *testing.T) {
	m := Select(testSelectOptions(nil)).(*selectModel)

	// 2 flat options + 2 headers + 3 grouped options
	if len(m.entries) != 7 {
		t.Fatalf("entries: expected 7, got %d", len(m.entries))
	}
	if !m.entries[2].header || m.entries[2].group != "Citrus" {
		t.Fatalf("expected Citrus header at index 2, got %+v", m.entries[2])
	}
}

func TestSelect_FilterPreservesMatchingGroups(t *testing.T) {
	m := Select(testSelectOptions(nil)).(*selectModel)

	got := filterEntries(m.entries, "le")
	// Apple, Citrus header, Lemon
	if len(got) != 3 {
		t.Fatalf("filter 'le': expected 3 entries, got %d: %+v", len(got), got)
	}
	if got[0].opt.Label != "Apple" {
		t.Fatalf("expected Apple first, got %+v", got[0])
	}
	if !got[1].header || got[1].group != "Citrus" {
		t.Fatalf("expected Citrus header kept, got %+v", got[1])
	}
	if got[2].opt.Label != "Lemon" {
		t.Fatalf("expected Lemon, got %+v", got[2])
	}
}

func TestSelect_FilterPrunesEmptyGroups(t *testing.T) {
	m := Select(testSelectOptions(nil)).(*selectModel)

	got := filterEntries(m.entries, "straw")
	if len(got) != 2 {
		t.Fatalf("filter 'straw': expected header+option, got %d: %+v", len(got), got)
	}
	if !got[0].header || got[0].group != "Berries" {
		t.Fatalf("expected Berries header, got %+v", got[0])
	}

	got = filterEntries(m.entries, "zzz")
	if len(got) != 0 {
		t.Fatalf("filter with no matches: expected empty, got %+v", got)
	}
}

func TestSelect_CursorSkipsHeadersAndDisabled(t *testing.T) {
	m := Select(testSelectOptions(nil)).(*selectModel)
	m.Update(keyMsg("enter")) // open

	if m.cursor != 0 {
		t.Fatalf("cursor should start on Apple, got %d", m.cursor)
	}
	m.Update(keyMsg("down"))
	// Banana is disabled and index 2 is a header; next selectable is Orange.
	if m.visible[m.cursor].opt.Label != "Orange" {
		t.Fatalf("down should land on Orange, got %+v", m.visible[m.cursor])
	}
	m.Update(keyMsg("up"))
	if m.visible[m.cursor].opt.Label != "Apple" {
		t.Fatalf("up should land back on Apple, got %+v", m.visible[m.cursor])
	}
}

func TestSelect_OnChangeFiresOncePerSelection(t *testing.T) {
	var fired []string
	m := Select(testSelectOptions(func(v string) { fired = append(fired, v) })).(*selectModel)

	m.Update(keyMsg("enter")) // open
	m.Update(keyMsg("down"))  // Orange
	m.Update(keyMsg("enter")) // select

	if len(fired) != 1 || fired[0] != "orange" {
		t.Fatalf("expected exactly one OnChange with orange, got %v", fired)
	}
	if m.open {
		t.Fatal("selection should close the dropdown")
	}
	if m.value != "orange" || m.label != "Orange" {
		t.Fatalf("value/label: got %q/%q", m.value, m.label)
	}

	// Enter on the closed widget reopens; esc closes without firing.
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("esc"))
	if len(fired) != 1 {
		t.Fatalf("esc must not fire OnChange, got %v", fired)
	}
}

func TestSelect_PreselectedValueResolvesLabel(t *testing.T) {
	opts := testSelectOptions(nil)
	opts.Value = "lemon"
	m := Select(opts).(*selectModel)
	if m.label != "Lemon" {
		t.Fatalf("preselect: expected Lemon, got %q", m.label)
	}
}

func TestSelect_OutsideClickCloses(t *testing.T) {
	m := Select(testSelectOptions(nil)).(*selectModel)
	m.Update(keyMsg("enter"))
	if !m.open {
		t.Fatal("expected dropdown to open")
	}
	m.View() // establish bounds

	m.Update(pressAt(500, 500)) // opening press, swallowed
	if !m.open {
		t.Fatal("first press after opening must not close")
	}
	m.Update(pressAt(500, 500))
	if m.open {
		t.Fatal("expected outside press to close the dropdown")
	}
}
