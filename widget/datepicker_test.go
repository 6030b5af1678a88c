package widget

import (
	"testing"
	"time"
)

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func testDatePicker(opts DatePickerOptions) *datePickerModel {
	if opts.Value.IsZero() {
		opts.Value = date(2026, time.March, 15)
	}
	return DatePicker(opts).(*datePickerModel)
}

func TestDatePicker_DisabledPolicy(t *testing.T) {
	m := testDatePicker(DatePickerOptions{
		Min:      date(2026, time.March, 10),
		Max:      date(2026, time.March, 20),
		Disabled: []time.Time{date(2026, time.March, 15)},
	})

	cases := []struct {
		day      time.Time
		disabled bool
	}{
		{date(2026, time.March, 9), true},   // before Min
		{date(2026, time.March, 10), false}, // Min is inclusive
		{date(2026, time.March, 20), false}, // Max is inclusive
		{date(2026, time.March, 21), true},  // after Max
		{date(2026, time.March, 15), true},  // in the disabled list
		{date(2026, time.March, 14), false},
	}
	for _, tc := range cases {
		if got := m.dateDisabled(tc.day); got != tc.disabled {
			t.Errorf("dateDisabled(%s): got %v, want %v", tc.day.Format("2006-01-02"), got, tc.disabled)
		}
	}
}

func TestDatePicker_SelectDisabledDateIgnored(t *testing.T) {
	var fired []time.Time
	m := testDatePicker(DatePickerOptions{
		Disabled: []time.Time{date(2026, time.March, 16)},
		OnChange: func(d time.Time) { fired = append(fired, d) },
	})
	m.Update(keyMsg("enter")) // open
	m.Update(keyMsg("right")) // cursor → Mar 16 (disabled)
	m.Update(keyMsg("enter"))

	if len(fired) != 0 {
		t.Fatalf("selecting a disabled date must not fire OnChange, got %v", fired)
	}
	if !m.open {
		t.Fatal("picker should stay open after a rejected selection")
	}
	if !sameDay(m.selected, date(2026, time.March, 15)) {
		t.Fatalf("selection should be unchanged, got %s", m.selected)
	}
}

func TestDatePicker_SelectFiresOnChangeAndCloses(t *testing.T) {
	var fired []time.Time
	m := testDatePicker(DatePickerOptions{
		OnChange: func(d time.Time) { fired = append(fired, d) },
	})
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("right"))
	m.Update(keyMsg("enter"))

	if len(fired) != 1 || !sameDay(fired[0], date(2026, time.March, 16)) {
		t.Fatalf("expected one OnChange with Mar 16, got %v", fired)
	}
	if m.open {
		t.Fatal("selection should close the picker")
	}
}

func TestDatePicker_CursorPagesAcrossMonthBoundary(t *testing.T) {
	m := testDatePicker(DatePickerOptions{Value: date(2026, time.March, 31)})
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("right")) // Mar 31 → Apr 1

	if !sameDay(m.cursor, date(2026, time.April, 1)) {
		t.Fatalf("cursor: expected Apr 1, got %s", m.cursor)
	}
	if !m.viewDate.Equal(monthStart(date(2026, time.April, 1))) {
		t.Fatalf("view should follow the cursor into April, got %s", m.viewDate)
	}
}

func TestDatePicker_MonthPagingLeavesSelectionAlone(t *testing.T) {
	m := testDatePicker(DatePickerOptions{})
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("]")) // next month
	m.Update(keyMsg("]"))

	if !m.viewDate.Equal(monthStart(date(2026, time.May, 1))) {
		t.Fatalf("view: expected May, got %s", m.viewDate)
	}
	if !sameDay(m.selected, date(2026, time.March, 15)) {
		t.Fatalf("paging must not move the selection, got %s", m.selected)
	}
}

func TestDatePicker_GridIncludesAdjacentMonthDays(t *testing.T) {
	m := testDatePicker(DatePickerOptions{Value: date(2026, time.March, 1)})
	grid := m.monthGrid()

	if len(grid) != 6 || len(grid[0]) != 7 {
		t.Fatalf("grid: expected 6x7, got %dx%d", len(grid), len(grid[0]))
	}
	// March 1 2026 is a Sunday, so the grid starts on it directly.
	if !sameDay(grid[0][0], date(2026, time.March, 1)) {
		t.Fatalf("grid[0][0]: expected Mar 1, got %s", grid[0][0])
	}
	// The tail of a 6-week grid over a 31-day month is April.
	if grid[5][6].Month() != time.April {
		t.Fatalf("trailing cell should be an April day, got %s", grid[5][6])
	}
}

func TestDatePicker_SelectingAdjacentMonthDayJumpsView(t *testing.T) {
	var fired []time.Time
	m := testDatePicker(DatePickerOptions{
		Value:    date(2026, time.March, 1),
		OnChange: func(d time.Time) { fired = append(fired, d) },
	})
	m.open = true
	m.selectDate(date(2026, time.April, 2))

	if len(fired) != 1 {
		t.Fatalf("expected one OnChange, got %v", fired)
	}
	if !m.viewDate.Equal(monthStart(date(2026, time.April, 1))) {
		t.Fatalf("view should jump to the selected day's month, got %s", m.viewDate)
	}
}

func TestDatePicker_OutsideClickCloses(t *testing.T) {
	var fired []time.Time
	m := testDatePicker(DatePickerOptions{
		OnChange: func(d time.Time) { fired = append(fired, d) },
	})

	m.Update(keyMsg("enter"))
	if !m.open {
		t.Fatal("expected picker to open")
	}
	m.View() // establish bounds

	// The press that opened the picker is swallowed.
	m.Update(pressAt(500, 500))
	if !m.open {
		t.Fatal("first press after opening must not close")
	}
	m.Update(pressAt(500, 500))
	if m.open {
		t.Fatal("expected outside press to close the picker")
	}
	if len(fired) != 0 {
		t.Fatalf("outside close must not select: got %v", fired)
	}
}

func TestDatePicker_InsideClickLeavesOpen(t *testing.T) {
	m := testDatePicker(DatePickerOptions{})
	m.Update(keyMsg("enter"))
	m.View()

	m.Update(pressAt(500, 500)) // arming skip
	m.Update(pressAt(1, 1))     // inside the calendar box
	if !m.open {
		t.Fatal("inside press must not close the picker")
	}
}
