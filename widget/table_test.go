package widget

import (
	"reflect"
	"testing"
)

func testTable(opts TableOptions) *tableModel {
	if opts.Columns == nil {
		opts.Columns = []Column{
			{Key: "name", Title: "Name", Sortable: true},
			{Key: "age", Title: "Age", Sortable: true},
		}
	}
	if opts.Rows == nil {
		opts.Rows = []Row{
			{"name": "carol", "age": 31},
			{"name": "alice", "age": 29},
			{"name": "bob", "age": 45},
		}
	}
	return Table(opts).(*tableModel)
}

func names(rows []tableRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.data["name"].(string)
	}
	return out
}

func TestTable_SortCycleRestoresOriginalOrder(t *testing.T) {
	m := testTable(TableOptions{})

	original := names(m.sortedRows())
	if !reflect.DeepEqual(original, []string{"carol", "alice", "bob"}) {
		t.Fatalf("unsorted order: got %v", original)
	}

	if dir := m.CycleSort("name"); dir != SortAsc {
		t.Fatalf("first cycle: expected SortAsc, got %v", dir)
	}
	if got := names(m.sortedRows()); !reflect.DeepEqual(got, []string{"alice", "bob", "carol"}) {
		t.Fatalf("asc: got %v", got)
	}

	if dir := m.CycleSort("name"); dir != SortDesc {
		t.Fatalf("second cycle: expected SortDesc, got %v", dir)
	}
	if got := names(m.sortedRows()); !reflect.DeepEqual(got, []string{"carol", "bob", "alice"}) {
		t.Fatalf("desc: got %v", got)
	}

	if dir := m.CycleSort("name"); dir != SortNone {
		t.Fatalf("third cycle: expected SortNone, got %v", dir)
	}
	if got := names(m.sortedRows()); !reflect.DeepEqual(got, original) {
		t.Fatalf("none should restore original order: got %v, want %v", got, original)
	}
}

func TestTable_SwitchingColumnsRestartsCycle(t *testing.T) {
	m := testTable(TableOptions{})
	m.CycleSort("name")
	m.CycleSort("name") // desc
	if dir := m.CycleSort("age"); dir != SortAsc {
		t.Fatalf("new column: expected SortAsc, got %v", dir)
	}
	if got := names(m.sortedRows()); !reflect.DeepEqual(got, []string{"alice", "carol", "bob"}) {
		t.Fatalf("numeric asc by age: got %v", got)
	}
}

func TestTable_NumbersSortNumerically(t *testing.T) {
	m := testTable(TableOptions{
		Columns: []Column{{Key: "n", Title: "N", Sortable: true}},
		Rows: []Row{
			{"n": 100},
			{"n": 9},
			{"n": 25},
		},
	})
	m.CycleSort("n")
	rows := m.sortedRows()
	got := []any{rows[0].data["n"], rows[1].data["n"], rows[2].data["n"]}
	if !reflect.DeepEqual(got, []any{9, 25, 100}) {
		t.Fatalf("numeric sort: got %v (lexical would give 100,25,9)", got)
	}
}

func TestTable_MixedTypesSortLexically(t *testing.T) {
	if compareCells("100", 25) >= 0 {
		t.Fatal("mixed types compare by display string: \"100\" < \"25\"")
	}
	if compareCells(9, 25) >= 0 {
		t.Fatal("two numbers compare numerically")
	}
}

func TestTable_SelectionPersistsAcrossPages(t *testing.T) {
	rows := make([]Row, 0, 6)
	for _, n := range []string{"a", "b", "c", "d", "e", "f"} {
		rows = append(rows, Row{"name": n, "age": 1})
	}
	var lastKeys []string
	m := testTable(TableOptions{
		Rows:       rows,
		KeyField:   "name",
		PageSize:   2,
		Selectable: true,
		OnSelect:   func(keys []string) { lastKeys = keys },
	})

	m.Update(keyMsg(" ")) // select "a" on page 1
	if !reflect.DeepEqual(lastKeys, []string{"a"}) {
		t.Fatalf("OnSelect: got %v", lastKeys)
	}

	m.Update(keyMsg("right")) // page 2
	m.Update(keyMsg("down"))  // cursor to "d"
	m.Update(keyMsg(" "))
	if !reflect.DeepEqual(lastKeys, []string{"a", "d"}) {
		t.Fatalf("selection should accumulate across pages: got %v", lastKeys)
	}

	m.Update(keyMsg("left")) // back to page 1
	if !reflect.DeepEqual(m.SelectedKeys(), []string{"a", "d"}) {
		t.Fatalf("selection should survive paging: got %v", m.SelectedKeys())
	}

	// Toggling again removes.
	m.cursor = 0
	m.Update(keyMsg(" "))
	if !reflect.DeepEqual(m.SelectedKeys(), []string{"d"}) {
		t.Fatalf("toggle off: got %v", m.SelectedKeys())
	}
}

func TestTable_DuplicateRowsSelectIndependently(t *testing.T) {
	var lastKeys []string
	m := testTable(TableOptions{
		Columns: []Column{{Key: "name", Title: "Name"}},
		Rows: []Row{
			{"name": "dup"},
			{"name": "dup"},
		},
		Selectable: true,
		OnSelect:   func(keys []string) { lastKeys = keys },
	})

	m.Update(keyMsg(" ")) // select first "dup"
	m.Update(keyMsg("down"))
	m.Update(keyMsg(" ")) // select second "dup"
	if !reflect.DeepEqual(lastKeys, []string{"0", "1"}) {
		t.Fatalf("identical rows must key by original index: got %v", lastKeys)
	}

	m.Update(keyMsg(" ")) // toggle second off, first stays
	if !reflect.DeepEqual(m.SelectedKeys(), []string{"0"}) {
		t.Fatalf("toggle must hit one row only: got %v", m.SelectedKeys())
	}
}

func TestTable_SelectionKeySurvivesSorting(t *testing.T) {
	m := testTable(TableOptions{
		KeyField:   "name",
		Selectable: true,
	})

	m.Update(keyMsg(" ")) // select "carol" at the top of the unsorted view
	m.CycleSort("name")   // carol moves to the bottom
	rows := m.pageRows()
	if got := m.rowKey(rows[len(rows)-1]); got != "carol" {
		t.Fatalf("key after sort: got %q", got)
	}
	if !m.selection["carol"] {
		t.Fatal("selection must follow the row through sorting")
	}
}

func TestTable_SortKeyOnUnsortableColumnIgnored(t *testing.T) {
	m := testTable(TableOptions{
		Columns: []Column{{Key: "name", Title: "Name", Sortable: false}},
	})
	m.Update(keyMsg("s"))
	if m.sortDir != SortNone {
		t.Fatalf("unsortable column: expected SortNone, got %v", m.sortDir)
	}
}

func TestCellString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{float64(3), "3"},
		{3.5, "3.5"},
		{true, "true"},
		{42, "42"},
	}
	for _, tc := range cases {
		if got := cellString(tc.in); got != tc.want {
			t.Errorf("cellString(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
