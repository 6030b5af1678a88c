package widget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
)

// SortDirection is the per-column sort cycle state.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// Row is one data record. Column keys index into it.
type Row map[string]any

// Column describes one table column. Key must match a row property name.
type Column struct {
	Key      string
	Title    string
	Width    int
	Sortable bool
}

// TableOptions configures a Table.
type TableOptions struct {
	Columns []Column
	Rows    []Row
	// KeyField names the row property used as the selection key. Empty
	// falls back to the row's original index.
	KeyField string
	// PageSize is rows per page. Zero means 10.
	PageSize int
	// Selectable enables per-row selection with space.
	Selectable bool
	// OnSelect fires with the full selection key set after each toggle.
	OnSelect func(keys []string)
	Theme    *theme.Theme
}

type tableModel struct {
	opts  TableOptions
	theme *theme.Theme

	// original preserves insertion order so clearing the sort restores it.
	original []Row
	sortKey  string
	sortDir  SortDirection

	// selection is keyed by row key and spans the whole dataset, not the
	// current page.
	selection map[string]bool

	pager  paginator.Model
	cursor int // row index within the current page
	colIdx int // active column for the sort cycle
}

var _ banda.Component = (*tableModel)(nil)

// Table creates a sortable, paginated, optionally selectable data table.
// The pipeline is sort, then paginate, then render: sorting always applies
// to the full dataset before the page window is sliced.
func Table(opts TableOptions) banda.Component {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = pageSize
	p.SetTotalPages(len(opts.Rows))

	original := make([]Row, len(opts.Rows))
	copy(original, opts.Rows)

	return &tableModel{
		opts:      opts,
		theme:     themeOrDefault(opts.Theme),
		original:  original,
		selection: make(map[string]bool),
		pager:     p,
	}
}

// tableRow pairs a row with its position in the original dataset so the
// selection key survives sorting and pagination without a lookup scan.
type tableRow struct {
	data Row
	idx  int
}

// rowKey returns the selection key for a row.
func (m *tableModel) rowKey(r tableRow) string {
	if m.opts.KeyField != "" {
		return cellString(r.data[m.opts.KeyField])
	}
	return fmt.Sprintf("%d", r.idx)
}

// sortedRows applies the current sort to the full dataset. SortNone returns
// the original order.
func (m *tableModel) sortedRows() []tableRow {
	out := make([]tableRow, len(m.original))
	for i, r := range m.original {
		out[i] = tableRow{data: r, idx: i}
	}
	if m.sortDir == SortNone || m.sortKey == "" {
		return out
	}
	key := m.sortKey
	asc := m.sortDir == SortAsc
	sort.SliceStable(out, func(i, j int) bool {
		less := compareCells(out[i].data[key], out[j].data[key]) < 0
		if asc {
			return less
		}
		return compareCells(out[j].data[key], out[i].data[key]) < 0
	})
	return out
}

// compareCells orders two cell values: numbers numerically when both sides
// are numbers, everything else lexically by display string. Mixed-type
// columns (numbers stored as strings) therefore sort lexically; that is
// long-standing behavior, not something to normalize away.
func compareCells(a, b any) int {
	af, aNum := cellFloat(a)
	bf, bNum := cellFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(cellString(a), cellString(b))
}

func cellFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

// pageRows slices the current page window out of the sorted dataset.
func (m *tableModel) pageRows() []tableRow {
	rows := m.sortedRows()
	start, end := m.pager.GetSliceBounds(len(rows))
	return rows[start:end]
}

// CycleSort advances the named column through asc, desc, none. Returns the
// new direction. Switching columns restarts the cycle at asc.
func (m *tableModel) CycleSort(key string) SortDirection {
	if m.sortKey != key {
		m.sortKey = key
		m.sortDir = SortAsc
		return m.sortDir
	}
	switch m.sortDir {
	case SortAsc:
		m.sortDir = SortDesc
	case SortDesc:
		m.sortDir = SortNone
		m.sortKey = ""
	default:
		m.sortDir = SortAsc
	}
	return m.sortDir
}

func (m *tableModel) Init() tea.Cmd { return nil }

func (m *tableModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.pageRows())-1 {
			m.cursor++
		}
	case "left", "h":
		m.pager.PrevPage()
		m.clampCursor()
	case "right", "l":
		m.pager.NextPage()
		m.clampCursor()
	case "tab":
		if len(m.opts.Columns) > 0 {
			m.colIdx = (m.colIdx + 1) % len(m.opts.Columns)
		}
	case "s":
		if m.colIdx < len(m.opts.Columns) {
			col := m.opts.Columns[m.colIdx]
			if col.Sortable {
				m.CycleSort(col.Key)
				m.cursor = 0
			}
		}
	case " ":
		if m.opts.Selectable {
			m.toggleSelection()
		}
	}
	return m, nil
}

func (m *tableModel) clampCursor() {
	if n := len(m.pageRows()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

// toggleSelection flips the cursor row's key in the selection set. Selection
// persists across pages and sorting because it is keyed, not positional.
func (m *tableModel) toggleSelection() {
	rows := m.pageRows()
	if m.cursor >= len(rows) {
		return
	}
	key := m.rowKey(rows[m.cursor])
	if m.selection[key] {
		delete(m.selection, key)
	} else {
		m.selection[key] = true
	}
	if m.opts.OnSelect != nil {
		m.opts.OnSelect(m.SelectedKeys())
	}
}

// SelectedKeys returns the selection key set in stable (sorted) order.
func (m *tableModel) SelectedKeys() []string {
	keys := make([]string, 0, len(m.selection))
	for k := range m.selection {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *tableModel) View() string {
	tbl := lgtable.New().
		Border(theme.Border(m.theme.Tokens.Radius.Medium)).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Tokens.Color.Border))).
		Headers(m.headers()...)

	rows := m.pageRows()
	for i, row := range rows {
		cells := make([]string, 0, len(m.opts.Columns)+1)
		if m.opts.Selectable {
			mark := " "
			if m.selection[m.rowKey(row)] {
				mark = "✓"
			}
			cells = append(cells, mark)
		}
		for _, col := range m.opts.Columns {
			cells = append(cells, cellString(row.data[col.Key]))
		}
		if i == m.cursor {
			for j := range cells {
				cells[j] = m.theme.Selected.Render(cells[j])
			}
		}
		tbl.Row(cells...)
	}

	out := tbl.Render()
	if m.pager.TotalPages > 1 {
		out += "\n" + m.pager.View()
	}
	if m.opts.Selectable && len(m.selection) > 0 {
		out += "\n" + m.theme.Hint.Render(fmt.Sprintf("%d selected", len(m.selection)))
	}
	return out
}

// headers renders column titles with the active sort indicator.
func (m *tableModel) headers() []string {
	out := make([]string, 0, len(m.opts.Columns)+1)
	if m.opts.Selectable {
		out = append(out, " ")
	}
	for i, col := range m.opts.Columns {
		title := col.Title
		if col.Key == m.sortKey {
			switch m.sortDir {
			case SortAsc:
				title += " ▲"
			case SortDesc:
				title += " ▼"
			}
		}
		if i == m.colIdx {
			title = m.theme.Status.Render(title)
		}
		out = append(out, title)
	}
	return out
}
