package table

import (
	"fmt"
	"strconv"
)

// PriorityColumns is the fixed-priority prefix used when reordering raw
// output: identifier-like columns first, everything else in original order.
var PriorityColumns = []string{"Rk", "Player", "Player_URL", "Season", "Age", "Team", "Pos"}

// Row maps column names to cell values. Valid cell types are string, int,
// float64, and nil for an absent value.
type Row map[string]any

// Table is an ordered sequence of rows with an explicit column ordering.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column ordering.
func New(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols, Rows: make([]Row, 0)}
}

// Append adds a row, filling in nil for any column the row does not carry.
// Values under names that are not table columns are dropped.
func (t *Table) Append(r Row) {
	row := make(Row, len(t.Columns))
	for _, col := range t.Columns {
		if v, ok := r[col]; ok {
			row[col] = v
		} else {
			row[col] = nil
		}
	}
	t.Rows = append(t.Rows, row)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// AddColumn appends a new column, setting every existing row to def.
// Adding a column that already exists is a no-op.
func (t *Table) AddColumn(name string, def any) {
	if t.HasColumn(name) {
		return
	}
	t.Columns = append(t.Columns, name)
	for _, row := range t.Rows {
		row[name] = def
	}
}

// DropColumn removes a column and its values from every row. Dropping a
// column that does not exist is a no-op.
func (t *Table) DropColumn(name string) {
	cols := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if col != name {
			cols = append(cols, col)
		}
	}
	t.Columns = cols
	for _, row := range t.Rows {
		delete(row, name)
	}
}

// Cell returns the value at (row index, column name). Reading a missing
// column or an out-of-range row yields nil.
func (t *Table) Cell(i int, col string) any {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i][col]
}

// SetCell sets the value at (row index, column name). The column must exist.
func (t *Table) SetCell(i int, col string, v any) error {
	if !t.HasColumn(col) {
		return fmt.Errorf("setting cell: no column %q", col)
	}
	if i < 0 || i >= len(t.Rows) {
		return fmt.Errorf("setting cell: row %d out of range", i)
	}
	t.Rows[i][col] = v
	return nil
}

// ReorderPriority moves the given columns (those present) to the front in the
// given order; remaining columns keep their original relative order.
func (t *Table) ReorderPriority(priority ...string) {
	front := make([]string, 0, len(priority))
	inFront := make(map[string]bool, len(priority))
	for _, col := range priority {
		if t.HasColumn(col) {
			front = append(front, col)
			inFront[col] = true
		}
	}
	rest := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if !inFront[col] {
			rest = append(rest, col)
		}
	}
	t.Columns = append(front, rest...)
}

// Concat appends all rows of other to t. Columns present in only one table
// are added to the result with nil values for the rows that lack them.
func (t *Table) Concat(other *Table) {
	for _, col := range other.Columns {
		t.AddColumn(col, nil)
	}
	for _, row := range other.Rows {
		t.Append(row)
	}
}

// CellString renders a cell value for display or CSV output. nil renders as
// the empty string.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
