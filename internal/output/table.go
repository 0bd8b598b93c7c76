package output

import (
	"fmt"
	"io"
	"strings"
)

// columnGap separates table columns.
const columnGap = "  "

// Table lays out rows in aligned columns for terminal listings such as
// receive-address ranges. Columns whose cells are all numeric, like an
// address index, are right-aligned; everything else is left-aligned.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Rows longer than the header are clipped, shorter
// rows render with empty trailing cells.
func (t *Table) AddRow(cells ...string) {
	if len(cells) > len(t.headers) {
		cells = cells[:len(t.headers)]
	}
	t.rows = append(t.rows, cells)
}

// Render writes the table: header, a dashed rule, then the rows.
func (t *Table) Render(w io.Writer) error {
	if len(t.headers) == 0 {
		return nil
	}

	widths := t.columnWidths()
	rightAlign := t.numericColumns()

	if err := writeCells(w, t.headers, widths, rightAlign); err != nil {
		return err
	}
	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(rule, columnGap)); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := writeCells(w, row, widths, rightAlign); err != nil {
			return err
		}
	}
	return nil
}

// String renders the table into a string.
func (t *Table) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// numericColumns marks columns where every cell is an unsigned integer.
func (t *Table) numericColumns() []bool {
	numeric := make([]bool, len(t.headers))
	for i := range numeric {
		numeric[i] = len(t.rows) > 0
	}
	for _, row := range t.rows {
		for i := range numeric {
			if i >= len(row) || !isDigits(row[i]) {
				numeric[i] = false
			}
		}
	}
	return numeric
}

func writeCells(w io.Writer, cells []string, widths []int, rightAlign []bool) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if rightAlign[i] {
			parts[i] = fmt.Sprintf("%*s", width, cell)
		} else {
			parts[i] = fmt.Sprintf("%-*s", width, cell)
		}
	}
	line := strings.TrimRight(strings.Join(parts, columnGap), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
