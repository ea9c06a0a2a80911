// Package delta annotates financial statement tables with period-over-period
// change badges.
//
// A Table is plain data: rows of cells with their raw text. Annotate never
// reorders, adds or removes rows and cells; the only thing it changes is the
// Badge attached to a cell.
package delta

import (
	"errors"
	"strings"
)

// StatementKind selects which numeric cells of a data row are compared.
type StatementKind int

const (
	Income StatementKind = iota
	Balance
	CashFlow
)

// ErrUnknownKind is returned by ParseStatementKind for unsupported labels.
var ErrUnknownKind = errors.New("unknown statement kind")

// String returns the canonical label ("income", "balance", "cash_flow").
func (k StatementKind) String() string {
	switch k {
	case Income:
		return "income"
	case Balance:
		return "balance"
	case CashFlow:
		return "cash_flow"
	}
	return "unknown"
}

// ParseStatementKind maps a label to a StatementKind.
// Report section names ("income_statement", "balance_sheet") are accepted too.
func ParseStatementKind(s string) (StatementKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "income_statement":
		return Income, nil
	case "balance", "balance_sheet":
		return Balance, nil
	case "cash_flow", "cash", "cashflow":
		return CashFlow, nil
	}
	return 0, ErrUnknownKind
}

// MarshalText implements encoding.TextMarshaler.
func (k StatementKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *StatementKind) UnmarshalText(b []byte) error {
	parsed, err := ParseStatementKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Cell is one table cell. Header marks a heading cell (<th>): it counts for
// row classification but is never a comparison candidate.
type Cell struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Text   string `json:"text"`
	Header bool   `json:"header,omitempty"`
	Badge  *Badge `json:"badge,omitempty"`
}

// Value returns the loosely parsed numeric value of the cell text.
func (c Cell) Value() (float64, bool) {
	return ParseNumber(c.Text)
}

// Row is an ordered sequence of cells.
type Row struct {
	Index int    `json:"index"`
	Cells []Cell `json:"cells"`
}

// Text joins the cell texts with single spaces.
func (r Row) Text() string {
	parts := make([]string, 0, len(r.Cells))
	for _, c := range r.Cells {
		parts = append(parts, c.Text)
	}
	return strings.Join(parts, " ")
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []Row `json:"rows"`
}

// NewTable builds a Table from raw cell texts, assigning row and column indices.
func NewTable(rows [][]string) Table {
	t := Table{Rows: make([]Row, len(rows))}
	for i, texts := range rows {
		row := Row{Index: i, Cells: make([]Cell, len(texts))}
		for j, text := range texts {
			row.Cells[j] = Cell{Row: i, Col: j, Text: text}
		}
		t.Rows[i] = row
	}
	return t
}

// Clone returns a deep copy of the table, badges included.
func (t Table) Clone() Table {
	out := Table{Rows: make([]Row, len(t.Rows))}
	for i, r := range t.Rows {
		cells := make([]Cell, len(r.Cells))
		for j, c := range r.Cells {
			if c.Badge != nil {
				b := c.Badge.clone()
				c.Badge = &b
			}
			cells[j] = c
		}
		out.Rows[i] = Row{Index: r.Index, Cells: cells}
	}
	return out
}

// Reindex rewrites Row.Index and Cell.Row/Col from the table's positions.
func (t *Table) Reindex() {
	for i := range t.Rows {
		t.Rows[i].Index = i
		for j := range t.Rows[i].Cells {
			t.Rows[i].Cells[j].Row = i
			t.Rows[i].Cells[j].Col = j
		}
	}
}
