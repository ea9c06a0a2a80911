package delta

// Pair holds the positions, within a row, of a current-period cell and the
// prior-period cell it is compared against.
type Pair struct {
	Current int
	Prior   int
}

// layout describes how a statement lays out its numeric columns.
type layout struct {
	columns int
	pairs   []Pair
}

// Positions below index into the row's numeric cells, not its raw cells.
var layouts = map[StatementKind]layout{
	// three months current, prior; year to date current, prior
	Income:   {columns: 4, pairs: []Pair{{0, 1}, {2, 3}}},
	Balance:  {columns: 2, pairs: []Pair{{0, 1}}},
	CashFlow: {columns: 2, pairs: []Pair{{0, 1}}},
}

// NumericCells returns the positions of the row's comparable cells in order.
func NumericCells(row Row) []int {
	var idx []int
	for i, c := range row.Cells {
		if isComparable(c) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Pairs maps a data row onto its comparison pairs, expressed as positions in
// row.Cells. Rows whose numeric cell count does not match the statement
// layout yield nil.
func (k StatementKind) Pairs(row Row) []Pair {
	l, ok := layouts[k]
	if !ok {
		return nil
	}
	numeric := NumericCells(row)
	if len(numeric) != l.columns {
		return nil
	}
	pairs := make([]Pair, 0, len(l.pairs))
	for _, p := range l.pairs {
		pairs = append(pairs, Pair{Current: numeric[p.Current], Prior: numeric[p.Prior]})
	}
	return pairs
}
