package delta

// Annotate returns a copy of t with a Badge on every current-period cell of
// every qualifying data row. Badges already present in t are discarded first,
// so annotating an annotated table gives the same result as annotating the
// original. t itself is not modified.
func Annotate(t Table, kind StatementKind) Table {
	out := t.Clone()
	Strip(&out)

	for i := range out.Rows {
		row := &out.Rows[i]
		if IsHeaderOrDateRow(*row) {
			continue
		}
		for _, p := range kind.Pairs(*row) {
			cur, ok := ParseStrictNumber(row.Cells[p.Current].Text)
			if !ok {
				continue
			}
			prior, ok := ParseStrictNumber(row.Cells[p.Prior].Text)
			if !ok {
				continue
			}
			b := ComputeDelta(cur, prior)
			row.Cells[p.Current].Badge = &b
		}
	}

	// date rows never keep a badge, whatever the classifier decided
	for i := range out.Rows {
		if IsDateText(NormalizeText(out.Rows[i].Text())) {
			stripRow(&out.Rows[i])
		}
	}
	return out
}

// Strip removes every badge from t in place.
func Strip(t *Table) {
	for i := range t.Rows {
		stripRow(&t.Rows[i])
	}
}

func stripRow(r *Row) {
	for j := range r.Cells {
		r.Cells[j].Badge = nil
	}
}

// Counts tallies badges by sign.
type Counts map[Sign]int

// Total returns the number of badges counted.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Summary counts the badges present in t.
func Summary(t Table) Counts {
	counts := Counts{}
	for _, r := range t.Rows {
		for _, c := range r.Cells {
			if c.Badge != nil {
				counts[c.Badge.Sign]++
			}
		}
	}
	return counts
}
