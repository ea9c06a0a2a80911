package delta

import "testing"

func row(texts ...string) Row {
	return NewTable([][]string{texts}).Rows[0]
}

func TestIsHeaderOrDateRow(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want bool
	}{
		{"empty row", row(), true},
		{"whitespace only", row(" ", " ", ""), true},
		{"date row", row("", "June 28, 2025", "June 29, 2024"), true},
		{"date split over cells", row("", "June 28,", "2025"), true},
		{"date row with numeric looking cells", row("September 30, 2025", "100", "200"), true},
		{"bare fiscal years", row("2025", "2024"), true},
		{"fiscal years with blanks", row("", "2025", "", "2024"), true},
		{"years with currency", row("$2025", "2024"), false},
		{"months ended", row("", "Three Months Ended", "Nine Months Ended"), true},
		{"months ended lower case", row("six months ended"), true},
		{"data row", row("Net sales", "$94,930", "$85,777"), false},
		{"label only", row("Operating expenses:"), false},
		{"month without year", row("Revenue recognized in June", "10", "12"), false},
		{"old year with month", row("Balance at June 30, 1999", "10", "12"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHeaderOrDateRow(tt.row); got != tt.want {
				t.Errorf("IsHeaderOrDateRow(%q) = %v, want %v", tt.row.Text(), got, tt.want)
			}
		})
	}
}

func TestNumericCells_ExcludesDatesAndYears(t *testing.T) {
	r := row("Shares", "2025", "June 28, 2025", "$", "1,000", "(200)", "n/a")
	got := NumericCells(r)
	want := []int{4, 5}
	if len(got) != len(want) {
		t.Fatalf("NumericCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NumericCells()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNumericCells_SkipsHeaderCells(t *testing.T) {
	r := row("Total", "100", "90")
	r.Cells[1].Header = true
	if got := NumericCells(r); len(got) != 1 || got[0] != 2 {
		t.Errorf("NumericCells() = %v, want [2]", got)
	}
}
