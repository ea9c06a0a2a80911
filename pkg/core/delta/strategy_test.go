package delta

import (
	"reflect"
	"testing"
)

func TestPairs(t *testing.T) {
	tests := []struct {
		name string
		kind StatementKind
		row  Row
		want []Pair
	}{
		{
			name: "income four columns",
			kind: Income,
			row:  row("Net sales", "$", "110", "$", "100", "330", "300"),
			want: []Pair{{2, 4}, {5, 6}},
		},
		{
			name: "income with two columns is skipped",
			kind: Income,
			row:  row("Net sales", "110", "100"),
		},
		{
			name: "balance two columns",
			kind: Balance,
			row:  row("Total assets", "900", "1,000"),
			want: []Pair{{1, 2}},
		},
		{
			name: "balance with a footnote column",
			kind: Balance,
			row:  row("Goodwill", "(1)", "900", "1,000"),
		},
		{
			name: "cash flow ignores bare years",
			kind: CashFlow,
			row:  row("Depreciation", "2025", "(120)", "(110)"),
			want: []Pair{{2, 3}},
		},
		{
			name: "unknown kind",
			kind: StatementKind(42),
			row:  row("Total assets", "900", "1,000"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.kind.Pairs(tt.row)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Pairs() = %v, want %v", got, tt.want)
			}
		})
	}
}
