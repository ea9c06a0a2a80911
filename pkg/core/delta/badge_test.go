package delta

import (
	"math"
	"testing"
)

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		prior     float64
		wantSign  Sign
		wantLabel string
		wantClass string
	}{
		{"increase", 110, 100, Up, "▲ 10.0%", "delta-up"},
		{"decrease", 900, 1000, Down, "▼ 10.0%", "delta-down"},
		{"unchanged", 250, 250, Flat, "• 0.0%", "delta-flat"},
		{"zero prior", 500, 0, Flat, "• 0.0%", "delta-flat"},
		{"negative prior improving", -50, -100, Up, "▲ 50.0%", "delta-up"},
		{"loss to profit", 20, -10, Up, "▲ 300.0%", "delta-up"},
		{"profit to loss", -10, 20, Down, "▼ 150.0%", "delta-down"},
		{"overflow", math.MaxFloat64, -math.MaxFloat64, NA, "N/A", "delta-na"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeDelta(tt.current, tt.prior)
			if b.Sign != tt.wantSign {
				t.Errorf("Sign = %s, want %s", b.Sign, tt.wantSign)
			}
			if got := b.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
			if got := b.Class(); got != tt.wantClass {
				t.Errorf("Class() = %q, want %q", got, tt.wantClass)
			}
			if tt.wantSign == NA && b.Magnitude != nil {
				t.Errorf("NA badge carries magnitude %v", *b.Magnitude)
			}
		})
	}
}

func TestBadge_Percent(t *testing.T) {
	b := ComputeDelta(900, 1000)
	pct, ok := b.Percent()
	if !ok || math.Abs(pct+10) > 1e-9 {
		t.Errorf("Percent() = %v, %v; want -10, true", pct, ok)
	}

	if _, ok := (Badge{Sign: NA}).Percent(); ok {
		t.Error("Percent() on NA badge reported ok")
	}
}

func TestParseStatementKind(t *testing.T) {
	tests := []struct {
		input string
		want  StatementKind
	}{
		{"income", Income},
		{"Income_Statement", Income},
		{"balance", Balance},
		{"balance_sheet", Balance},
		{"cash_flow", CashFlow},
		{"cash", CashFlow},
	}
	for _, tc := range tests {
		got, err := ParseStatementKind(tc.input)
		if err != nil || got != tc.want {
			t.Errorf("ParseStatementKind(%q) = %v, %v; want %v", tc.input, got, err, tc.want)
		}
	}
	if _, err := ParseStatementKind("equity"); err != ErrUnknownKind {
		t.Errorf("ParseStatementKind(equity) err = %v, want ErrUnknownKind", err)
	}
}
