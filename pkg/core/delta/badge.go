package delta

import (
	"fmt"
	"math"
)

// Sign is the direction category of a delta.
type Sign string

const (
	Up   Sign = "up"
	Down Sign = "down"
	Flat Sign = "flat"
	NA   Sign = "na"
)

// Badge is the change indicator attached to a current-period cell.
// Magnitude is the absolute change in percent; it is nil for NA.
type Badge struct {
	Sign      Sign     `json:"sign"`
	Magnitude *float64 `json:"magnitude_percent,omitempty"`
}

// ComputeDelta compares a current value with its prior-period value.
// A zero prior is reported as flat rather than dividing by zero.
func ComputeDelta(current, prior float64) Badge {
	var ratio float64
	if prior != 0 {
		ratio = (current - prior) / math.Abs(prior)
	}
	if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		return Badge{Sign: NA}
	}

	sign := Flat
	switch {
	case ratio > 0:
		sign = Up
	case ratio < 0:
		sign = Down
	}
	pct := math.Abs(ratio * 100)
	return Badge{Sign: sign, Magnitude: &pct}
}

// Percent returns the signed change in percent, or false for NA.
func (b Badge) Percent() (float64, bool) {
	if b.Magnitude == nil || b.Sign == NA {
		return 0, false
	}
	if b.Sign == Down {
		return -*b.Magnitude, true
	}
	return *b.Magnitude, true
}

// Glyph returns the marker shown in front of the magnitude.
func (b Badge) Glyph() string {
	switch b.Sign {
	case Up:
		return "▲"
	case Down:
		return "▼"
	case Flat:
		return "•"
	}
	return "N/A"
}

// Label renders the badge text, e.g. "▲ 10.0%" or "N/A".
func (b Badge) Label() string {
	if b.Sign == NA || b.Magnitude == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s %.1f%%", b.Glyph(), *b.Magnitude)
}

// Class returns the CSS class naming the badge category, e.g. "delta-up".
func (b Badge) Class() string {
	if b.Magnitude == nil {
		return "delta-" + string(NA)
	}
	return "delta-" + string(b.Sign)
}

func (b Badge) clone() Badge {
	if b.Magnitude != nil {
		m := *b.Magnitude
		b.Magnitude = &m
	}
	return b
}
