// Package tableio reads statement tables from the hand-written formats the
// annotate command accepts: lenient JSON grids and Markdown pipe tables.
package tableio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"statement_deltas/pkg/core/delta"
)

// ErrUnparseable is returned when no parsing strategy yields a grid.
var ErrUnparseable = errors.New("tableio: input is not a table grid")

// ParseGrid decodes a table given as an array of rows of cells:
//
//	[["", "2025", "2024"], ["Net sales", 110, "100"]]
//
// Cells may be strings, bare numbers, booleans or null (an empty cell).
// Comments, trailing commas and missing commas between rows are accepted.
func ParseGrid(input string) (delta.Table, error) {
	var raw [][]any
	if err := SmartParse(input, &raw); err != nil {
		return delta.Table{}, err
	}

	grid := make([][]string, len(raw))
	for i, row := range raw {
		grid[i] = make([]string, len(row))
		for j, v := range row {
			text, err := cellText(v)
			if err != nil {
				return delta.Table{}, fmt.Errorf("%w: row %d, cell %d: %v", ErrUnparseable, i, j, err)
			}
			grid[i][j] = text
		}
	}
	return delta.NewTable(grid), nil
}

func cellText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	}
	return "", fmt.Errorf("unsupported cell %T", v)
}

// SmartParse decodes input into v. Strict JSON is tried first, then Hjson,
// then a json-repair pass for input neither accepts (unclosed brackets,
// single quotes).
func SmartParse(input string, v any) error {
	if err := json.Unmarshal([]byte(input), v); err == nil {
		return nil
	}

	// Hjson yields generic values; round-trip through JSON to reach v.
	var generic any
	if err := hjson.Unmarshal([]byte(input), &generic); err == nil {
		if data, err := json.Marshal(generic); err == nil {
			if err := json.Unmarshal(data, v); err == nil {
				return nil
			}
		}
	}

	repaired, err := jsonrepair.RepairJSON(input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return nil
}
