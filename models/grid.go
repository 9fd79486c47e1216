package models

import (
	"fmt"
	"strings"
)

const GridSize = 5

// Grid is the 5x5 bead plate. A cell holds Player, Banker or nothing.
type Grid [GridSize][GridSize]Outcome

// NewGrid builds a Grid from a row-major matrix, rejecting anything that is not 5x5 or holds
// values other than P, B or empty.
func NewGrid(rows [][]Outcome) (Grid, error) {
	var grid Grid
	if len(rows) != GridSize {
		return grid, fmt.Errorf("%w: grid has %d rows, want %d", ErrInvalidInput, len(rows), GridSize)
	}
	for r, row := range rows {
		if len(row) != GridSize {
			return grid, fmt.Errorf("%w: grid row %d has %d cells, want %d", ErrInvalidInput, r, len(row), GridSize)
		}
		for c, cell := range row {
			grid[r][c] = cell
		}
	}
	if err := grid.Validate(); err != nil {
		return Grid{}, err
	}
	return grid, nil
}

// ParseGridString reads rows separated by "/" or "," with cells P, B and "." for empty,
// e.g. "PPB../B..../...../...../.....".
func ParseGridString(value string) (Grid, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "/")
	parts := strings.Split(value, "/")
	rows := make([][]Outcome, 0, len(parts))
	for _, part := range parts {
		row := make([]Outcome, 0, len(part))
		for _, r := range part {
			switch r {
			case '.', '-', '_':
				row = append(row, OutcomeEmpty)
			default:
				row = append(row, Outcome(strings.ToUpper(string(r))))
			}
		}
		rows = append(rows, row)
	}
	return NewGrid(rows)
}

// Validate rejects cells holding anything but Player, Banker or empty. Ties are never placed on the grid.
func (g Grid) Validate() error {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			switch g[r][c] {
			case OutcomePlayer, OutcomeBanker, OutcomeEmpty:
			default:
				return fmt.Errorf("%w: grid cell (%d,%d) holds %q", ErrInvalidInput, r, c, string(g[r][c]))
			}
		}
	}
	return nil
}

func (g Grid) IsEmpty() bool {
	return g.FilledCount() == 0
}

func (g Grid) FilledCount() int {
	count := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] != OutcomeEmpty {
				count++
			}
		}
	}
	return count
}

// Flatten returns the non-empty cells in row-major order
func (g Grid) Flatten() []Outcome {
	var flat []Outcome
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] != OutcomeEmpty {
				flat = append(flat, g[r][c])
			}
		}
	}
	return flat
}

func (g Grid) String() string {
	rows := make([]string, GridSize)
	for r := 0; r < GridSize; r++ {
		var sb strings.Builder
		for c := 0; c < GridSize; c++ {
			if g[r][c] == OutcomeEmpty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(g[r][c]))
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "/")
}
