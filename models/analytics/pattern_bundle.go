package analytics

import "gitlab.com/aoterocom/AOBaccarat/models"

// PatternBundle holds the sub-sequences read off a grid snapshot. Empty cells are skipped.
type PatternBundle struct {
	Rows      [][]models.Outcome
	Columns   [][]models.Outcome
	Diagonals [][]models.Outcome
	Blocks    [][]models.Outcome
}
