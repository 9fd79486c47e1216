package analyzers

import (
	"gitlab.com/aoterocom/AOBaccarat/models"
	"gitlab.com/aoterocom/AOBaccarat/models/analytics"
)

// minBlockCells is how many of the four cells of a 2x2 block must be filled for it to count
const minBlockCells = 3

// ExtractPatterns reads rows, columns, both diagonals and 2x2 blocks off the grid
func ExtractPatterns(grid models.Grid) analytics.PatternBundle {
	patterns := analytics.PatternBundle{}

	for row := 0; row < models.GridSize; row++ {
		var pattern []models.Outcome
		for col := 0; col < models.GridSize; col++ {
			pattern = appendFilled(pattern, grid[row][col])
		}
		if len(pattern) > 0 {
			patterns.Rows = append(patterns.Rows, pattern)
		}
	}

	for col := 0; col < models.GridSize; col++ {
		var pattern []models.Outcome
		for row := 0; row < models.GridSize; row++ {
			pattern = appendFilled(pattern, grid[row][col])
		}
		if len(pattern) > 0 {
			patterns.Columns = append(patterns.Columns, pattern)
		}
	}

	var mainDiagonal, antiDiagonal []models.Outcome
	for i := 0; i < models.GridSize; i++ {
		mainDiagonal = appendFilled(mainDiagonal, grid[i][i])
		antiDiagonal = appendFilled(antiDiagonal, grid[i][models.GridSize-1-i])
	}
	if len(mainDiagonal) > 0 {
		patterns.Diagonals = append(patterns.Diagonals, mainDiagonal)
	}
	if len(antiDiagonal) > 0 {
		patterns.Diagonals = append(patterns.Diagonals, antiDiagonal)
	}

	for row := 0; row < models.GridSize-1; row++ {
		for col := 0; col < models.GridSize-1; col++ {
			var block []models.Outcome
			block = appendFilled(block, grid[row][col])
			block = appendFilled(block, grid[row][col+1])
			block = appendFilled(block, grid[row+1][col])
			block = appendFilled(block, grid[row+1][col+1])
			if len(block) >= minBlockCells {
				patterns.Blocks = append(patterns.Blocks, block)
			}
		}
	}

	return patterns
}

// CountSequences flattens the grid row by row and counts singles over the whole sequence and
// pairs and triplets over sliding windows
func CountSequences(grid models.Grid) analytics.SequenceCounts {
	flat := grid.Flatten()
	sequences := analytics.NewSequenceCounts()

	for _, cell := range flat {
		sequences.Increment(string(cell))
	}

	for i := 0; i < len(flat)-1; i++ {
		sequences.Increment(string(flat[i]) + string(flat[i+1]))
		if i < len(flat)-2 {
			sequences.Increment(string(flat[i]) + string(flat[i+1]) + string(flat[i+2]))
		}
	}

	return sequences
}

func appendFilled(pattern []models.Outcome, cell models.Outcome) []models.Outcome {
	if cell == models.OutcomeEmpty {
		return pattern
	}
	return append(pattern, cell)
}
