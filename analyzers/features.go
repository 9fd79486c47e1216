package analyzers

import (
	"gitlab.com/aoterocom/AOBaccarat/models"
	"gitlab.com/aoterocom/AOBaccarat/models/analytics"
)

// Features bundles everything the scoring models read from one grid and history snapshot
type Features struct {
	// Patterns is extracted for callers inspecting the grid; neither scoring model weighs it
	Patterns  analytics.PatternBundle
	Sequences analytics.SequenceCounts
	Trend     analytics.TrendSnapshot
	HasTrend  bool
}

func BuildFeatures(grid models.Grid, history []models.Outcome) Features {
	features := Features{
		Patterns:  ExtractPatterns(grid),
		Sequences: CountSequences(grid),
	}
	features.Trend, features.HasTrend = AnalyzeTrends(history, DefaultWindow)
	return features
}
