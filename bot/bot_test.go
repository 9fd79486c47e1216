package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOBaccarat/config"
	"gitlab.com/aoterocom/AOBaccarat/predictors"
)

func TestNewTableResolvesPrimaryModel(t *testing.T) {
	b := &Bot{Config: &config.Config{Models: predictors.DefaultModels, PrimaryModel: "patternAI"}}
	table, err := b.NewTable()
	require.NoError(t, err)
	assert.Equal(t, predictors.PatternAIName, table.PrimaryModel())

	// a primary outside the configured models falls back to the first one
	b.Config.Models = []string{"deepBaccarat"}
	table, err = b.NewTable()
	require.NoError(t, err)
	assert.Equal(t, predictors.DeepBaccaratName, table.PrimaryModel())

	b.Config.PrimaryModel = "coinFlip"
	_, err = b.NewTable()
	assert.Error(t, err)
}

func TestSessionStoreDisabled(t *testing.T) {
	b := &Bot{Config: &config.Config{}}
	store, err := b.SessionStore()
	assert.NoError(t, err)
	assert.Nil(t, store)
}
