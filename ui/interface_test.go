package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOBaccarat/models"
	"gitlab.com/aoterocom/AOBaccarat/predictors"
	"gitlab.com/aoterocom/AOBaccarat/services"
)

func newTestInterface(t *testing.T) *UserInterface {
	configured, err := predictors.PredictorsFactory(predictors.DefaultModels)
	require.NoError(t, err)
	table, err := services.NewTableService(configured, predictors.DeepBaccaratName, services.NewGameService(),
		services.NewSessionTrackerService(nil))
	require.NoError(t, err)
	return NewUserInterface(table, 0)
}

func TestHandleKeyEditsGrid(t *testing.T) {
	ui := newTestInterface(t)

	assert.True(t, ui.HandleKey("<Space>"))
	assert.True(t, ui.HandleKey("<Right>"))
	assert.True(t, ui.HandleKey("<Space>"))
	assert.True(t, ui.HandleKey("<Space>"))
	assert.True(t, ui.HandleKey("<Up>"))
	assert.True(t, ui.HandleKey("<Space>"))

	grid := ui.TableService.Grid()
	assert.Equal(t, models.OutcomePlayer, grid[0][0])
	assert.Equal(t, models.OutcomeBanker, grid[0][1])
	assert.Equal(t, models.OutcomePlayer, grid[4][1])

	lines := strings.Split(ui.RenderGrid(), "\n")
	assert.Equal(t, " P  B  .  .  . ", lines[0])
	assert.Equal(t, " . <P> .  .  . ", lines[4])

	ui.HandleKey("c")
	assert.True(t, ui.TableService.Grid().IsEmpty())
}

func TestHandleKeyPlaysRounds(t *testing.T) {
	ui := newTestInterface(t)

	ui.HandleKey("n")
	assert.Len(t, ui.TableService.Pending(), 2)
	assert.Len(t, ui.logList, 2)

	ui.HandleKey("b")
	ui.HandleKey("t")
	ui.HandleKey("x")
	assert.Equal(t, []models.Outcome{"B", "T"}, ui.TableService.History(0))
	assert.Equal(t, 2, ui.TableService.SessionStats().TotalRounds)

	ui.HandleKey("r")
	assert.Empty(t, ui.TableService.History(0))
	assert.Empty(t, ui.logList)

	assert.False(t, ui.HandleKey("q"))
	assert.False(t, ui.HandleKey("<C-c>"))
}
