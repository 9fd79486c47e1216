package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/aoterocom/AOBaccarat/analyzers"
	"gitlab.com/aoterocom/AOBaccarat/helpers"
	"gitlab.com/aoterocom/AOBaccarat/models"
	"gitlab.com/aoterocom/AOBaccarat/services"
)

type UserInterface struct {
	TableService    *services.TableService
	RefreshInterval time.Duration
	cursorRow       int
	cursorCol       int
	logList         []string
}

func NewUserInterface(tableService *services.TableService, refreshInterval time.Duration) *UserInterface {
	if refreshInterval <= 0 {
		refreshInterval = time.Second
	}
	return &UserInterface{
		TableService:    tableService,
		RefreshInterval: refreshInterval,
	}
}

func (ui *UserInterface) Run() error {
	if err := termui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer termui.Close()

	uiEvents := termui.PollEvents()
	ticker := time.NewTicker(ui.RefreshInterval)
	defer ticker.Stop()

	ui.UpdateUI()
	for {
		select {
		case e := <-uiEvents:
			if !ui.HandleKey(e.ID) {
				helpers.Logger.Infoln("Exited by keyboard")
				return nil
			}
			ui.UpdateUI()
		case <-ticker.C:
			ui.UpdateUI()
		}
	}
}

// HandleKey applies one key press to the table. It returns false when the user asked to quit.
func (ui *UserInterface) HandleKey(key string) bool {
	switch key {
	case "q", "<C-c>":
		return false
	case "<Up>":
		ui.cursorRow = (ui.cursorRow + models.GridSize - 1) % models.GridSize
	case "<Down>":
		ui.cursorRow = (ui.cursorRow + 1) % models.GridSize
	case "<Left>":
		ui.cursorCol = (ui.cursorCol + models.GridSize - 1) % models.GridSize
	case "<Right>":
		ui.cursorCol = (ui.cursorCol + 1) % models.GridSize
	case "<Space>":
		if _, err := ui.TableService.CycleCell(ui.cursorRow, ui.cursorCol); err != nil {
			ui.log("grid: " + err.Error())
		}
	case "n":
		for _, prediction := range ui.TableService.Predict() {
			ui.log(fmt.Sprintf("%s: %s %.1f%%", prediction.Model, prediction.Outcome.Name(), prediction.Confidence))
		}
	case "p", "b", "t":
		outcome, _ := models.ParseOutcome(key)
		record, err := ui.TableService.RecordOutcome(outcome)
		if err != nil {
			ui.log("round: " + err.Error())
			helpers.Logger.Errorln("ui: " + err.Error())
		}
		if !record.Timestamp.IsZero() {
			mark := "x"
			if record.Correct {
				mark = "ok"
			}
			ui.log(fmt.Sprintf("%s predicted %s, got %s [%s]", record.Timestamp.Format("15:04:05"),
				record.Prediction, record.Actual, mark))
		}
	case "c":
		ui.TableService.ClearGrid()
	case "r":
		ui.TableService.Reset()
		ui.logList = nil
	}
	return true
}

func (ui *UserInterface) log(line string) {
	ui.logList = append(ui.logList, line)
}

func (ui *UserInterface) UpdateUI() {
	snapshot := ui.TableService.Snapshot()

	gridParagraph := widgets.NewParagraph()
	gridParagraph.Title = "Grid"
	gridParagraph.BorderStyle.Fg = termui.ColorYellow
	gridParagraph.TitleStyle.Fg = termui.ColorYellow
	gridParagraph.Text = ui.renderGrid(snapshot.Grid)
	gridParagraph.SetRect(0, 0, 24, 8)

	predictionParagraph := widgets.NewParagraph()
	predictionParagraph.Title = "Next hand"
	for _, prediction := range snapshot.Pending {
		color := "blue"
		if prediction.Outcome == models.OutcomeBanker {
			color = "red"
		}
		predictionParagraph.Text += fmt.Sprintf("%s: [%s](fg:%s) %.1f%%\n", prediction.Model,
			prediction.Outcome.Name(), color, prediction.Confidence)
	}
	if predictionParagraph.Text == "" {
		predictionParagraph.Text = "press n to predict"
	}
	predictionParagraph.SetRect(24, 0, 70, 8)

	sessionStats := snapshot.Session
	gameStats := snapshot.Game
	statsParagraph := widgets.NewParagraph()
	statsParagraph.Title = "Session"
	statsParagraph.Text = fmt.Sprintf("Rounds: %d\n", sessionStats.TotalRounds)
	statsParagraph.Text += fmt.Sprintf("Accuracy: %.1f%% (%d/%d)\n", sessionStats.Accuracy,
		sessionStats.CorrectPredictions, sessionStats.ValidRounds)
	statsParagraph.Text += fmt.Sprintf("P %d  B %d  T %d\n", gameStats.PlayerCount, gameStats.BankerCount, gameStats.TieCount)
	statsParagraph.SetRect(70, 0, 110, 8)

	modelsTable := widgets.NewTable()
	modelsTable.Title = "Models"
	modelsTable.Rows = [][]string{{"Model", "Rounds", "Accuracy", "Last"}}
	for _, stats := range snapshot.Models {
		modelsTable.Rows = append(modelsTable.Rows, []string{stats.Name, fmt.Sprint(stats.TotalPredictions),
			fmt.Sprintf("%.1f%%", stats.Accuracy), stats.LastPrediction.Name()})
	}
	modelsTable.SetRect(0, 8, 55, 15)

	historyParagraph := widgets.NewParagraph()
	historyParagraph.Title = "History"
	recent := snapshot.History
	if len(recent) > 40 {
		recent = recent[len(recent)-40:]
	}
	historyParagraph.Text = models.HistoryString(recent)
	historyParagraph.SetRect(55, 8, 110, 11)

	drawables := []termui.Drawable{gridParagraph, predictionParagraph, statsParagraph, modelsTable, historyParagraph}

	shares := analyzers.RollingBankerShare(snapshot.History, analyzers.DefaultWindow)
	if len(shares) > 1 {
		sharePlot := widgets.NewPlot()
		sharePlot.Title = "Banker share"
		sharePlot.Data = [][]float64{shares}
		sharePlot.SetRect(55, 11, 110, 15)
		drawables = append(drawables, sharePlot)
	}

	operationsList := widgets.NewList()
	operationsList.Title = "Rounds  [arrows+space] grid  [n] predict  [p/b/t] result  [c] clear  [r] reset  [q] quit"
	operationsList.Rows = ui.logList
	operationsList.SetRect(0, 15, 110, 25)
	if len(operationsList.Rows) > 0 {
		operationsList.ScrollBottom()
	}
	drawables = append(drawables, operationsList)

	termui.Render(drawables...)
}

// RenderGrid draws the grid with the cursor cell in brackets
func (ui *UserInterface) RenderGrid() string {
	return ui.renderGrid(ui.TableService.Grid())
}

func (ui *UserInterface) renderGrid(grid models.Grid) string {
	var sb strings.Builder
	for r := 0; r < models.GridSize; r++ {
		for c := 0; c < models.GridSize; c++ {
			cell := "."
			if grid[r][c] != models.OutcomeEmpty {
				cell = string(grid[r][c])
			}
			if r == ui.cursorRow && c == ui.cursorCol {
				sb.WriteString("<" + cell + ">")
			} else {
				sb.WriteString(" " + cell + " ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
