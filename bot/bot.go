package bot

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOBaccarat/config"
	"gitlab.com/aoterocom/AOBaccarat/database"
	"gitlab.com/aoterocom/AOBaccarat/helpers"
	"gitlab.com/aoterocom/AOBaccarat/interfaces"
	"gitlab.com/aoterocom/AOBaccarat/models"
	"gitlab.com/aoterocom/AOBaccarat/predictors"
	"gitlab.com/aoterocom/AOBaccarat/services"
	"gitlab.com/aoterocom/AOBaccarat/ui"
)

type Bot struct {
	Config *config.Config
	Out    io.Writer
}

// NewBot loads the env file named by the --env flag and configures the shared logger
func NewBot(c *cli.Context) (*Bot, error) {
	cfg, err := config.Load(c.String("env"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if models := config.SplitList(c.String("models")); len(models) > 0 {
		cfg.Models = models
	}
	if err := helpers.ConfigureLogger(cfg.LoggerOptions()); err != nil {
		return nil, err
	}
	return &Bot{Config: cfg, Out: c.App.Writer}, nil
}

func (b *Bot) Predictors() ([]interfaces.Predictor, error) {
	return predictors.PredictorsFactory(b.Config.Models)
}

func (b *Bot) SessionStore() (interfaces.SessionStore, error) {
	if !b.Config.DatabaseEnabled {
		return nil, nil
	}
	dbService, err := database.NewDBService(b.Config.DatabaseHost, b.Config.DatabasePort, b.Config.DatabaseName,
		b.Config.DatabaseUser, b.Config.DatabasePassword)
	if err != nil {
		return nil, err
	}
	return dbService, nil
}

// NewTable wires the configured predictors, history and tracker together
func (b *Bot) NewTable() (*services.TableService, error) {
	sessionStore, err := b.SessionStore()
	if err != nil {
		return nil, fmt.Errorf("connecting session store: %w", err)
	}
	return b.newTable(sessionStore)
}

func (b *Bot) newTable(sessionStore interfaces.SessionStore) (*services.TableService, error) {
	configuredPredictors, err := b.Predictors()
	if err != nil {
		return nil, err
	}
	primary, err := predictors.PredictorFactory(b.Config.PrimaryModel)
	if err != nil {
		return nil, err
	}
	primaryName := primary.Name()
	if !hasPredictor(configuredPredictors, primaryName) {
		primaryName = configuredPredictors[0].Name()
	}
	tracker := services.NewSessionTrackerService(sessionStore)
	return services.NewTableService(configuredPredictors, primaryName, services.NewGameService(), tracker)
}

// Predict validates the grid and history given on the command line and prints every model's call
func (b *Bot) Predict(c *cli.Context) error {
	grid, err := models.ParseGridString(c.String("grid"))
	if err != nil {
		helpers.Logger.Warnln("rejected grid: " + err.Error())
		return err
	}
	history, err := models.ParseHistory(c.String("history"))
	if err != nil {
		helpers.Logger.Warnln("rejected history: " + err.Error())
		return err
	}

	configuredPredictors, err := b.Predictors()
	if err != nil {
		return err
	}
	for _, predictor := range configuredPredictors {
		prediction := predictor.Predict(grid, history)
		helpers.Logger.Infoln(fmt.Sprintf("%s predicts %s (%.1f%%)", prediction.Model, prediction.Outcome.Name(), prediction.Confidence))
		fmt.Fprintf(b.Out, "%-14s %-6s %5.1f%%\n", prediction.Model, prediction.Outcome.Name(), prediction.Confidence)
	}
	return nil
}

// Simulate replays a hand history through every configured model, predicting each hand from the
// hands before it, and prints how each model would have done
func (b *Bot) Simulate(c *cli.Context) error {
	history, err := models.ParseHistory(c.String("history"))
	if err != nil {
		return err
	}
	table, err := b.newTable(nil)
	if err != nil {
		return err
	}
	if c.String("grid") != "" {
		grid, err := models.ParseGridString(c.String("grid"))
		if err != nil {
			return err
		}
		if err := table.SetGrid(grid); err != nil {
			return err
		}
	}

	for _, result := range history {
		if _, err := table.RecordOutcome(result); err != nil {
			return err
		}
	}

	for _, stats := range table.ModelStats() {
		fmt.Fprintf(b.Out, "%-14s rounds %-4d valid %-4d accuracy %5.1f%%\n", stats.Name, stats.TotalPredictions,
			stats.ValidPredictions, stats.Accuracy)
	}
	sessionStats := table.SessionStats()
	fmt.Fprintf(b.Out, "Results P/B/T: %d/%d/%d\n", sessionStats.PlayerResults, sessionStats.BankerResults, sessionStats.TieResults)
	return nil
}

func (b *Bot) Play(c *cli.Context) error {
	helpers.Logger.Infoln("🎴 Baccarat table started")
	table, err := b.NewTable()
	if err != nil {
		return err
	}
	if c.String("grid") != "" {
		grid, err := models.ParseGridString(c.String("grid"))
		if err != nil {
			return err
		}
		if err := table.SetGrid(grid); err != nil {
			return err
		}
	}
	if c.String("history") != "" {
		history, err := models.ParseHistory(c.String("history"))
		if err != nil {
			return err
		}
		if err := table.LoadHistory(history); err != nil {
			return err
		}
	}
	helpers.Logger.Infoln("session " + table.SessionTracker().SessionID())
	return ui.NewUserInterface(table, b.Config.RefreshInterval).Run()
}

// Session prints the stats of a persisted session
func (b *Bot) Session(c *cli.Context) error {
	sessionStore, err := b.SessionStore()
	if err != nil {
		return err
	}
	if sessionStore == nil {
		return fmt.Errorf("session lookup needs enableDatabaseRecording=true")
	}
	tracker := services.NewSessionTrackerService(sessionStore)
	if err := tracker.Load(c.String("id")); err != nil {
		helpers.Logger.Errorln(err)
		return err
	}
	stats := tracker.Stats()
	fmt.Fprintf(b.Out, "Session %s\n", stats.SessionID)
	fmt.Fprintf(b.Out, "Rounds: %d (valid %d)\n", stats.TotalRounds, stats.ValidRounds)
	fmt.Fprintf(b.Out, "Accuracy: %.1f%%\n", stats.Accuracy)
	fmt.Fprintf(b.Out, "Predictions P/B: %d/%d\n", stats.PlayerPredictions, stats.BankerPredictions)
	fmt.Fprintf(b.Out, "Results P/B/T: %d/%d/%d\n", stats.PlayerResults, stats.BankerResults, stats.TieResults)
	return nil
}

func hasPredictor(predictors []interfaces.Predictor, name string) bool {
	for _, predictor := range predictors {
		if predictor.Name() == name {
			return true
		}
	}
	return false
}
