package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOBaccarat/bot"
	"gitlab.com/aoterocom/AOBaccarat/helpers"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		helpers.Logger.Errorln(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	commonFlags := []cli.Flag{
		&cli.StringFlag{Name: "env", Value: "conf.env", Usage: "env file to load"},
		&cli.StringFlag{Name: "models", Usage: "comma separated models (patternAI, deepBaccarat)"},
	}

	return &cli.App{
		Name:  "aobaccarat",
		Usage: "next hand estimator for baccarat",
		Commands: []*cli.Command{
			{
				Name:  "predict",
				Usage: "predict the next hand from a grid and a history",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "grid", Value: "...../...../...../...../.....", Usage: "5 rows of P, B or '.', separated by '/'"},
					&cli.StringFlag{Name: "history", Usage: "hand results, e.g. PBBTP"},
				}, commonFlags...),
				Action: func(c *cli.Context) error {
					b, err := bot.NewBot(c)
					if err != nil {
						return err
					}
					return b.Predict(c)
				},
			},
			{
				Name:  "play",
				Usage: "run the interactive table",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "grid", Usage: "initial grid"},
					&cli.StringFlag{Name: "history", Usage: "hands already played at this table, e.g. PBBTP"},
				}, commonFlags...),
				Action: func(c *cli.Context) error {
					b, err := bot.NewBot(c)
					if err != nil {
						return err
					}
					return b.Play(c)
				},
			},
			{
				Name:  "simulate",
				Usage: "replay a hand history and report each model's accuracy",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "history", Required: true, Usage: "hand results, e.g. PBBTP"},
					&cli.StringFlag{Name: "grid", Usage: "grid used for every hand"},
				}, commonFlags...),
				Action: func(c *cli.Context) error {
					b, err := bot.NewBot(c)
					if err != nil {
						return err
					}
					return b.Simulate(c)
				},
			},
			{
				Name:  "session",
				Usage: "show the stats of a saved session",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "id", Required: true, Usage: "session id"},
				}, commonFlags...),
				Action: func(c *cli.Context) error {
					b, err := bot.NewBot(c)
					if err != nil {
						return err
					}
					return b.Session(c)
				},
			},
		},
	}
}
