package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/AOBaccarat/helpers"
	"gitlab.com/aoterocom/AOBaccarat/predictors"
)

const (
	defaultRefreshInterval = time.Second
	defaultLogFile         = "aobaccarat.log"
)

type Config struct {
	LogFile        string
	LogLevel       string
	TelegramOutput bool
	TelegramToken  string
	TelegramChatId string

	Models       []string
	PrimaryModel string

	DatabaseEnabled  bool
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string

	RefreshInterval time.Duration
}

// Load reads the env file at path into the process environment and builds the Config from it.
// A missing file is not an error: variables already set in the environment still apply.
func Load(path string) (*Config, error) {
	if path != "" {
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		LogFile:          defaultLogFile,
		LogLevel:         os.Getenv("logLevel"),
		TelegramToken:    os.Getenv("telegramToken"),
		TelegramChatId:   os.Getenv("telegramChatId"),
		Models:           SplitList(os.Getenv("models")),
		PrimaryModel:     strings.TrimSpace(os.Getenv("primaryModel")),
		DatabaseHost:     os.Getenv("databaseHost"),
		DatabasePort:     os.Getenv("databasePort"),
		DatabaseName:     os.Getenv("databaseName"),
		DatabaseUser:     os.Getenv("databaseUser"),
		DatabasePassword: os.Getenv("databasePassword"),
		RefreshInterval:  defaultRefreshInterval,
	}

	if logFile := strings.TrimSpace(os.Getenv("logFile")); logFile != "" {
		cfg.LogFile = logFile
	}

	var err error
	if cfg.TelegramOutput, err = parseBool("telegramOutput"); err != nil {
		return nil, err
	}
	if cfg.DatabaseEnabled, err = parseBool("enableDatabaseRecording"); err != nil {
		return nil, err
	}

	if len(cfg.Models) == 0 {
		cfg.Models = predictors.DefaultModels
	}
	if cfg.PrimaryModel == "" {
		cfg.PrimaryModel = "deepBaccarat"
	}

	if refreshInterval := os.Getenv("refreshInterval"); refreshInterval != "" {
		cfg.RefreshInterval, err = str2duration.ParseDuration(refreshInterval)
		if err != nil {
			return nil, err
		}
		if cfg.RefreshInterval <= 0 {
			return nil, errors.New("refreshInterval must be positive")
		}
	}

	return cfg, nil
}

func (c *Config) LoggerOptions() helpers.LoggerOptions {
	return helpers.LoggerOptions{
		LogFile:        c.LogFile,
		LogLevel:       c.LogLevel,
		TelegramOutput: c.TelegramOutput,
		TelegramToken:  c.TelegramToken,
		TelegramChatId: c.TelegramChatId,
	}
}

func SplitList(value string) []string {
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func parseBool(key string) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}
