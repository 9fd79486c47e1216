package helpers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	tb "gopkg.in/tucnak/telebot.v2"
)

type FileLogger struct {
	logger         *log.Logger
	telegramOutput bool
	telegramToken  string
	telegramChatId string
}

type LoggerOptions struct {
	LogFile        string
	LogLevel       string
	TelegramOutput bool
	TelegramToken  string
	TelegramChatId string
}

var Logger = NewFileLogger(os.Stderr)

func NewFileLogger(output io.Writer) *FileLogger {
	plainFormatter := new(PlainFormatter)
	plainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	plainFormatter.LevelDesc = []string{"PANIC", "FATAL", "ERROR", "WARN ", "INFO ", "DEBUG", "TRACE"}

	logger := log.New()
	logger.SetOutput(output)
	logger.SetFormatter(plainFormatter)
	logger.SetLevel(log.InfoLevel)

	return &FileLogger{logger: logger}
}

// ConfigureLogger points the shared Logger at the configured file and level
func ConfigureLogger(options LoggerOptions) error {
	if options.TelegramOutput {
		if options.TelegramToken == "" {
			return fmt.Errorf("telegramOutput set to true but telegramToken parameter not found")
		}
		if options.TelegramChatId == "" {
			return fmt.Errorf("telegramOutput set to true but telegramChatId parameter not found")
		}
	}

	if options.LogFile != "" {
		f, err := os.OpenFile(options.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		Logger.logger.SetOutput(f)
	}

	if options.LogLevel != "" {
		level, err := log.ParseLevel(strings.ToLower(options.LogLevel))
		if err != nil {
			return err
		}
		Logger.logger.SetLevel(level)
	}

	Logger.telegramOutput = options.TelegramOutput
	Logger.telegramToken = options.TelegramToken
	Logger.telegramChatId = options.TelegramChatId
	return nil
}

func (l *FileLogger) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}

func (l *FileLogger) Errorln(args ...interface{}) {
	l.logger.Errorln(args...)
}

func (l *FileLogger) Warnln(args ...interface{}) {
	l.logger.Warnln(args...)
}

// Infoln also goes to the telegram chat when telegram output is enabled
func (l *FileLogger) Infoln(args ...interface{}) {
	l.logger.Infoln(args...)
	if l.telegramOutput && len(args) > 0 {
		err := sendOnTelegramChannel(fmt.Sprint(args...), l.telegramToken, l.telegramChatId)
		if err != nil {
			l.logger.Errorln("telegram: " + err.Error())
		}
	}
}

func (l *FileLogger) Debugln(args ...interface{}) {
	l.logger.Debugln(args...)
}

type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

func (f PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	level := strings.ToUpper(entry.Level.String())
	if int(entry.Level) < len(f.LevelDesc) {
		level = f.LevelDesc[entry.Level]
	}
	return []byte(fmt.Sprintf("%s %s %s\n", level, timestamp, entry.Message)), nil
}

func sendOnTelegramChannel(message string, token string, chatID string) error {

	b, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 10 * time.Second},
	})

	if err != nil {
		return err
	}

	id, err := b.ChatByID(chatID)
	if err != nil {
		return err
	}
	_, err = b.Send(id, message)
	if err != nil {
		return err
	}

	return nil
}
