package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestPlainFormatter(t *testing.T) {
	formatter := PlainFormatter{TimestampFormat: "2006-01-02 15:04:05", LevelDesc: []string{"PANIC", "FATAL", "ERROR", "WARN ", "INFO "}}
	entry := &log.Entry{
		Time:    time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC),
		Level:   log.InfoLevel,
		Message: "round closed",
	}

	out, err := formatter.Format(entry)
	assert.NoError(t, err)
	assert.Equal(t, "INFO  2022-03-04 05:06:07 round closed\n", string(out))

	entry.Level = log.TraceLevel
	out, _ = formatter.Format(entry)
	assert.Equal(t, "TRACE 2022-03-04 05:06:07 round closed\n", string(out))
}

func TestFileLoggerLevels(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewFileLogger(&buffer)

	logger.Debugln("hidden")
	logger.Warnln("shown")
	assert.NotContains(t, buffer.String(), "hidden")
	assert.Contains(t, buffer.String(), "WARN ")
	assert.Contains(t, buffer.String(), "shown")
}

func TestConfigureLoggerValidatesTelegram(t *testing.T) {
	err := ConfigureLogger(LoggerOptions{TelegramOutput: true})
	assert.Error(t, err)
	err = ConfigureLogger(LoggerOptions{TelegramOutput: true, TelegramToken: "token"})
	assert.Error(t, err)
	assert.Error(t, ConfigureLogger(LoggerOptions{LogLevel: "loud"}))
}

func TestFuncs(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 75.0, Percentage(3, 4))
	assert.Equal(t, 50.0, Clamp(12, 50, 99.9))
	assert.Equal(t, 99.9, Clamp(120, 50, 99.9))
	assert.Equal(t, 0.0, Saturation(0, 0.3))
	assert.InDelta(t, 1.0, Saturation(100, 0.3), 1e-9)
}

func TestConfigureLoggerWritesToFile(t *testing.T) {
	defer Logger.SetOutput(os.Stderr)
	path := filepath.Join(t.TempDir(), "aobaccarat.log")

	assert.NoError(t, ConfigureLogger(LoggerOptions{LogFile: path, LogLevel: "info"}))
	Logger.Infoln("hand recorded")

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "INFO ")
	assert.Contains(t, string(content), "hand recorded")
}
