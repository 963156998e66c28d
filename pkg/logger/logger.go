// Package logger содержит настройку логгера.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DisabledPath отключает запись логов в файл
const DisabledPath = "-"

// Config описывает параметры логгера
type Config struct {
	Level      string
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
}

// New создает новый логгер: консоль (stderr) и JSON-файл с ротацией
func New(cfg Config) *zap.Logger {
	return newWithConsole(cfg, os.Stderr)
}

func newWithConsole(cfg Config, console io.Writer) *zap.Logger {
	level := ParseLevel(cfg.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	// Консольный вывод не должен мешать интерактивным вопросам в stdout
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(console),
			level,
		),
	}

	if logPath := resolvePath(cfg.FilePath); logPath != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   logPath,
				MaxSize:    orDefault(cfg.MaxSize, 100),
				MaxBackups: orDefault(cfg.MaxBackups, 3),
				MaxAge:     orDefault(cfg.MaxAge, 28),
				Compress:   true,
			}),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// ParseLevel переводит строку уровня в zapcore.Level, по умолчанию info
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// resolvePath возвращает путь к файлу логов или пустую строку, если файл отключен
func resolvePath(path string) string {
	if path == DisabledPath {
		return ""
	}
	if path == "" {
		path = filepath.Join("logs", "playlistdl.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		// Если каталог создать нельзя, пишем только в консоль
		return ""
	}
	return path
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
