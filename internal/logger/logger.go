package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

type LogLevel = log.Level

var std = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "kanarank",
	ReportTimestamp: true,
	Level:           log.InfoLevel,
})

// Init sets the level and optionally tees the output into logfilePath.
func Init(logfilePath string, levelStr string) error {
	switch strings.ToLower(levelStr) {
	case "none":
		// above every level used here
		std.SetLevel(log.FatalLevel)
	default:
		lvl, err := log.ParseLevel(strings.ToLower(levelStr))
		if err != nil {
			lvl = log.InfoLevel
		}
		std.SetLevel(lvl)
	}

	if logfilePath != "" {
		dir := filepath.Dir(logfilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(logfilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		std.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		std.SetOutput(os.Stderr)
	}
	return nil
}

// SetOutput redirects the log, e.g. away from the terminal while the TUI owns it.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Level() LogLevel {
	return std.GetLevel()
}

func Debug(msg string, args ...any) {
	std.Debugf(msg, args...)
}

func Info(msg string, args ...any) {
	std.Infof(msg, args...)
}

func Warn(msg string, args ...any) {
	std.Warnf(msg, args...)
}

func Error(msg string, args ...any) {
	std.Errorf(msg, args...)
}
