// Package logging owns the process logger shared by the adapters and the CLI.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Options configures the shared logger.
type Options struct {
	Level        string // debug, info, warn, error
	DisableColor bool
	HideTime     bool
	Output       io.Writer // defaults to os.Stderr
}

var (
	once   sync.Once
	logger *logrus.Logger
)

// Logger returns the shared logger, initialized with defaults on first use.
func Logger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})
	return logger
}

// Init applies opts to the shared logger. An unknown level leaves the logger
// untouched.
func Init(opts Options) (*logrus.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	l := Logger()
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    opts.DisableColor,
		DisableTimestamp: opts.HideTime,
		FullTimestamp:    !opts.HideTime,
	})
	return l, nil
}

// ParseLevel maps a level name to a logrus level; an empty name means info.
func ParseLevel(raw string) (logrus.Level, error) {
	if raw == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(raw)
}
