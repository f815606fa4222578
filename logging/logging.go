// Package logging hands out prefixed structured loggers that share one level.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

var level = log.InfoLevel

var loggers []*log.Logger

// New returns a logger tagged with prefix, writing to stderr.
func New(prefix string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	loggers = append(loggers, l)
	return l
}

// SetLevel parses name ("debug", "info", "warn", "error") and applies it to
// every logger handed out so far and to later ones.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	level = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
	return nil
}
