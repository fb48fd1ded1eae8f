// Package logger builds component-scoped loggers on top of logrus.
package logger

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// prefixFormatter prints a colored [PREFIX] tag ahead of logrus' text output.
type prefixFormatter struct {
	tag   []byte
	inner logrus.Formatter
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	line, err := f.inner.Format(entry)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(f.tag)+len(line))
	out = append(out, f.tag...)
	return append(out, line...), nil
}

// New creates a logger writing to out whose lines start with [prefix] in the
// given ANSI color. An empty color disables coloring.
func New(prefix, color string, out io.Writer) (*logrus.Entry, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	tag := "[" + prefix + "] "
	if color != "" {
		tag = color + "[" + prefix + "]" + colorReset + " "
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&prefixFormatter{
		tag: []byte(tag),
		inner: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006/01/02 15:04:05",
			DisableColors:   true,
		},
	})

	return l.WithField("component", prefix), nil
}

// SetLevel parses level and applies it to the logger behind entry.
// Unknown levels leave the logger unchanged and return the parse error.
func SetLevel(entry *logrus.Entry, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	entry.Logger.SetLevel(lvl)
	return nil
}
