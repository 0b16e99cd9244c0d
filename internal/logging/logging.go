// Package logging builds the root logrus entry handed to every citygraph component.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// AppName is attached to every entry as the "app" field.
const AppName = "citygraph"

// Options controls logger construction.
type Options struct {
	// Out receives log lines; nil means os.Stderr.
	Out io.Writer

	// Level is parsed with logrus.ParseLevel; empty means warn.
	Level string

	// JSON switches from the text formatter to the JSON formatter.
	JSON bool
}

// New returns the root entry with the app field set.
func New(opts Options) (*logrus.Entry, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	level := logrus.WarnLevel
	if opts.Level != "" {
		lvl, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	root := logrus.New()
	root.SetOutput(out)
	root.SetLevel(level)
	if opts.JSON {
		root.SetFormatter(&logrus.JSONFormatter{})
	} else {
		root.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return root.WithField("app", AppName), nil
}
