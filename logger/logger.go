package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger
// Discards output until Init is called so packages can log unconditionally
var Log = newLogger(io.Discard)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init configures Log to write to out
// LOG_LEVEL selects the level (default info); LOG_FORMAT=json switches to JSON lines
func Init(out io.Writer) {
	l := newLogger(out)

	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if level, err := logrus.ParseLevel(lvl); err == nil {
			l.SetLevel(level)
		}
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		// Log files are read after the fact; no color codes
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	Log = l
}

// System returns an entry tagged with the emitting system name
func System(name string) *logrus.Entry {
	return Log.WithField("system", name)
}
