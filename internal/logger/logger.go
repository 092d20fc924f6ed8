package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init is called; Init
// only reconfigures it.
var Log = logrus.New()

// Options controls Init.
type Options struct {
	Level  string    // logrus level name; "info" if empty or invalid
	Format string    // "json" or "text"
	Output io.Writer // defaults to stdout
}

// Init configures Log. LOG_LEVEL and LOG_FORMAT from the environment take
// precedence over opts.
func Init(opts Options) {
	level := opts.Level
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = env
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	format := opts.Format
	if env, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = env
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}

// OpenFile returns a writer for path suitable for Options.Output. An empty
// path discards all output, which is what the terminal front-end wants when
// no log file is configured.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
