package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Params struct {
	Level  string
	File   string
	JSON   bool
	Stdout bool
}

// Setup configures the standard logrus logger and returns a closer for the
// rotating file, if one was opened.
func Setup(params Params) (io.Closer, error) {
	if params.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(GetLevel(params.Level))

	if params.File == "" {
		if params.Stdout {
			logrus.SetOutput(os.Stdout)
		} else {
			logrus.SetOutput(os.Stderr)
		}
		return nopCloser{}, nil
	}

	if !strings.HasSuffix(params.File, ".log") {
		params.File += ".log"
	}
	if err := os.MkdirAll(filepath.Dir(params.File), 0o755); err != nil {
		return nil, err
	}
	rotating := &lumberjack.Logger{
		Filename:   params.File,
		MaxSize:    20, // megabytes
		MaxBackups: 5,
		Compress:   true,
	}
	if params.Stdout {
		logrus.SetOutput(NewCombinedWriter(os.Stdout, rotating))
	} else {
		logrus.SetOutput(rotating)
	}
	return rotating, nil
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// CombinedWriter writes to every writer and reports all failures together.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
