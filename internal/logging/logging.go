package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "tmux-ui.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogPath()
	logger       = newLogger(nil)
)

// Options controls where and how log entries are written.
type Options struct {
	FilePath string
	Level    string
	Trace    bool
}

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	if out == nil {
		out = io.Discard
	}
	l.SetOutput(out)
	return l
}

// Configure sets the log destination, level and trace flag. Empty paths fall
// back to the default location. Directories are created automatically when
// missing. Standard output is never used: it belongs to the terminal UI.
func Configure(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	path := strings.TrimSpace(opts.FilePath)
	if path == "" {
		path = defaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = defaultLogFile
	}
	logPath = path
	logger = newLogger(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     14,
	})
	logger.SetLevel(level)
	traceEnabled = opts.Trace
	return nil
}

// ParseLevel maps a textual level to logrus, defaulting to info.
func ParseLevel(value string) (logrus.Level, error) {
	if strings.TrimSpace(value) == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(strings.TrimSpace(value))
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q", value)
	}
	return level, nil
}

// Path reports the active log file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// SetOutput redirects all entries to w. Tests use it to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
	logger.SetLevel(logrus.DebugLevel)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

func current() (*logrus.Logger, bool) {
	mu.Lock()
	defer mu.Unlock()
	return logger, traceEnabled
}

// Error records err at error level.
func Error(err error) {
	if err == nil {
		return
	}
	l, _ := current()
	l.WithError(err).Error("error")
}

// Warn records a warning with optional structured fields.
func Warn(msg string, fields map[string]interface{}) {
	l, _ := current()
	l.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Trace appends a structured entry when tracing is enabled.
func Trace(event string, payload interface{}) {
	l, enabled := current()
	if !enabled {
		return
	}
	entry := l.WithField("event", event)
	if payload != nil {
		entry = entry.WithField("payload", payload)
	}
	entry.Info("trace")
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return defaultLogFile
	}
	return filepath.Join(dir, "tmux-ui", defaultLogFile)
}
