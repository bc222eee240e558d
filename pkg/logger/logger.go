package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of log messages.
type LogLevel int

// Log level constants defining message severity.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLogLevel converts a string log level to its LogLevel constant.
// Unknown names fall back to INFO.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Config describes where log lines go and how the file is rotated.
// An empty FilePath logs to stdout only.
type Config struct {
	FilePath   string
	Level      LogLevel
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns the rotation settings used when none are configured.
func DefaultConfig(filePath string) Config {
	return Config{FilePath: filePath, Level: INFO, MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28, Compress: true}
}

// Logger writes leveled lines to stdout and an optional rotating file.
type Logger struct {
	out    *log.Logger
	closer io.Closer
	level  LogLevel
	mu     sync.RWMutex
}

// New builds a logger from cfg. The log directory is created when missing.
func New(cfg Config) (*Logger, error) {
	return newWithConsole(cfg, os.Stdout)
}

func newWithConsole(cfg Config, console io.Writer) (*Logger, error) {
	l := &Logger{level: cfg.Level}
	writer := console

	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		l.closer = file
		writer = io.MultiWriter(console, file)
	}

	l.out = log.New(writer, "", log.LstdFlags|log.Lshortfile)
	return l, nil
}

// SetLevel changes the minimum log level for filtering messages.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Close releases the rotating file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// logf writes one line; depth is the number of frames between the caller of
// interest and this method.
func (l *Logger) logf(depth int, level LogLevel, format string, v ...interface{}) {
	if level < l.GetLevel() {
		return
	}
	l.out.Output(depth+1, "["+level.String()+"] "+fmt.Sprintf(format, v...))
}

// Debugf logs a formatted debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(2, DEBUG, format, v...) }

// Infof logs a formatted info-level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.logf(2, INFO, format, v...) }

// Warnf logs a formatted warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.logf(2, WARN, format, v...) }

// Errorf logs a formatted error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(2, ERROR, format, v...) }

// Fatalf logs a formatted fatal-level message and exits the program.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logf(2, FATAL, format, v...)
	os.Exit(1)
}

var (
	instance   *Logger
	instanceMu sync.RWMutex
)

// Init replaces the global logger. Lines logged before Init go to stdout at INFO.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	instanceMu.Lock()
	prev := instance
	instance = l
	instanceMu.Unlock()
	if prev != nil {
		prev.Close()
	}
	return nil
}

func global() *Logger {
	instanceMu.RLock()
	l := instance
	instanceMu.RUnlock()
	if l != nil {
		return l
	}

	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		instance, _ = newWithConsole(Config{Level: INFO}, os.Stdout)
	}
	return instance
}

// Debugf logs a formatted debug-level message using the global logger instance.
func Debugf(format string, v ...interface{}) { global().logf(3, DEBUG, format, v...) }

// Infof logs a formatted info-level message using the global logger instance.
func Infof(format string, v ...interface{}) { global().logf(3, INFO, format, v...) }

// Warnf logs a formatted warning-level message using the global logger instance.
func Warnf(format string, v ...interface{}) { global().logf(3, WARN, format, v...) }

// Errorf logs a formatted error-level message using the global logger instance.
func Errorf(format string, v ...interface{}) { global().logf(3, ERROR, format, v...) }

// Fatalf logs a formatted fatal-level message and exits the program.
func Fatalf(format string, v ...interface{}) {
	global().logf(3, FATAL, format, v...)
	os.Exit(1)
}

// SetLevel changes the minimum log level for the global logger instance.
func SetLevel(level LogLevel) {
	global().SetLevel(level)
}

// GetLevel returns the current minimum log level of the global logger instance.
func GetLevel() LogLevel {
	return global().GetLevel()
}
