package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Category represents a log category; each one gets its own daily file
type Category string

const (
	CategoryAPI       Category = "api"
	CategorySearch    Category = "search"
	CategoryPeople    Category = "people"
	CategoryIdentity  Category = "identity"
	CategoryDataset   Category = "dataset"
	CategorySession   Category = "session"
	CategoryWebSocket Category = "websocket"
	CategoryScheduler Category = "scheduler"
	CategoryStartup   Category = "startup"
)

// AllCategories lists every category in file-read order
var AllCategories = []Category{
	CategoryAPI, CategorySearch, CategoryPeople, CategoryIdentity, CategoryDataset,
	CategorySession, CategoryWebSocket, CategoryScheduler, CategoryStartup,
}

// Level represents log level
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel maps a config string to a Level, defaulting to INFO
func ParseLevel(s string) Level {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelDebug:
		return LevelDebug
	case LevelWarn:
		return LevelWarn
	case LevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

// LogEntry represents a structured log entry
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     Level                  `json:"level"`
	Category  Category               `json:"category"`
	Action    string                 `json:"action"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	SessionID string                 `json:"session_id,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Duration  string                 `json:"duration,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Logger writes JSON lines per category and optionally a colored console line.
// A Logger with an empty logDir writes to the console only.
type Logger struct {
	mu       sync.Mutex
	logDir   string
	writers  map[Category]*os.File
	console  bool
	minLevel Level
	out      io.Writer
}

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Init installs the default logger
func Init(logDir string, console bool, minLevel Level) error {
	l, err := NewLogger(logDir, console, minLevel)
	if err != nil {
		return err
	}

	defaultMu.Lock()
	old := defaultLogger
	defaultLogger = l
	defaultMu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

// NewLogger creates a new logger
func NewLogger(logDir string, console bool, minLevel Level) (*Logger, error) {
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	if minLevel == "" {
		minLevel = LevelDebug
	}

	return &Logger{
		logDir:   logDir,
		writers:  make(map[Category]*os.File),
		console:  console,
		minLevel: minLevel,
		out:      os.Stdout,
	}, nil
}

func fileName(category Category, day time.Time) string {
	return fmt.Sprintf("%s_%s.log", category, day.Format("2006-01-02"))
}

// getWriter returns or creates today's file writer for the category
func (l *Logger) getWriter(category Category) (io.Writer, error) {
	name := fileName(category, time.Now())

	if writer, exists := l.writers[category]; exists {
		if filepath.Base(writer.Name()) == name {
			return writer, nil
		}
		writer.Close()
	}

	file, err := os.OpenFile(filepath.Join(l.logDir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l.writers[category] = file
	return file, nil
}

// Log writes a log entry
func (l *Logger) Log(entry LogEntry) {
	if levelRank[entry.Level] < levelRank[l.minLevel] {
		return
	}
	entry.Timestamp = time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logDir != "" {
		jsonData, err := json.Marshal(entry)
		if err != nil {
			fmt.Fprintf(l.out, "Error marshaling log entry: %v\n", err)
			return
		}

		writer, err := l.getWriter(entry.Category)
		if err != nil {
			fmt.Fprintf(l.out, "Error getting log writer: %v\n", err)
		} else {
			fmt.Fprintln(writer, string(jsonData))
		}
	}

	if l.console {
		l.printToConsole(entry)
	}
}

var levelColors = map[Level]string{
	LevelDebug: "\033[36m",
	LevelInfo:  "\033[32m",
	LevelWarn:  "\033[33m",
	LevelError: "\033[31m",
}

// printToConsole prints a formatted line; caller holds l.mu
func (l *Logger) printToConsole(entry LogEntry) {
	const reset = "\033[0m"

	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]%s [%s] [%s] %s: %s",
		levelColors[entry.Level],
		entry.Level,
		reset,
		entry.Timestamp.Format("15:04:05.000"),
		entry.Category,
		entry.Action,
		entry.Message,
	)

	if entry.SessionID != "" {
		fmt.Fprintf(&b, " (session: %s)", entry.SessionID)
	}
	if entry.Duration != "" {
		fmt.Fprintf(&b, " (duration: %s)", entry.Duration)
	}
	if entry.Error != "" {
		fmt.Fprintf(&b, " ERROR: %s", entry.Error)
	}
	b.WriteByte('\n')

	if len(entry.Data) > 0 {
		dataJSON, _ := json.MarshalIndent(entry.Data, "    ", "  ")
		fmt.Fprintf(&b, "    Data: %s\n", dataJSON)
	}

	io.WriteString(l.out, b.String())
}

// Close closes all file writers
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, writer := range l.writers {
		writer.Close()
	}
	l.writers = make(map[Category]*os.File)
}

// Default returns the default logger. Before Init it is a console-only logger.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger, _ = NewLogger("", true, LevelInfo)
	}
	return defaultLogger
}

// GetLogDir returns the log directory path
func GetLogDir() string {
	return Default().logDir
}
