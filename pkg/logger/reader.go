package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	defaultReadLines = 100
	maxReadLines     = 1000
)

// ReadLogsOptions options for reading logs
type ReadLogsOptions struct {
	Category Category // empty = all
	Level    Level    // empty = all
	Lines    int
	Search   string // matched against message, action and error
	Date     time.Time
}

// ReadLogs reads log entries from the default logger's files
func ReadLogs(opts ReadLogsOptions) ([]LogEntry, error) {
	return Default().ReadLogs(opts)
}

// ReadLogs returns the newest matching entries of one day, newest first
func (l *Logger) ReadLogs(opts ReadLogsOptions) ([]LogEntry, error) {
	if l.logDir == "" {
		return []LogEntry{}, nil
	}
	if opts.Lines <= 0 {
		opts.Lines = defaultReadLines
	}
	if opts.Lines > maxReadLines {
		opts.Lines = maxReadLines
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}

	categories := AllCategories
	if opts.Category != "" {
		categories = []Category{opts.Category}
	}
	search := strings.ToLower(opts.Search)

	entries := []LogEntry{}
	for _, cat := range categories {
		file, err := os.Open(filepath.Join(l.logDir, fileName(cat, opts.Date)))
		if err != nil {
			continue
		}

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			var entry LogEntry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			if opts.Level != "" && entry.Level != opts.Level {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(entry.Message), search) &&
				!strings.Contains(strings.ToLower(entry.Action), search) &&
				!strings.Contains(strings.ToLower(entry.Error), search) {
				continue
			}
			entries = append(entries, entry)
		}
		file.Close()
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	if len(entries) > opts.Lines {
		entries = entries[:opts.Lines]
	}
	return entries, nil
}

// ListLogFiles returns list of log files
func ListLogFiles() ([]string, error) {
	return Default().ListLogFiles()
}

// ListLogFiles returns the .log files in the log directory
func (l *Logger) ListLogFiles() ([]string, error) {
	files := []string{}
	if l.logDir == "" {
		return files, nil
	}

	entries, err := os.ReadDir(l.logDir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".log" {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
