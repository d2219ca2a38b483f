package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestLoggerWritesAndReadsBack(t *testing.T) {
	l, err := NewLogger(t.TempDir(), false, LevelDebug)
	require.NoError(t, err)
	defer l.Close()

	l.Log(LogEntry{Level: LevelInfo, Category: CategorySearch, Action: "execute", Message: "search completed"})
	l.Log(LogEntry{Level: LevelError, Category: CategoryPeople, Action: "load", Message: "load failed", Error: errors.New("connection refused").Error()})
	l.Log(LogEntry{Level: LevelInfo, Category: CategoryPeople, Action: "load", Message: "people loaded"})

	all, err := l.ReadLogs(ReadLogsOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	people, err := l.ReadLogs(ReadLogsOptions{Category: CategoryPeople})
	require.NoError(t, err)
	assert.Len(t, people, 2)

	errs, err := l.ReadLogs(ReadLogsOptions{Level: LevelError})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "load failed", errs[0].Message)

	found, err := l.ReadLogs(ReadLogsOptions{Search: "REFUSED"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	limited, err := l.ReadLogs(ReadLogsOptions{Lines: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	files, err := l.ListLogFiles()
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestLoggerMinLevelFilters(t *testing.T) {
	l, err := NewLogger("", true, LevelWarn)
	require.NoError(t, err)
	var buf bytes.Buffer
	l.out = &buf

	l.Log(LogEntry{Level: LevelInfo, Category: CategoryAPI, Action: "request", Message: "dropped"})
	assert.Empty(t, buf.String())

	l.Log(LogEntry{Level: LevelWarn, Category: CategoryAPI, Action: "request", Message: "kept", SessionID: "abc"})
	assert.Contains(t, buf.String(), "kept")
	assert.Contains(t, buf.String(), "(session: abc)")
}

func TestConsoleOnlyLoggerHasNoFiles(t *testing.T) {
	l, err := NewLogger("", false, LevelDebug)
	require.NoError(t, err)

	l.Log(LogEntry{Level: LevelInfo, Category: CategoryAPI, Action: "noop", Message: "nothing"})

	entries, err := l.ReadLogs(ReadLogsOptions{})
	require.NoError(t, err)
	assert.Empty(t, entries)

	files, err := l.ListLogFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
}
