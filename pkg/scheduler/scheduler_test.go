package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRemoveJob(t *testing.T) {
	s := NewJobScheduler()

	require.NoError(t, s.AddJob("sweep", "*/5 * * * *", func() {}))
	assert.Error(t, s.AddJob("sweep", "*/5 * * * *", func() {}), "duplicate id")

	info, ok := s.GetJob("sweep")
	require.True(t, ok)
	assert.Equal(t, "*/5 * * * *", info.CronExpr)
	assert.Equal(t, 0, info.Runs)
	assert.Nil(t, info.LastRun)

	assert.Len(t, s.ListJobs(), 1)

	require.NoError(t, s.RemoveJob("sweep"))
	_, ok = s.GetJob("sweep")
	assert.False(t, ok)
	assert.Error(t, s.RemoveJob("sweep"))
}

func TestInvalidCronExpression(t *testing.T) {
	s := NewJobScheduler()
	assert.Error(t, s.AddJob("bad", "not a cron", func() {}))
}

func TestStartStop(t *testing.T) {
	s := NewJobScheduler()
	assert.False(t, s.IsRunning())
	s.Start()
	assert.True(t, s.IsRunning())
	s.Stop()
	assert.False(t, s.IsRunning())
}
