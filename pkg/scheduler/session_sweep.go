package scheduler

import (
	"context"
	"time"

	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
)

const SessionSweepJobID = "session-sweep"

// ScheduleSessionSweep evicts sessions idle for longer than idle on the given cron schedule
func ScheduleSessionSweep(s JobScheduler, sessions services.SessionService, cronExpr string, idle time.Duration) error {
	return s.AddJob(SessionSweepJobID, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		evicted := sessions.Sweep(ctx, idle)
		if evicted > 0 {
			logger.Scheduler("session_sweep_done", "Idle sessions evicted", map[string]interface{}{
				"evicted": evicted,
				"idle":    idle.String(),
			})
		}
	})
}
