package jobs

import (
	"context"
	"time"

	"clubsync-backend/internal/logger"
)

// PurgeStaleRejectedEvents removes rejected bookings older than the
// configured retention window, freeing their slots from the listings.
func (jr *JobRunner) PurgeStaleRejectedEvents() {
	jr.runWithRecovery("PurgeStaleRejectedEvents", func() {
		ctx := context.Background()

		retention := jr.config.Scheduler.RejectedEventRetentionDays
		cutoff := time.Now().AddDate(0, 0, -retention).Format("2006-01-02")

		deleted, err := jr.store.EventRepository.DeleteRejectedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge rejected events", "error", err)
			return
		}
		logger.Info("Purged stale rejected events", "count", deleted, "cutoff", cutoff)
	})
}
