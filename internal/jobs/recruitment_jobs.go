package jobs

import (
	"context"

	"clubsync-backend/internal/logger"
)

// CloseExpiredRecruitments flips open drives whose application deadline
// has passed to closed, then tells still-pending applicants the drive
// is over.
func (jr *JobRunner) CloseExpiredRecruitments() {
	jr.runWithRecovery("CloseExpiredRecruitments", func() {
		ctx := context.Background()

		closed, err := jr.store.RecruitmentRepository.CloseExpired(ctx)
		if err != nil {
			logger.Error("Failed to close expired recruitments", "error", err)
			return
		}
		logger.Info("Closed expired recruitments", "count", len(closed))

		for _, rec := range closed {
			if len(rec.Pending) == 0 {
				continue
			}
			students, err := jr.store.StudentRepository.ListByUIDs(ctx, rec.Pending)
			if err != nil {
				logger.Error("Failed to load pending applicants", "recruitment_id", rec.ID, "error", err)
				continue
			}
			for _, st := range students {
				if err := jr.services.Email.SendRecruitmentClosedNotification(ctx, st.Email, st.Name, rec.ClubName, rec.Semester); err != nil {
					logger.Warn("Failed to send closure notification", "uid", st.UID, "recruitment_id", rec.ID, "error", err)
				}
			}
		}
	})
}
