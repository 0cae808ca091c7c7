package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"
	"clubsync-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRecruitmentRepository_SaveEvaluation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRecruitmentRepository(db)
	ctx := context.Background()

	outcome := func() *repository.EvaluationOutcome {
		return &repository.EvaluationOutcome{
			Recruitment: &domain.Recruitment{ID: 1, Pending: []int64{}, Approved: []int64{100}, Rejected: []int64{}},
			Student:     &domain.Student{ID: 5, UID: 100, Clubs: []int64{42}, PendingClubs: []int64{}},
			Club:        &domain.Club{ID: 9, CID: 42, Members: []int64{100}},
		}
	}

	t.Run("WritesAllChangedRecords", func(t *testing.T) {
		out := outcome()
		out.RecruitmentChanged = true
		out.StudentChanged = true
		out.ClubChanged = true

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE recruitments SET pending_std").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE students SET clubs").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE clubs SET cmembers").
			WithArgs(sqlmock.AnyArg(), int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SaveEvaluation(ctx, out)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SkipsUnchangedRecords", func(t *testing.T) {
		out := outcome()
		out.RecruitmentChanged = true

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE recruitments SET pending_std").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SaveEvaluation(ctx, out)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoChangesSkipsTransaction", func(t *testing.T) {
		err := repo.SaveEvaluation(ctx, outcome())
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnFailure", func(t *testing.T) {
		out := outcome()
		out.RecruitmentChanged = true
		out.StudentChanged = true

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE recruitments SET pending_std").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE students SET clubs").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(5)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.SaveEvaluation(ctx, out)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "student memberships")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecruitmentRepository_SaveApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRecruitmentRepository(db)
	ctx := context.Background()

	rec := &domain.Recruitment{ID: 1, Pending: []int64{100}}
	student := &domain.Student{ID: 5, UID: 100, PendingClubs: []int64{42}}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE recruitments SET pending_std").
		WithArgs(sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE students SET pen_clubs").
		WithArgs(sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.SaveApplication(ctx, rec, student)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecruitmentRepository_CountPendingApplications(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRecruitmentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM recruitments").
		WithArgs(int64(100)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountPendingApplications(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRecruitmentRepository_CloseExpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRecruitmentRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "club_id", "club_name", "semester", "status", "application_deadline", "description", "pending_std", "approved_std", "rejected_std", "created_on", "updated_on"}).
		AddRow(1, 9, "Chess Club", "Spring 2025", "no", now, "Join us", "{100,101}", "{}", "{}", now, now)

	mock.ExpectQuery("UPDATE recruitments SET status='no'").
		WillReturnRows(rows)

	closed, err := repo.CloseExpired(ctx)
	assert.NoError(t, err)
	assert.Len(t, closed, 1)
	assert.Equal(t, domain.RecruitmentStatusClosed, closed[0].Status)
	assert.Equal(t, []int64{100, 101}, closed[0].Pending)
}

func TestRecruitmentRepository_SetStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRecruitmentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE recruitments SET status").
			WithArgs(domain.RecruitmentStatusClosed, int64(9), "Spring 2025").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetStatus(ctx, 9, "Spring 2025", domain.RecruitmentStatusClosed)
		assert.NoError(t, err)
	})

	t.Run("UnknownDrive", func(t *testing.T) {
		mock.ExpectExec("UPDATE recruitments SET status").
			WithArgs(domain.RecruitmentStatusClosed, int64(9), "Fall 1999").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetStatus(ctx, 9, "Fall 1999", domain.RecruitmentStatusClosed)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRecruitmentRepository_GetByClubSemester(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRecruitmentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "club_id", "club_name", "semester", "status", "application_deadline", "description", "pending_std", "approved_std", "rejected_std", "created_on", "updated_on"}).
			AddRow(1, 9, "Chess Club", "Spring 2025", "yes", nil, "Join us", nil, nil, nil, now, now)

		mock.ExpectQuery("SELECT (.+) FROM recruitments WHERE club_id = \\$1 AND semester = \\$2").
			WithArgs(int64(9), "Spring 2025").
			WillReturnRows(rows)

		rec, err := repo.GetByClubSemester(ctx, 9, "Spring 2025")
		assert.NoError(t, err)
		assert.Equal(t, domain.RecruitmentStatusOpen, rec.Status)
		assert.Nil(t, rec.ApplicationDeadline)
		// nil arrays come back as empty slices so callers can append safely
		assert.Equal(t, []int64{}, rec.Pending)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM recruitments WHERE club_id = \\$1 AND semester = \\$2").
			WithArgs(int64(9), "Winter 2099").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByClubSemester(ctx, 9, "Winter 2099")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
