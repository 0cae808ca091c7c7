package service_test

import (
	"context"
	"errors"
	"testing"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"
	"clubsync-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRecruitmentFixture() (*MockRecruitmentRepo, *MockClubRepo, *MockStudentRepo, *MockEmailService, service.RecruitmentService) {
	recRepo := new(MockRecruitmentRepo)
	clubRepo := new(MockClubRepo)
	studRepo := new(MockStudentRepo)
	email := new(MockEmailService)
	svc := service.NewRecruitmentService(recRepo, clubRepo, studRepo, email)
	return recRepo, clubRepo, studRepo, email, svc
}

func TestRecruitmentService_Evaluate_Approve(t *testing.T) {
	recRepo, clubRepo, studRepo, email, svc := newRecruitmentFixture()
	ctx := context.Background()

	rec := &domain.Recruitment{
		ID: 1, ClubID: 7, ClubName: "Chess Club", Semester: "Spring 2025",
		Status:  domain.RecruitmentStatusOpen,
		Pending: []int64{100, 101}, Approved: []int64{}, Rejected: []int64{},
	}
	club := &domain.Club{ID: 7, CID: 42, Name: "Chess Club", Members: []int64{}}
	student := &domain.Student{ID: 3, UID: 100, Name: "Alice", Email: "alice@uni.edu",
		Clubs: []int64{}, PendingClubs: []int64{42}}

	recRepo.On("GetByClubSemester", ctx, int64(7), "Spring 2025").Return(rec, nil).Once()
	clubRepo.On("GetByID", ctx, int64(7)).Return(club, nil).Once()
	studRepo.On("GetByUID", ctx, int64(100)).Return(student, nil).Once()
	recRepo.On("SaveEvaluation", ctx, mock.MatchedBy(func(out *repository.EvaluationOutcome) bool {
		return out.RecruitmentChanged && out.StudentChanged && out.ClubChanged
	})).Return(nil).Once()
	email.On("SendDecisionNotification", ctx, "alice@uni.edu", "Alice", "Chess Club", "Spring 2025", domain.EvaluationApproved).Return(nil).Once()

	result, err := svc.Evaluate(ctx, 7, "Spring 2025", 100, domain.EvaluationApproved)
	assert.NoError(t, err)
	assert.True(t, result.MembershipChanged)

	// The applicant lives in exactly one list.
	assert.Equal(t, []int64{101}, rec.Pending)
	assert.Equal(t, []int64{100}, rec.Approved)
	assert.Empty(t, rec.Rejected)

	// Membership mirrored onto student and club.
	assert.Equal(t, []int64{42}, student.Clubs)
	assert.Empty(t, student.PendingClubs)
	assert.Equal(t, []int64{100}, club.Members)

	recRepo.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestRecruitmentService_Evaluate_RejectAfterApprove(t *testing.T) {
	recRepo, clubRepo, studRepo, email, svc := newRecruitmentFixture()
	ctx := context.Background()

	// U100 was previously approved into CID 42; the club reverses it.
	rec := &domain.Recruitment{
		ID: 1, ClubID: 7, Semester: "Spring 2025", Status: domain.RecruitmentStatusOpen,
		Pending: []int64{}, Approved: []int64{100}, Rejected: []int64{},
	}
	club := &domain.Club{ID: 7, CID: 42, Name: "Chess Club", Members: []int64{100}}
	student := &domain.Student{ID: 3, UID: 100, Name: "Alice", Email: "alice@uni.edu",
		Clubs: []int64{42}, PendingClubs: []int64{}}

	recRepo.On("GetByClubSemester", ctx, int64(7), "Spring 2025").Return(rec, nil).Once()
	clubRepo.On("GetByID", ctx, int64(7)).Return(club, nil).Once()
	studRepo.On("GetByUID", ctx, int64(100)).Return(student, nil).Once()
	recRepo.On("SaveEvaluation", ctx, mock.Anything).Return(nil).Once()
	email.On("SendDecisionNotification", ctx, "alice@uni.edu", "Alice", "Chess Club", "Spring 2025", domain.EvaluationRejected).Return(nil).Once()

	_, err := svc.Evaluate(ctx, 7, "Spring 2025", 100, domain.EvaluationRejected)
	assert.NoError(t, err)

	// Approval fully unwound: off the roster, off the student's clubs.
	assert.Equal(t, []int64{100}, rec.Rejected)
	assert.Empty(t, rec.Approved)
	assert.Empty(t, club.Members)
	assert.Empty(t, student.Clubs)
	assert.Empty(t, student.PendingClubs)

	recRepo.AssertExpectations(t)
}

func TestRecruitmentService_Evaluate_Idempotent(t *testing.T) {
	recRepo, clubRepo, studRepo, email, svc := newRecruitmentFixture()
	ctx := context.Background()

	// Everything already reflects the approved decision.
	rec := &domain.Recruitment{
		ID: 1, ClubID: 7, Semester: "Spring 2025", Status: domain.RecruitmentStatusOpen,
		Pending: []int64{}, Approved: []int64{100}, Rejected: []int64{},
	}
	club := &domain.Club{ID: 7, CID: 42, Name: "Chess Club", Members: []int64{100}}
	student := &domain.Student{ID: 3, UID: 100, Name: "Alice", Email: "alice@uni.edu",
		Clubs: []int64{42}, PendingClubs: []int64{}}

	recRepo.On("GetByClubSemester", ctx, int64(7), "Spring 2025").Return(rec, nil).Once()
	clubRepo.On("GetByID", ctx, int64(7)).Return(club, nil).Once()
	studRepo.On("GetByUID", ctx, int64(100)).Return(student, nil).Once()
	email.On("SendDecisionNotification", ctx, "alice@uni.edu", "Alice", "Chess Club", "Spring 2025", domain.EvaluationApproved).Return(nil).Once()

	result, err := svc.Evaluate(ctx, 7, "Spring 2025", 100, domain.EvaluationApproved)
	assert.NoError(t, err)
	assert.False(t, result.MembershipChanged)

	// No write happened: SaveEvaluation never set up, so any call
	// would have failed the mock.
	recRepo.AssertNotCalled(t, "SaveEvaluation", mock.Anything, mock.Anything)
}

func TestRecruitmentService_Evaluate_InvalidAction(t *testing.T) {
	recRepo, _, _, _, svc := newRecruitmentFixture()

	_, err := svc.Evaluate(context.Background(), 7, "Spring 2025", 100, "maybe")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	// Rejected before any record was read.
	recRepo.AssertNotCalled(t, "GetByClubSemester", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecruitmentService_Evaluate_RecruitmentMissing(t *testing.T) {
	recRepo, clubRepo, _, _, svc := newRecruitmentFixture()
	ctx := context.Background()

	recRepo.On("GetByClubSemester", ctx, int64(7), "Fall 2025").Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Evaluate(ctx, 7, "Fall 2025", 100, domain.EvaluationApproved)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "recruitment")
	clubRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRecruitmentService_Evaluate_EmailFailureIsNotFatal(t *testing.T) {
	recRepo, clubRepo, studRepo, email, svc := newRecruitmentFixture()
	ctx := context.Background()

	rec := &domain.Recruitment{
		ID: 1, ClubID: 7, Semester: "Spring 2025", Status: domain.RecruitmentStatusOpen,
		Pending: []int64{100}, Approved: []int64{}, Rejected: []int64{},
	}
	club := &domain.Club{ID: 7, CID: 42, Name: "Chess Club", Members: []int64{}}
	student := &domain.Student{ID: 3, UID: 100, Name: "Alice", Email: "alice@uni.edu",
		Clubs: []int64{}, PendingClubs: []int64{42}}

	recRepo.On("GetByClubSemester", ctx, int64(7), "Spring 2025").Return(rec, nil).Once()
	clubRepo.On("GetByID", ctx, int64(7)).Return(club, nil).Once()
	studRepo.On("GetByUID", ctx, int64(100)).Return(student, nil).Once()
	recRepo.On("SaveEvaluation", ctx, mock.Anything).Return(nil).Once()
	email.On("SendDecisionNotification", ctx, "alice@uni.edu", "Alice", "Chess Club", "Spring 2025", domain.EvaluationApproved).
		Return(errors.New("sendgrid down")).Once()

	_, err := svc.Evaluate(ctx, 7, "Spring 2025", 100, domain.EvaluationApproved)
	assert.NoError(t, err)
}

func TestRecruitmentService_Apply(t *testing.T) {
	recRepo, clubRepo, studRepo, _, svc := newRecruitmentFixture()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rec := &domain.Recruitment{
			ID: 5, ClubID: 7, Semester: "Spring 2025", Status: domain.RecruitmentStatusOpen,
			Pending: []int64{}, Approved: []int64{}, Rejected: []int64{},
		}
		student := &domain.Student{ID: 3, UID: 100, Clubs: []int64{}, PendingClubs: []int64{}}
		club := &domain.Club{ID: 7, CID: 42}

		recRepo.On("GetByID", ctx, int64(5)).Return(rec, nil).Once()
		studRepo.On("GetByUID", ctx, int64(100)).Return(student, nil).Once()
		clubRepo.On("GetByID", ctx, int64(7)).Return(club, nil).Once()
		recRepo.On("SaveApplication", ctx, rec, student).Return(nil).Once()
		recRepo.On("CountPendingApplications", ctx, int64(100)).Return(int64(3), nil).Once()

		count, err := svc.Apply(ctx, 5, 100)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.Equal(t, []int64{100}, rec.Pending)
		assert.Equal(t, []int64{42}, student.PendingClubs)
	})

	t.Run("DuplicateApplication", func(t *testing.T) {
		recRepo, _, studRepo, _, svc := newRecruitmentFixture()
		rec := &domain.Recruitment{
			ID: 5, ClubID: 7, Status: domain.RecruitmentStatusOpen,
			Pending: []int64{}, Approved: []int64{}, Rejected: []int64{100},
		}
		student := &domain.Student{ID: 3, UID: 100}

		recRepo.On("GetByID", ctx, int64(5)).Return(rec, nil).Once()
		studRepo.On("GetByUID", ctx, int64(100)).Return(student, nil).Once()

		_, err := svc.Apply(ctx, 5, 100)
		assert.ErrorIs(t, err, service.ErrAlreadyApplied)
		recRepo.AssertNotCalled(t, "SaveApplication", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ClosedDrive", func(t *testing.T) {
		rec := &domain.Recruitment{
			ID: 5, ClubID: 7, Status: domain.RecruitmentStatusClosed,
			Pending: []int64{}, Approved: []int64{}, Rejected: []int64{},
		}
		student := &domain.Student{ID: 3, UID: 100}

		recRepo.On("GetByID", ctx, int64(5)).Return(rec, nil).Once()
		studRepo.On("GetByUID", ctx, int64(100)).Return(student, nil).Once()

		_, err := svc.Apply(ctx, 5, 100)
		assert.ErrorIs(t, err, service.ErrRecruitmentClosed)
	})
}

func TestRecruitmentService_Start(t *testing.T) {
	recRepo, _, _, _, svc := newRecruitmentFixture()
	ctx := context.Background()

	t.Run("CreatesNewDrive", func(t *testing.T) {
		recRepo.On("GetByClubSemester", ctx, int64(7), "Fall 2025").Return(nil, repository.ErrNotFound).Once()
		recRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Recruitment) bool {
			return r.ClubID == 7 && r.Semester == "Fall 2025" && r.Status == domain.RecruitmentStatusOpen
		})).Return(nil).Once()

		rec, created, err := svc.Start(ctx, 7, "Chess Club", "Fall 2025", "2025-11-30", "join us")
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, domain.RecruitmentStatusOpen, rec.Status)
	})

	t.Run("ReopensExistingDrive", func(t *testing.T) {
		existing := &domain.Recruitment{
			ID: 9, ClubID: 7, Semester: "Fall 2025", Status: domain.RecruitmentStatusClosed,
			Pending: []int64{100}, Approved: []int64{}, Rejected: []int64{},
		}
		recRepo.On("GetByClubSemester", ctx, int64(7), "Fall 2025").Return(existing, nil).Once()
		recRepo.On("Update", ctx, existing).Return(nil).Once()

		rec, created, err := svc.Start(ctx, 7, "Chess Club", "Fall 2025", "", "reopened")
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, domain.RecruitmentStatusOpen, rec.Status)
		// Applicant lists survive the reopen.
		assert.Equal(t, []int64{100}, rec.Pending)
	})

	t.Run("MissingSemester", func(t *testing.T) {
		_, _, err := svc.Start(ctx, 7, "Chess Club", "", "", "")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestRecruitmentService_Applicants(t *testing.T) {
	recRepo, _, studRepo, _, svc := newRecruitmentFixture()
	ctx := context.Background()

	rec := &domain.Recruitment{
		ID: 1, ClubID: 7, Semester: "Spring 2025",
		Pending: []int64{101}, Approved: []int64{100}, Rejected: []int64{102},
	}
	recRepo.On("GetByClubSemester", ctx, int64(7), "Spring 2025").Return(rec, nil).Once()
	studRepo.On("ListByUIDs", ctx, []int64{101, 100, 102}).Return([]domain.Student{
		{UID: 100, Name: "Alice"},
		{UID: 101, Name: "Bob"},
		{UID: 102, Name: "Carol"},
	}, nil).Once()

	applicants, err := svc.Applicants(ctx, 7, "Spring 2025")
	assert.NoError(t, err)
	assert.Len(t, applicants, 3)

	byUID := map[int64]domain.EvaluationAction{}
	for _, a := range applicants {
		byUID[a.UID] = a.Status
	}
	assert.Equal(t, domain.EvaluationApproved, byUID[100])
	assert.Equal(t, domain.EvaluationPending, byUID[101])
	assert.Equal(t, domain.EvaluationRejected, byUID[102])
}
