package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/logger"
	"clubsync-backend/internal/repository"
)

type recruitmentService struct {
	recRepo     repository.RecruitmentRepository
	clubRepo    repository.ClubRepository
	studentRepo repository.StudentRepository
	email       EmailService
}

func NewRecruitmentService(recRepo repository.RecruitmentRepository, clubRepo repository.ClubRepository, studentRepo repository.StudentRepository, email EmailService) RecruitmentService {
	return &recruitmentService{
		recRepo:     recRepo,
		clubRepo:    clubRepo,
		studentRepo: studentRepo,
		email:       email,
	}
}

func (s *recruitmentService) Start(ctx context.Context, clubID int64, clubName, semester, deadline, description string) (*domain.Recruitment, bool, error) {
	if semester == "" {
		return nil, false, fmt.Errorf("%w: semester is required", ErrInvalidInput)
	}

	var deadlinePtr *string
	if deadline != "" {
		deadlinePtr = &deadline
	}

	// Reopen and refresh the existing drive when one exists for the
	// (club, semester) pair; applicant lists are kept as-is.
	existing, err := s.recRepo.GetByClubSemester(ctx, clubID, semester)
	if err == nil {
		existing.Status = domain.RecruitmentStatusOpen
		existing.ApplicationDeadline = deadlinePtr
		existing.Description = description
		if clubName != "" {
			existing.ClubName = clubName
		}
		if err := s.recRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	rec := &domain.Recruitment{
		ClubID:              clubID,
		ClubName:            clubName,
		Semester:            semester,
		Status:              domain.RecruitmentStatusOpen,
		ApplicationDeadline: deadlinePtr,
		Description:         description,
		Pending:             []int64{},
		Approved:            []int64{},
		Rejected:            []int64{},
	}
	if err := s.recRepo.Create(ctx, rec); err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

func (s *recruitmentService) Stop(ctx context.Context, clubID int64, semester string) error {
	return s.recRepo.SetStatus(ctx, clubID, semester, domain.RecruitmentStatusClosed)
}

func (s *recruitmentService) ListByClub(ctx context.Context, clubID int64) ([]domain.Recruitment, error) {
	return s.recRepo.ListByClub(ctx, clubID)
}

func (s *recruitmentService) ListActive(ctx context.Context) ([]domain.ActiveRecruitment, error) {
	return s.recRepo.ListActive(ctx)
}

func (s *recruitmentService) Applicants(ctx context.Context, clubID int64, semester string) ([]domain.Applicant, error) {
	rec, err := s.recRepo.GetByClubSemester(ctx, clubID, semester)
	if err != nil {
		return nil, fmt.Errorf("recruitment record: %w", err)
	}

	uids := make([]int64, 0, len(rec.Pending)+len(rec.Approved)+len(rec.Rejected))
	uids = append(uids, rec.Pending...)
	uids = append(uids, rec.Approved...)
	uids = append(uids, rec.Rejected...)
	if len(uids) == 0 {
		return []domain.Applicant{}, nil
	}

	students, err := s.studentRepo.ListByUIDs(ctx, uids)
	if err != nil {
		return nil, err
	}

	applicants := make([]domain.Applicant, 0, len(students))
	for _, st := range students {
		applicants = append(applicants, domain.Applicant{
			UID:      st.UID,
			Name:     st.Name,
			Email:    st.Email,
			Mobile:   st.Mobile,
			Gender:   st.Gender,
			Major:    st.Major,
			Semester: st.Semester,
			Status:   rec.StatusOf(st.UID),
		})
	}
	sort.Slice(applicants, func(i, j int) bool { return applicants[i].UID < applicants[j].UID })
	return applicants, nil
}

func (s *recruitmentService) Evaluate(ctx context.Context, clubID int64, semester string, uid int64, action domain.EvaluationAction) (*EvaluationResult, error) {
	logger.EnterMethod("recruitmentService.Evaluate", "clubID", clubID, "semester", semester, "uid", uid, "action", action)

	// 1. Refuse unknown actions before any record is read.
	if !action.Valid() {
		return nil, fmt.Errorf("%w: action must be approved, rejected or pending", ErrInvalidInput)
	}

	// 2. Load the drive, the club and the student. The drive is checked
	// first so that its not-found error wins.
	rec, err := s.recRepo.GetByClubSemester(ctx, clubID, semester)
	if err != nil {
		return nil, fmt.Errorf("recruitment record: %w", err)
	}
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("club record: %w", err)
	}
	student, err := s.studentRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("student record: %w", err)
	}

	// 3. Re-slot the applicant in the drive's lists and mirror the
	// decision onto the student and the club roster.
	out := &repository.EvaluationOutcome{
		Recruitment: rec,
		Student:     student,
		Club:        club,
	}
	out.RecruitmentChanged = rec.SetApplicantStatus(uid, action)
	out.StudentChanged = student.ApplyDecision(club.CID, action)
	out.ClubChanged = club.SetMember(uid, action == domain.EvaluationApproved)

	// 4. Persist only what changed, all in one transaction. A repeated
	// decision touches nothing.
	if out.Changed() {
		if err := s.recRepo.SaveEvaluation(ctx, out); err != nil {
			logger.ExitMethodWithError("recruitmentService.Evaluate", err, "uid", uid)
			return nil, fmt.Errorf("saving evaluation: %w", err)
		}
	}

	// 5. Notify the student of a final decision. Best effort only.
	if action != domain.EvaluationPending && s.email != nil {
		if err := s.email.SendDecisionNotification(ctx, student.Email, student.Name, club.Name, semester, action); err != nil {
			logger.WarnContext(ctx, "decision notification failed", "uid", uid, "club", club.Name, "error", err)
		}
	}

	logger.ExitMethod("recruitmentService.Evaluate", "uid", uid, "action", action, "changed", out.Changed())
	return &EvaluationResult{
		UID:               uid,
		Action:            action,
		MembershipChanged: out.ClubChanged,
	}, nil
}

func (s *recruitmentService) Apply(ctx context.Context, recruitmentID, uid int64) (int64, error) {
	// 1. Load the drive and the student.
	rec, err := s.recRepo.GetByID(ctx, recruitmentID)
	if err != nil {
		return 0, fmt.Errorf("recruitment record: %w", err)
	}
	student, err := s.studentRepo.GetByUID(ctx, uid)
	if err != nil {
		return 0, fmt.Errorf("student record: %w", err)
	}

	// 2. A UID already on any of the three lists may not apply again.
	if rec.HasApplicant(uid) {
		return 0, ErrAlreadyApplied
	}
	if rec.Status != domain.RecruitmentStatusOpen {
		return 0, ErrRecruitmentClosed
	}

	// 3. Append to the drive's pending list and mirror the club CID
	// onto the student's pending applications, in one transaction.
	club, err := s.clubRepo.GetByID(ctx, rec.ClubID)
	if err != nil {
		return 0, fmt.Errorf("club record: %w", err)
	}
	rec.Pending = append(rec.Pending, uid)
	student.PendingClubs, _ = appendUnique(student.PendingClubs, club.CID)
	if err := s.recRepo.SaveApplication(ctx, rec, student); err != nil {
		return 0, fmt.Errorf("saving application: %w", err)
	}

	return s.recRepo.CountPendingApplications(ctx, uid)
}

func appendUnique(ids []int64, id int64) ([]int64, bool) {
	for _, v := range ids {
		if v == id {
			return ids, false
		}
	}
	return append(ids, id), true
}
