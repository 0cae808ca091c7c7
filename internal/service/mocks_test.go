package service_test

import (
	"context"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockStudentRepo
type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStudentRepo) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentRepo) GetByUID(ctx context.Context, uid int64) (*domain.Student, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentRepo) Update(ctx context.Context, s *domain.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStudentRepo) UpdateProfile(ctx context.Context, id int64, upd *domain.StudentUpdate) (*domain.Student, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentRepo) ListByUIDs(ctx context.Context, uids []int64) ([]domain.Student, error) {
	args := m.Called(ctx, uids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}
func (m *MockStudentRepo) SearchByUIDs(ctx context.Context, uids []int64, query string) ([]domain.Student, error) {
	args := m.Called(ctx, uids, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}
func (m *MockStudentRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockClubRepo
type MockClubRepo struct {
	mock.Mock
}

func (m *MockClubRepo) Create(ctx context.Context, c *domain.Club) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClubRepo) GetByID(ctx context.Context, id int64) (*domain.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) GetByCID(ctx context.Context, cid int64) (*domain.Club, error) {
	args := m.Called(ctx, cid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) Update(ctx context.Context, c *domain.Club) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClubRepo) UpdateProfile(ctx context.Context, cid int64, upd *domain.ClubUpdate) (*domain.Club, error) {
	args := m.Called(ctx, cid, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) AdminUpdate(ctx context.Context, id int64, upd *domain.ClubAdminUpdate) (*domain.Club, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Club), args.Error(1)
}
func (m *MockClubRepo) ListByCIDs(ctx context.Context, cids []int64) ([]domain.Club, error) {
	args := m.Called(ctx, cids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Club), args.Error(1)
}
func (m *MockClubRepo) SearchByCIDs(ctx context.Context, cids []int64, query string) ([]domain.Club, error) {
	args := m.Called(ctx, cids, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Club), args.Error(1)
}
func (m *MockClubRepo) SearchWithRecruiting(ctx context.Context, query string, recruiting *bool) ([]domain.Club, error) {
	args := m.Called(ctx, query, recruiting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Club), args.Error(1)
}
func (m *MockClubRepo) ListRecent(ctx context.Context, limit int) ([]domain.Club, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Club), args.Error(1)
}
func (m *MockClubRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRecruitmentRepo
type MockRecruitmentRepo struct {
	mock.Mock
}

func (m *MockRecruitmentRepo) Create(ctx context.Context, rec *domain.Recruitment) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockRecruitmentRepo) GetByID(ctx context.Context, id int64) (*domain.Recruitment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruitment), args.Error(1)
}
func (m *MockRecruitmentRepo) GetByClubSemester(ctx context.Context, clubID int64, semester string) (*domain.Recruitment, error) {
	args := m.Called(ctx, clubID, semester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruitment), args.Error(1)
}
func (m *MockRecruitmentRepo) Update(ctx context.Context, rec *domain.Recruitment) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockRecruitmentRepo) SetStatus(ctx context.Context, clubID int64, semester string, status domain.RecruitmentStatus) error {
	args := m.Called(ctx, clubID, semester, status)
	return args.Error(0)
}
func (m *MockRecruitmentRepo) ListByClub(ctx context.Context, clubID int64) ([]domain.Recruitment, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recruitment), args.Error(1)
}
func (m *MockRecruitmentRepo) GetLatestByClub(ctx context.Context, clubID int64) (*domain.Recruitment, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruitment), args.Error(1)
}
func (m *MockRecruitmentRepo) ListActive(ctx context.Context) ([]domain.ActiveRecruitment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveRecruitment), args.Error(1)
}
func (m *MockRecruitmentRepo) CountPendingApplications(ctx context.Context, uid int64) (int64, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRecruitmentRepo) CloseExpired(ctx context.Context) ([]domain.Recruitment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recruitment), args.Error(1)
}
func (m *MockRecruitmentRepo) SaveEvaluation(ctx context.Context, out *repository.EvaluationOutcome) error {
	args := m.Called(ctx, out)
	return args.Error(0)
}
func (m *MockRecruitmentRepo) SaveApplication(ctx context.Context, rec *domain.Recruitment, student *domain.Student) error {
	args := m.Called(ctx, rec, student)
	return args.Error(0)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) GetByBookingID(ctx context.Context, bookingID string) (*domain.Event, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEventRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEventRepo) ListByClub(ctx context.Context, clubName, search string, statuses []domain.EventStatus) ([]domain.Event, error) {
	args := m.Called(ctx, clubName, search, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) ListByStatus(ctx context.Context, status domain.EventStatus, search string) ([]domain.Event, error) {
	args := m.Called(ctx, status, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) Search(ctx context.Context, search, clubName string, status domain.EventStatus) ([]domain.Event, error) {
	args := m.Called(ctx, search, clubName, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) CountByStatus(ctx context.Context) (map[domain.EventStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.EventStatus]int64), args.Error(1)
}
func (m *MockEventRepo) CountUpcomingByClub(ctx context.Context, clubName string, status domain.EventStatus) (int64, error) {
	args := m.Called(ctx, clubName, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockEventRepo) DistinctClubNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockEventRepo) SlotTaken(ctx context.Context, date, room, slot string) (bool, error) {
	args := m.Called(ctx, date, room, slot)
	return args.Bool(0), args.Error(1)
}
func (m *MockEventRepo) DeleteRejectedBefore(ctx context.Context, cutoff string) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockBudgetRepo
type MockBudgetRepo struct {
	mock.Mock
}

func (m *MockBudgetRepo) Create(ctx context.Context, b *domain.Budget) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBudgetRepo) GetByBookingID(ctx context.Context, bookingID string) (*domain.Budget, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetRepo) Update(ctx context.Context, b *domain.Budget) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

// MockAdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetByAdminID(ctx context.Context, adminID string) (*domain.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendDecisionNotification(ctx context.Context, email, name, clubName, semester string, action domain.EvaluationAction) error {
	args := m.Called(ctx, email, name, clubName, semester, action)
	return args.Error(0)
}
func (m *MockEmailService) SendRecruitmentClosedNotification(ctx context.Context, email, name, clubName, semester string) error {
	args := m.Called(ctx, email, name, clubName, semester)
	return args.Error(0)
}
