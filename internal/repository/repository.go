package repository

import (
	"context"
	"errors"

	"clubsync-backend/internal/domain"
)

// ErrNotFound is returned by all repositories when the requested record
// does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness
// constraint (uid, cid, eid, (club, semester) pair, ...).
var ErrDuplicate = errors.New("record already exists")

type StudentRepository interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	GetByUID(ctx context.Context, uid int64) (*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	UpdateProfile(ctx context.Context, id int64, upd *domain.StudentUpdate) (*domain.Student, error)
	ListByUIDs(ctx context.Context, uids []int64) ([]domain.Student, error)
	SearchByUIDs(ctx context.Context, uids []int64, query string) ([]domain.Student, error)
	Count(ctx context.Context) (int64, error)
}

type ClubRepository interface {
	Create(ctx context.Context, c *domain.Club) error
	GetByID(ctx context.Context, id int64) (*domain.Club, error)
	GetByCID(ctx context.Context, cid int64) (*domain.Club, error)
	Update(ctx context.Context, c *domain.Club) error
	UpdateProfile(ctx context.Context, cid int64, upd *domain.ClubUpdate) (*domain.Club, error)
	AdminUpdate(ctx context.Context, id int64, upd *domain.ClubAdminUpdate) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)
	ListByCIDs(ctx context.Context, cids []int64) ([]domain.Club, error)
	SearchByCIDs(ctx context.Context, cids []int64, query string) ([]domain.Club, error)
	// SearchWithRecruiting lists clubs matched by the search term with
	// the derived isRecruiting flag, optionally filtered on that flag.
	SearchWithRecruiting(ctx context.Context, query string, recruiting *bool) ([]domain.Club, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Club, error)
	Count(ctx context.Context) (int64, error)
}

type RecruitmentRepository interface {
	Create(ctx context.Context, rec *domain.Recruitment) error
	GetByID(ctx context.Context, id int64) (*domain.Recruitment, error)
	GetByClubSemester(ctx context.Context, clubID int64, semester string) (*domain.Recruitment, error)
	Update(ctx context.Context, rec *domain.Recruitment) error
	SetStatus(ctx context.Context, clubID int64, semester string, status domain.RecruitmentStatus) error
	ListByClub(ctx context.Context, clubID int64) ([]domain.Recruitment, error)
	GetLatestByClub(ctx context.Context, clubID int64) (*domain.Recruitment, error)
	ListActive(ctx context.Context) ([]domain.ActiveRecruitment, error)
	CountPendingApplications(ctx context.Context, uid int64) (int64, error)
	// CloseExpired closes open drives whose deadline has passed and
	// returns the drives it closed.
	CloseExpired(ctx context.Context) ([]domain.Recruitment, error)

	// SaveEvaluation persists an evaluation outcome. Only the records
	// whose flag is set are written, all inside one transaction.
	SaveEvaluation(ctx context.Context, out *EvaluationOutcome) error
	// SaveApplication appends a new applicant to the drive's pending
	// list and mirrors the club CID onto the student's pending
	// applications, inside one transaction.
	SaveApplication(ctx context.Context, rec *domain.Recruitment, student *domain.Student) error
}

// EvaluationOutcome is the set of records an evaluation decision may
// have touched, with per-record dirty flags.
type EvaluationOutcome struct {
	Recruitment        *domain.Recruitment
	Student            *domain.Student
	Club               *domain.Club
	RecruitmentChanged bool
	StudentChanged     bool
	ClubChanged        bool
}

// Changed reports whether anything needs persisting.
func (o *EvaluationOutcome) Changed() bool {
	return o.RecruitmentChanged || o.StudentChanged || o.ClubChanged
}

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
	ListByClub(ctx context.Context, clubName, search string, statuses []domain.EventStatus) ([]domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus, search string) ([]domain.Event, error)
	Search(ctx context.Context, search, clubName string, status domain.EventStatus) ([]domain.Event, error)
	CountByStatus(ctx context.Context) (map[domain.EventStatus]int64, error)
	CountUpcomingByClub(ctx context.Context, clubName string, status domain.EventStatus) (int64, error)
	DistinctClubNames(ctx context.Context) ([]string, error)
	// SlotTaken reports whether an event already occupies the exact
	// (date, room, slot) triple.
	SlotTaken(ctx context.Context, date, room, slot string) (bool, error)
	DeleteRejectedBefore(ctx context.Context, cutoff string) (int64, error)
}

type BudgetRepository interface {
	Create(ctx context.Context, b *domain.Budget) error
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Budget, error)
	Update(ctx context.Context, b *domain.Budget) error
}

type AdminRepository interface {
	GetByAdminID(ctx context.Context, adminID string) (*domain.Admin, error)
}
