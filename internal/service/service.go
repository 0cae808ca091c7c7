package service

import (
	"context"

	"clubsync-backend/internal/domain"
)

type AuthService interface {
	StudentLogin(ctx context.Context, uid int64, password string) (*domain.Student, string, error)
	ClubLogin(ctx context.Context, cid int64, password string) (*domain.Club, string, error)
	AdminLogin(ctx context.Context, adminID, password string) (*domain.Admin, string, error)
}

type StudentService interface {
	Register(ctx context.Context, s *domain.Student, password string) error
	GetProfile(ctx context.Context, id int64) (*domain.Student, error)
	UpdateProfile(ctx context.Context, id int64, upd *domain.StudentUpdate) (*domain.Student, error)
	GetByUID(ctx context.Context, uid int64) (*domain.Student, error)
	MyClubs(ctx context.Context, id int64) ([]domain.Club, error)
	SearchMyClubs(ctx context.Context, id int64, query string) ([]domain.Club, error)
	PendingApplicationCount(ctx context.Context, uid int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type ClubService interface {
	Register(ctx context.Context, c *domain.Club, password string) error
	List(ctx context.Context) ([]domain.Club, error)
	GetByCID(ctx context.Context, cid int64) (*domain.Club, error)
	UpdateProfile(ctx context.Context, cid int64, upd *domain.ClubUpdate) (*domain.Club, error)
	// Members returns the students on the club's roster matching the
	// search term, plus the unfiltered roster size.
	Members(ctx context.Context, clubID int64, search string) ([]domain.Student, int64, error)
	Dashboard(ctx context.Context, clubID int64) (*ClubDashboard, error)
	ListRecent(ctx context.Context) ([]domain.Club, error)
	Count(ctx context.Context) (int64, error)
}

// ClubDashboard aggregates the figures the club landing page shows.
type ClubDashboard struct {
	Club              *domain.Club `json:"clubDetails"`
	TotalMembers      int          `json:"totalMembers"`
	CurrentBalance    int64        `json:"currentBalance"`
	UpcomingEvents    int64        `json:"upcomingEventsCount"`
	PendingEvents     int64        `json:"pendingEventsCount"`
	RecruitmentStatus string       `json:"recruitmentStatus"`
	TotalApplicants   int          `json:"totalApplicants"`
}

type RecruitmentService interface {
	// Start opens a drive for (clubID, semester), reopening and
	// refreshing the existing record when one exists.
	Start(ctx context.Context, clubID int64, clubName, semester, deadline, description string) (*domain.Recruitment, bool, error)
	Stop(ctx context.Context, clubID int64, semester string) error
	ListByClub(ctx context.Context, clubID int64) ([]domain.Recruitment, error)
	ListActive(ctx context.Context) ([]domain.ActiveRecruitment, error)
	Applicants(ctx context.Context, clubID int64, semester string) ([]domain.Applicant, error)

	// Evaluate moves the applicant between the drive's status lists and
	// propagates the decision to the student and club records.
	Evaluate(ctx context.Context, clubID int64, semester string, uid int64, action domain.EvaluationAction) (*EvaluationResult, error)

	// Apply records a new application on the drive's pending list and
	// returns the student's pending-application count.
	Apply(ctx context.Context, recruitmentID, uid int64) (int64, error)
}

// EvaluationResult reports what an evaluation decision changed.
type EvaluationResult struct {
	UID               int64
	Action            domain.EvaluationAction
	MembershipChanged bool
}

type EventService interface {
	Book(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Event, error)
	ListByClub(ctx context.Context, clubName, search string) ([]domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus, search string) ([]domain.Event, error)
	Update(ctx context.Context, id int64, upd *domain.EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
	RegisteredStudents(ctx context.Context, eventID int64, uids []int64) ([]domain.Student, error)
}

type BudgetService interface {
	// Submit creates the budget for an event or replaces its line
	// items; totals are recomputed server-side. Returns the budget and
	// whether it was newly created.
	Submit(ctx context.Context, eventID int64, items []domain.BudgetItem) (*domain.Budget, bool, error)
	GetByEventID(ctx context.Context, eventID int64) (*domain.Budget, error)
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Budget, error)
}

type AdminService interface {
	ListEvents(ctx context.Context, search, clubName string, status domain.EventStatus) ([]domain.Event, error)
	EventStatusCounts(ctx context.Context) (map[domain.EventStatus]int64, error)
	EventClubNames(ctx context.Context) ([]string, error)
	UpdateEventStatus(ctx context.Context, eventID int64, status *domain.EventStatus, comments *string) (*domain.Event, error)
	// UpdateBudgetStatus applies an admin decision to a budget and
	// transitions the owning event accordingly.
	UpdateBudgetStatus(ctx context.Context, eventID int64, status domain.BudgetStatus, eventComments *string) (*domain.Event, *domain.Budget, error)

	ListClubs(ctx context.Context, search string, recruiting *bool) ([]domain.Club, error)
	UpdateClub(ctx context.Context, clubID int64, upd *domain.ClubAdminUpdate) (*domain.Club, error)
	StudentCount(ctx context.Context) (int64, error)
	ClubCount(ctx context.Context) (int64, error)
	RecentClubs(ctx context.Context) ([]domain.Club, error)
}

type EmailService interface {
	// SendDecisionNotification tells a student the outcome of an
	// evaluation decision. Failures are logged, never fatal.
	SendDecisionNotification(ctx context.Context, email, name, clubName, semester string, action domain.EvaluationAction) error
	SendRecruitmentClosedNotification(ctx context.Context, email, name, clubName, semester string) error
}
