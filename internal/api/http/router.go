package http

import (
	"net/http"
	"time"

	"clubsync-backend/internal/config"
	"clubsync-backend/internal/security"
	"clubsync-backend/internal/service"
	"clubsync-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Services bundles everything the router needs.
type Services struct {
	Auth         service.AuthService
	Students     service.StudentService
	Clubs        service.ClubService
	Recruitments service.RecruitmentService
	Events       service.EventService
	Budgets      service.BudgetService
	Admins       service.AdminService
}

// NewRouter builds the full API surface.
func NewRouter(cfg *config.Config, svcs Services, tokens security.TokenManager, logos storage.LogoStore) *mux.Router {
	cookies := cookieSettings{
		ttl:    time.Duration(cfg.Session.ExpiryHours) * time.Hour,
		secure: cfg.Session.CookieSecure,
	}

	studentH := NewStudentHandler(svcs.Students, svcs.Recruitments, svcs.Auth, cookies)
	clubH := NewClubHandler(svcs.Clubs, svcs.Auth, logos, cfg.Storage.MaxFileSizeMB, cookies)
	recH := NewRecruitmentHandler(svcs.Recruitments)
	eventH := NewEventHandler(svcs.Events)
	budgetH := NewBudgetHandler(svcs.Budgets)
	adminH := NewAdminHandler(svcs.Admins, svcs.Auth, cookies)

	authMW := NewAuthMiddleware(tokens)
	studentOnly := authMW.Require(security.PrincipalStudent)
	clubOnly := authMW.Require(security.PrincipalClub)
	adminOnly := authMW.Require(security.PrincipalAdmin)

	r := mux.NewRouter()
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusOK, "ok")
	}).Methods(http.MethodGet)

	// Students. Fixed paths are registered before the {studentId}
	// catch-alls.
	students := r.PathPrefix("/api/students").Subrouter()
	students.HandleFunc("/register", studentH.Register).Methods(http.MethodPost)
	students.HandleFunc("/login", studentH.Login).Methods(http.MethodPost)
	students.HandleFunc("/logout", studentH.Logout).Methods(http.MethodPost)
	students.Handle("/check-auth", studentOnly(http.HandlerFunc(studentH.CheckAuth))).Methods(http.MethodGet)
	students.HandleFunc("/count", studentH.Count).Methods(http.MethodGet)
	students.Handle("/pending-count", studentOnly(http.HandlerFunc(studentH.PendingCount))).Methods(http.MethodGet)
	students.Handle("/myclubs", studentOnly(http.HandlerFunc(studentH.MyClubs))).Methods(http.MethodGet)
	students.Handle("/myclubs/search", studentOnly(http.HandlerFunc(studentH.SearchMyClubs))).Methods(http.MethodGet)
	students.Handle("/register-club", studentOnly(http.HandlerFunc(studentH.RegisterClub))).Methods(http.MethodPost)
	students.Handle("/{studentId:[0-9]+}", studentOnly(http.HandlerFunc(studentH.GetProfile))).Methods(http.MethodGet)
	students.Handle("/{studentId:[0-9]+}/update", studentOnly(http.HandlerFunc(studentH.UpdateProfile))).Methods(http.MethodPut)
	students.Handle("/{studentId:[0-9]+}/clubs", studentOnly(http.HandlerFunc(studentH.Clubs))).Methods(http.MethodGet)

	// Clubs.
	clubs := r.PathPrefix("/api/clubs").Subrouter()
	clubs.HandleFunc("/register", clubH.Register).Methods(http.MethodPost)
	clubs.HandleFunc("/login", clubH.Login).Methods(http.MethodPost)
	clubs.HandleFunc("/logout", clubH.Logout).Methods(http.MethodPost)
	clubs.Handle("/dashboard", clubOnly(http.HandlerFunc(clubH.Dashboard))).Methods(http.MethodGet)
	clubs.HandleFunc("/all", clubH.List).Methods(http.MethodGet)
	clubs.HandleFunc("/count", clubH.Count).Methods(http.MethodGet)
	clubs.HandleFunc("/recent", clubH.Recent).Methods(http.MethodGet)
	clubs.Handle("/members", clubOnly(http.HandlerFunc(clubH.Members))).Methods(http.MethodGet)
	clubs.HandleFunc("/{cid:[0-9]+}", clubH.Get).Methods(http.MethodGet)
	clubs.Handle("/{cid:[0-9]+}/edit", clubOnly(http.HandlerFunc(clubH.Edit))).Methods(http.MethodPut)

	// Recruitment.
	rec := r.PathPrefix("/api/recruitment").Subrouter()
	rec.Handle("/create", clubOnly(http.HandlerFunc(recH.Start))).Methods(http.MethodPost)
	rec.Handle("/stop", clubOnly(http.HandlerFunc(recH.Stop))).Methods(http.MethodPut)
	rec.Handle("/evaluate", clubOnly(http.HandlerFunc(recH.Evaluate))).Methods(http.MethodPost)
	rec.HandleFunc("/recruiting/active", recH.Active).Methods(http.MethodGet)
	rec.Handle("/applicants/{clubId:[0-9]+}/{semester}", clubOnly(http.HandlerFunc(recH.Applicants))).Methods(http.MethodGet)
	rec.HandleFunc("/{clubId:[0-9]+}", recH.ListByClub).Methods(http.MethodGet)

	// Events.
	events := r.PathPrefix("/api/events").Subrouter()
	events.Handle("/booking", clubOnly(http.HandlerFunc(eventH.Book))).Methods(http.MethodPost)
	events.HandleFunc("/booking/{bookingId}", eventH.GetByBookingID).Methods(http.MethodGet)
	events.HandleFunc("/club/{clubName}", eventH.ListByClub).Methods(http.MethodGet)
	events.HandleFunc("/status/{status}", eventH.ListByStatus).Methods(http.MethodGet)
	events.Handle("/{eventId:[0-9]+}/registered-students", clubOnly(http.HandlerFunc(eventH.RegisteredStudents))).Methods(http.MethodPost)
	events.HandleFunc("/{id:[0-9]+}", eventH.Get).Methods(http.MethodGet)
	events.Handle("/{id:[0-9]+}", clubOnly(http.HandlerFunc(eventH.Update))).Methods(http.MethodPut)
	events.Handle("/{id:[0-9]+}", clubOnly(http.HandlerFunc(eventH.Delete))).Methods(http.MethodDelete)

	// Budgets.
	budgets := r.PathPrefix("/api/budgets").Subrouter()
	budgets.HandleFunc("/by-booking/{bookingId}", budgetH.GetByBookingID).Methods(http.MethodGet)
	budgets.Handle("/{eventId:[0-9]+}", clubOnly(http.HandlerFunc(budgetH.Submit))).Methods(http.MethodPost)
	budgets.HandleFunc("/{eventId:[0-9]+}", budgetH.GetByEvent).Methods(http.MethodGet)

	// Admin.
	admins := r.PathPrefix("/api/admins").Subrouter()
	admins.HandleFunc("/login", adminH.Login).Methods(http.MethodPost)
	admins.HandleFunc("/logout", adminH.Logout).Methods(http.MethodPost)
	admins.Handle("/check-auth", adminOnly(http.HandlerFunc(adminH.CheckAuth))).Methods(http.MethodGet)
	admins.Handle("/events", adminOnly(http.HandlerFunc(adminH.ListEvents))).Methods(http.MethodGet)
	admins.Handle("/events/counts", adminOnly(http.HandlerFunc(adminH.EventCounts))).Methods(http.MethodGet)
	admins.Handle("/events/club-names", adminOnly(http.HandlerFunc(adminH.EventClubNames))).Methods(http.MethodGet)
	admins.Handle("/events/{eventId:[0-9]+}/status", adminOnly(http.HandlerFunc(adminH.UpdateEventStatus))).Methods(http.MethodPut)
	admins.Handle("/events/{eventId:[0-9]+}/budget", adminOnly(http.HandlerFunc(adminH.UpdateBudgetStatus))).Methods(http.MethodPut)
	admins.Handle("/clubs", adminOnly(http.HandlerFunc(adminH.ListClubs))).Methods(http.MethodGet)
	admins.Handle("/clubs/count", adminOnly(http.HandlerFunc(adminH.ClubCount))).Methods(http.MethodGet)
	admins.Handle("/clubs/recent", adminOnly(http.HandlerFunc(adminH.RecentClubs))).Methods(http.MethodGet)
	admins.Handle("/clubs/{clubId:[0-9]+}", adminOnly(http.HandlerFunc(adminH.UpdateClub))).Methods(http.MethodPut)
	admins.Handle("/students/count", adminOnly(http.HandlerFunc(adminH.StudentCount))).Methods(http.MethodGet)

	// Uploaded logos are served back from local storage.
	r.HandleFunc("/uploads/logos/{file}", clubH.ServeLogo).Methods(http.MethodGet)

	return r
}
