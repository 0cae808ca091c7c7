package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"

	"github.com/lib/pq"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, booking_id, eid, club_name, event_name, event_date, time_slots, room_number, std_reg, reg_std, event_details, status, comments, created_on`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var date time.Time
	var createdOn time.Time
	err := row.Scan(&e.ID, &e.BookingID, &e.EID, &e.ClubName, &e.Name, &date,
		pq.Array(&e.TimeSlots), &e.RoomNumber, &e.StudentReg, pq.Array(&e.Registered),
		&e.Details, &e.Status, &e.Comments, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	e.Date = date.Format("2006-01-02")
	e.CreatedOn = createdOn.Format(time.RFC3339)
	if e.TimeSlots == nil {
		e.TimeSlots = []string{}
	}
	if e.Registered == nil {
		e.Registered = []int64{}
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (booking_id, eid, club_name, event_name, event_date, time_slots, room_number, std_reg, reg_std, event_details, status, comments, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, e.BookingID, e.EID, e.ClubName, e.Name, e.Date,
		pq.Array(e.TimeSlots), e.RoomNumber, e.StudentReg, pq.Array(e.Registered),
		e.Details, e.Status, e.Comments).Scan(&e.ID)
	return mapError(err)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(r.db.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE booking_id = $1`
	return scanEvent(r.db.QueryRowContext(ctx, query, bookingID))
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET event_name=$1, event_date=$2, time_slots=$3, room_number=$4, std_reg=$5, reg_std=$6, event_details=$7, status=$8, comments=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, e.Name, e.Date, pq.Array(e.TimeSlots), e.RoomNumber,
		e.StudentReg, pq.Array(e.Registered), e.Details, e.Status, e.Comments, e.ID)
	return mapError(err)
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *eventRepository) ListByClub(ctx context.Context, clubName, search string, statuses []domain.EventStatus) ([]domain.Event, error) {
	args := []any{clubName}
	query := `SELECT ` + eventColumns + ` FROM events WHERE club_name = $1`
	if len(statuses) > 0 {
		ss := make([]string, len(statuses))
		for i, s := range statuses {
			ss[i] = string(s)
		}
		args = append(args, pq.Array(ss))
		query += ` AND status = ANY($` + strconv.Itoa(len(args)) + `)`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` AND eid ILIKE $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY event_date`
	return r.queryEvents(ctx, query, args...)
}

func (r *eventRepository) ListByStatus(ctx context.Context, status domain.EventStatus, search string) ([]domain.Event, error) {
	args := []any{status}
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = $1`
	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` AND eid ILIKE $2`
	}
	query += ` ORDER BY event_date`
	return r.queryEvents(ctx, query, args...)
}

func (r *eventRepository) Search(ctx context.Context, search, clubName string, status domain.EventStatus) ([]domain.Event, error) {
	args := []any{}
	conds := []string{}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := strconv.Itoa(len(args))
		conds = append(conds, `(eid ILIKE $`+n+` OR event_name ILIKE $`+n+`)`)
	}
	if clubName != "" {
		args = append(args, clubName)
		conds = append(conds, `club_name = $`+strconv.Itoa(len(args)))
	}
	if status != "" {
		args = append(args, status)
		conds = append(conds, `status = $`+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY event_date, time_slots`
	return r.queryEvents(ctx, query, args...)
}

func (r *eventRepository) CountByStatus(ctx context.Context) (map[domain.EventStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM events GROUP BY status`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	counts := map[domain.EventStatus]int64{
		domain.EventStatusPending:  0,
		domain.EventStatusApproved: 0,
		domain.EventStatusRejected: 0,
		domain.EventStatusBudget:   0,
	}
	for rows.Next() {
		var status domain.EventStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, mapError(err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *eventRepository) CountUpcomingByClub(ctx context.Context, clubName string, status domain.EventStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM events WHERE club_name = $1 AND status = $2 AND event_date >= CURRENT_DATE`
	err := r.db.QueryRowContext(ctx, query, clubName, status).Scan(&count)
	return count, mapError(err)
}

func (r *eventRepository) DistinctClubNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT club_name FROM events ORDER BY club_name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, mapError(err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *eventRepository) SlotTaken(ctx context.Context, date, room, slot string) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE event_date = $1 AND room_number = $2 AND $3 = ANY(time_slots))`
	err := r.db.QueryRowContext(ctx, query, date, room, slot).Scan(&taken)
	return taken, mapError(err)
}

func (r *eventRepository) DeleteRejectedBefore(ctx context.Context, cutoff string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM events WHERE status = 'Rejected' AND event_date < $1`, cutoff)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}
