package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/logger"
	"clubsync-backend/internal/repository"

	"github.com/lib/pq"
)

type recruitmentRepository struct {
	db *sql.DB
}

func NewRecruitmentRepository(db *sql.DB) repository.RecruitmentRepository {
	return &recruitmentRepository{db: db}
}

const recruitmentColumns = `id, club_id, club_name, semester, status, application_deadline, description, pending_std, approved_std, rejected_std, created_on, updated_on`

func scanRecruitment(row interface{ Scan(...any) error }) (*domain.Recruitment, error) {
	rec := &domain.Recruitment{}
	var deadline sql.NullTime
	var createdOn, updatedOn time.Time
	err := row.Scan(&rec.ID, &rec.ClubID, &rec.ClubName, &rec.Semester, &rec.Status, &deadline,
		&rec.Description, pq.Array(&rec.Pending), pq.Array(&rec.Approved), pq.Array(&rec.Rejected),
		&createdOn, &updatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	if deadline.Valid {
		d := deadline.Time.Format("2006-01-02")
		rec.ApplicationDeadline = &d
	}
	rec.CreatedOn = createdOn.Format(time.RFC3339)
	rec.UpdatedOn = updatedOn.Format(time.RFC3339)
	if rec.Pending == nil {
		rec.Pending = []int64{}
	}
	if rec.Approved == nil {
		rec.Approved = []int64{}
	}
	if rec.Rejected == nil {
		rec.Rejected = []int64{}
	}
	return rec, nil
}

func (r *recruitmentRepository) Create(ctx context.Context, rec *domain.Recruitment) error {
	query := `INSERT INTO recruitments (club_id, club_name, semester, status, application_deadline, description, pending_std, approved_std, rejected_std, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, rec.ClubID, rec.ClubName, rec.Semester, rec.Status,
		nullDate(rec.ApplicationDeadline), rec.Description,
		pq.Array(rec.Pending), pq.Array(rec.Approved), pq.Array(rec.Rejected)).Scan(&rec.ID)
	return mapError(err)
}

func (r *recruitmentRepository) GetByID(ctx context.Context, id int64) (*domain.Recruitment, error) {
	query := `SELECT ` + recruitmentColumns + ` FROM recruitments WHERE id = $1`
	return scanRecruitment(r.db.QueryRowContext(ctx, query, id))
}

func (r *recruitmentRepository) GetByClubSemester(ctx context.Context, clubID int64, semester string) (*domain.Recruitment, error) {
	query := `SELECT ` + recruitmentColumns + ` FROM recruitments WHERE club_id = $1 AND semester = $2`
	return scanRecruitment(r.db.QueryRowContext(ctx, query, clubID, semester))
}

func (r *recruitmentRepository) Update(ctx context.Context, rec *domain.Recruitment) error {
	query := `UPDATE recruitments SET status=$1, application_deadline=$2, description=$3, pending_std=$4, approved_std=$5, rejected_std=$6, updated_on=NOW() WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, rec.Status, nullDate(rec.ApplicationDeadline), rec.Description,
		pq.Array(rec.Pending), pq.Array(rec.Approved), pq.Array(rec.Rejected), rec.ID)
	return mapError(err)
}

func (r *recruitmentRepository) SetStatus(ctx context.Context, clubID int64, semester string, status domain.RecruitmentStatus) error {
	query := `UPDATE recruitments SET status=$1, updated_on=NOW() WHERE club_id=$2 AND semester=$3`
	res, err := r.db.ExecContext(ctx, query, status, clubID, semester)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *recruitmentRepository) ListByClub(ctx context.Context, clubID int64) ([]domain.Recruitment, error) {
	query := `SELECT ` + recruitmentColumns + ` FROM recruitments WHERE club_id = $1 ORDER BY semester DESC`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var recs []domain.Recruitment
	for rows.Next() {
		rec, err := scanRecruitment(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

func (r *recruitmentRepository) GetLatestByClub(ctx context.Context, clubID int64) (*domain.Recruitment, error) {
	query := `SELECT ` + recruitmentColumns + ` FROM recruitments WHERE club_id = $1 ORDER BY created_on DESC LIMIT 1`
	return scanRecruitment(r.db.QueryRowContext(ctx, query, clubID))
}

func (r *recruitmentRepository) ListActive(ctx context.Context) ([]domain.ActiveRecruitment, error) {
	query := `SELECT r.id, r.club_id, c.cid, c.cname, r.semester, r.application_deadline, r.description, r.created_on
	            FROM recruitments r
	            JOIN clubs c ON c.id = r.club_id
	           WHERE r.status = 'yes'
	           ORDER BY r.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var active []domain.ActiveRecruitment
	for rows.Next() {
		var a domain.ActiveRecruitment
		var deadline sql.NullTime
		var createdOn time.Time
		if err := rows.Scan(&a.ID, &a.ClubID, &a.ClubCID, &a.ClubName, &a.Semester, &deadline, &a.Description, &createdOn); err != nil {
			return nil, mapError(err)
		}
		if deadline.Valid {
			d := deadline.Time.Format("2006-01-02")
			a.ApplicationDeadline = &d
		}
		a.CreatedOn = createdOn.Format(time.RFC3339)
		active = append(active, a)
	}
	return active, rows.Err()
}

func (r *recruitmentRepository) CountPendingApplications(ctx context.Context, uid int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM recruitments WHERE $1 = ANY(pending_std)`
	err := r.db.QueryRowContext(ctx, query, uid).Scan(&count)
	return count, mapError(err)
}

// CloseExpired flips open drives past their deadline to closed and
// returns the drives it closed, so callers can notify their pending
// applicants.
func (r *recruitmentRepository) CloseExpired(ctx context.Context) ([]domain.Recruitment, error) {
	query := `UPDATE recruitments SET status='no', updated_on=NOW()
	           WHERE status='yes' AND application_deadline IS NOT NULL AND application_deadline < CURRENT_DATE
	           RETURNING ` + recruitmentColumns
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var closed []domain.Recruitment
	for rows.Next() {
		rec, err := scanRecruitment(rows)
		if err != nil {
			return nil, err
		}
		closed = append(closed, *rec)
	}
	return closed, rows.Err()
}

// SaveEvaluation writes the records an evaluation decision changed.
// The three updates commit or roll back together, so an applicant can
// never be approved on the drive but missing from the club roster.
func (r *recruitmentRepository) SaveEvaluation(ctx context.Context, out *repository.EvaluationOutcome) error {
	if !out.Changed() {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin evaluation transaction: %w", err)
	}
	defer tx.Rollback()

	if out.RecruitmentChanged {
		rec := out.Recruitment
		logger.DatabaseCall("UPDATE", "recruitments", "id", rec.ID)
		_, err := tx.ExecContext(ctx,
			`UPDATE recruitments SET pending_std=$1, approved_std=$2, rejected_std=$3, updated_on=NOW() WHERE id=$4`,
			pq.Array(rec.Pending), pq.Array(rec.Approved), pq.Array(rec.Rejected), rec.ID)
		if err != nil {
			logger.DatabaseResult("UPDATE", 0, err, "table", "recruitments", "id", rec.ID)
			return fmt.Errorf("failed to update recruitment lists: %w", mapError(err))
		}
	}

	if out.StudentChanged {
		s := out.Student
		logger.DatabaseCall("UPDATE", "students", "id", s.ID)
		_, err := tx.ExecContext(ctx,
			`UPDATE students SET clubs=$1, pen_clubs=$2 WHERE id=$3`,
			pq.Array(s.Clubs), pq.Array(s.PendingClubs), s.ID)
		if err != nil {
			logger.DatabaseResult("UPDATE", 0, err, "table", "students", "id", s.ID)
			return fmt.Errorf("failed to update student memberships: %w", mapError(err))
		}
	}

	if out.ClubChanged {
		c := out.Club
		logger.DatabaseCall("UPDATE", "clubs", "id", c.ID)
		_, err := tx.ExecContext(ctx,
			`UPDATE clubs SET cmembers=$1 WHERE id=$2`,
			pq.Array(c.Members), c.ID)
		if err != nil {
			logger.DatabaseResult("UPDATE", 0, err, "table", "clubs", "id", c.ID)
			return fmt.Errorf("failed to update club roster: %w", mapError(err))
		}
	}

	return tx.Commit()
}

// SaveApplication appends the applicant to the drive's pending list and
// mirrors the club CID onto the student's pending applications in one
// transaction.
func (r *recruitmentRepository) SaveApplication(ctx context.Context, rec *domain.Recruitment, student *domain.Student) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin application transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE recruitments SET pending_std=$1, updated_on=NOW() WHERE id=$2`,
		pq.Array(rec.Pending), rec.ID)
	if err != nil {
		return fmt.Errorf("failed to update recruitment pending list: %w", mapError(err))
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE students SET pen_clubs=$1 WHERE id=$2`,
		pq.Array(student.PendingClubs), student.ID)
	if err != nil {
		return fmt.Errorf("failed to update student pending applications: %w", mapError(err))
	}

	return tx.Commit()
}
