package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"

	"github.com/lib/pq"
)

type studentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, uid, uname, dob, umail, umobile, ugender, password_hash, major, semester, clubs, pen_clubs`

func scanStudent(row interface{ Scan(...any) error }) (*domain.Student, error) {
	s := &domain.Student{}
	err := row.Scan(&s.ID, &s.UID, &s.Name, &s.DOB, &s.Email, &s.Mobile, &s.Gender,
		&s.PasswordHash, &s.Major, &s.Semester, pq.Array(&s.Clubs), pq.Array(&s.PendingClubs))
	if err != nil {
		return nil, mapError(err)
	}
	if s.Clubs == nil {
		s.Clubs = []int64{}
	}
	if s.PendingClubs == nil {
		s.PendingClubs = []int64{}
	}
	return s, nil
}

func (r *studentRepository) Create(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (uid, uname, dob, umail, umobile, ugender, password_hash, major, semester, clubs, pen_clubs)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, s.UID, s.Name, s.DOB, s.Email, s.Mobile, s.Gender,
		s.PasswordHash, s.Major, s.Semester, pq.Array(s.Clubs), pq.Array(s.PendingClubs)).Scan(&s.ID)
	return mapError(err)
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(r.db.QueryRowContext(ctx, query, id))
}

func (r *studentRepository) GetByUID(ctx context.Context, uid int64) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE uid = $1`
	return scanStudent(r.db.QueryRowContext(ctx, query, uid))
}

func (r *studentRepository) Update(ctx context.Context, s *domain.Student) error {
	query := `UPDATE students SET uname=$1, dob=$2, umail=$3, umobile=$4, ugender=$5, major=$6, semester=$7, clubs=$8, pen_clubs=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.DOB, s.Email, s.Mobile, s.Gender,
		s.Major, s.Semester, pq.Array(s.Clubs), pq.Array(s.PendingClubs), s.ID)
	return mapError(err)
}

func (r *studentRepository) UpdateProfile(ctx context.Context, id int64, upd *domain.StudentUpdate) (*domain.Student, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, val *string) {
		if val != nil {
			args = append(args, *val)
			sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
		}
	}
	add("dob", upd.DOB)
	add("umail", upd.Email)
	add("umobile", upd.Mobile)
	add("ugender", upd.Gender)
	add("major", upd.Major)
	add("semester", upd.Semester)

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE students SET %s WHERE id=$%d RETURNING `+studentColumns,
		strings.Join(sets, ", "), len(args))
	return scanStudent(r.db.QueryRowContext(ctx, query, args...))
}

func (r *studentRepository) ListByUIDs(ctx context.Context, uids []int64) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE uid = ANY($1) ORDER BY uid`
	return r.queryStudents(ctx, query, pq.Array(uids))
}

func (r *studentRepository) SearchByUIDs(ctx context.Context, uids []int64, search string) ([]domain.Student, error) {
	if search == "" {
		return r.ListByUIDs(ctx, uids)
	}
	args := []any{pq.Array(uids), "%" + search + "%"}
	query := `SELECT ` + studentColumns + ` FROM students WHERE uid = ANY($1) AND (uname ILIKE $2`
	// Numeric search terms also match the UID exactly.
	if n, err := strconv.ParseInt(search, 10, 64); err == nil {
		args = append(args, n)
		query += ` OR uid = $3`
	}
	query += `) ORDER BY uid`
	return r.queryStudents(ctx, query, args...)
}

func (r *studentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]domain.Student, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	return count, mapError(err)
}
