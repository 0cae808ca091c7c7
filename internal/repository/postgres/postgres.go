package postgres

import (
	"database/sql"
	"errors"

	"clubsync-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.StudentRepository
	repository.ClubRepository
	repository.RecruitmentRepository
	repository.EventRepository
	repository.BudgetRepository
	repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		StudentRepository:     NewStudentRepository(db),
		ClubRepository:        NewClubRepository(db),
		RecruitmentRepository: NewRecruitmentRepository(db),
		EventRepository:       NewEventRepository(db),
		BudgetRepository:      NewBudgetRepository(db),
		AdminRepository:       NewAdminRepository(db),
	}
}

// mapError translates driver-level errors into the repository
// sentinels the services switch on.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}
