package postgres

import (
	"context"
	"database/sql"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByAdminID(ctx context.Context, adminID string) (*domain.Admin, error) {
	a := &domain.Admin{}
	query := `SELECT id, admin_id, username, password_hash FROM admins WHERE admin_id = $1`
	err := r.db.QueryRowContext(ctx, query, adminID).Scan(&a.ID, &a.AdminID, &a.Username, &a.PasswordHash)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}
