package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"
)

type budgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) repository.BudgetRepository {
	return &budgetRepository{db: db}
}

// Budget line items are stored as a JSONB column; they are only ever
// read and written as a whole.
func (r *budgetRepository) Create(ctx context.Context, b *domain.Budget) error {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return fmt.Errorf("failed to encode budget items: %w", err)
	}
	query := `INSERT INTO budgets (booking_id, event_name, items, total_budget, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id`
	err = r.db.QueryRowContext(ctx, query, b.BookingID, b.EventName, items, b.TotalBudget, b.Status).Scan(&b.ID)
	return mapError(err)
}

func (r *budgetRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Budget, error) {
	b := &domain.Budget{}
	var items []byte
	var createdOn, updatedOn time.Time
	query := `SELECT id, booking_id, event_name, items, total_budget, status, created_on, updated_on FROM budgets WHERE booking_id = $1`
	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(
		&b.ID, &b.BookingID, &b.EventName, &items, &b.TotalBudget, &b.Status, &createdOn, &updatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	if err := json.Unmarshal(items, &b.Items); err != nil {
		return nil, fmt.Errorf("failed to decode budget items: %w", err)
	}
	b.CreatedOn = createdOn.Format(time.RFC3339)
	b.UpdatedOn = updatedOn.Format(time.RFC3339)
	return b, nil
}

func (r *budgetRepository) Update(ctx context.Context, b *domain.Budget) error {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return fmt.Errorf("failed to encode budget items: %w", err)
	}
	query := `UPDATE budgets SET items=$1, total_budget=$2, status=$3, updated_on=NOW() WHERE id=$4`
	_, err = r.db.ExecContext(ctx, query, items, b.TotalBudget, b.Status, b.ID)
	return mapError(err)
}
