package service

import (
	"context"
	"errors"
	"fmt"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"
)

// ErrBudgetLocked is returned when a club tries to edit a budget that
// has already gone to review.
var ErrBudgetLocked = errors.New("budget is locked for review")

type budgetService struct {
	budgetRepo repository.BudgetRepository
	eventRepo  repository.EventRepository
}

func NewBudgetService(budgetRepo repository.BudgetRepository, eventRepo repository.EventRepository) BudgetService {
	return &budgetService{
		budgetRepo: budgetRepo,
		eventRepo:  eventRepo,
	}
}

func (s *budgetService) Submit(ctx context.Context, eventID int64, items []domain.BudgetItem) (*domain.Budget, bool, error) {
	// 1. Validate and price the line items; totals are never trusted
	// from the client.
	if len(items) == 0 {
		return nil, false, fmt.Errorf("%w: at least one line item is required", ErrInvalidInput)
	}
	var total int64
	for i := range items {
		it := &items[i]
		if !domain.ValidBudgetCategory(it.Category) {
			return nil, false, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, it.Category)
		}
		if it.ItemName == "" {
			return nil, false, fmt.Errorf("%w: item_name is required", ErrInvalidInput)
		}
		if it.Quantity < 1 || it.UnitPrice < 0 {
			return nil, false, fmt.Errorf("%w: quantity must be >= 1 and unit_price >= 0", ErrInvalidInput)
		}
		it.TotalPrice = it.Quantity * it.UnitPrice
		total += it.TotalPrice
	}

	// 2. The budget hangs off the event's booking id.
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("event record: %w", err)
	}

	existing, err := s.budgetRepo.GetByBookingID(ctx, event.BookingID)
	switch {
	case err == nil:
		// 3a. Resubmission: only allowed while the admin has the budget
		// back in pending; submitting locks it again.
		if existing.Status != domain.BudgetStatusPending {
			return nil, false, ErrBudgetLocked
		}
		existing.Items = items
		existing.TotalBudget = total
		existing.Status = domain.BudgetStatusHold
		if err := s.budgetRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil

	case errors.Is(err, repository.ErrNotFound):
		// 3b. First submission: create on hold and move the event into
		// budget review.
		b := &domain.Budget{
			BookingID:   event.BookingID,
			EventName:   event.Name,
			Items:       items,
			TotalBudget: total,
			Status:      domain.BudgetStatusHold,
		}
		if err := s.budgetRepo.Create(ctx, b); err != nil {
			return nil, false, err
		}
		event.Status = domain.EventStatusBudget
		if err := s.eventRepo.Update(ctx, event); err != nil {
			return nil, false, err
		}
		return b, true, nil

	default:
		return nil, false, err
	}
}

func (s *budgetService) GetByEventID(ctx context.Context, eventID int64) (*domain.Budget, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event record: %w", err)
	}
	return s.budgetRepo.GetByBookingID(ctx, event.BookingID)
}

func (s *budgetService) GetByBookingID(ctx context.Context, bookingID string) (*domain.Budget, error) {
	return s.budgetRepo.GetByBookingID(ctx, bookingID)
}
