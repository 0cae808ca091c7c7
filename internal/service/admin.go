package service

import (
	"context"
	"fmt"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"
)

type adminService struct {
	eventRepo  repository.EventRepository
	budgetRepo repository.BudgetRepository
	clubRepo   repository.ClubRepository
	studRepo   repository.StudentRepository
}

func NewAdminService(eventRepo repository.EventRepository, budgetRepo repository.BudgetRepository, clubRepo repository.ClubRepository, studRepo repository.StudentRepository) AdminService {
	return &adminService{
		eventRepo:  eventRepo,
		budgetRepo: budgetRepo,
		clubRepo:   clubRepo,
		studRepo:   studRepo,
	}
}

func (s *adminService) ListEvents(ctx context.Context, search, clubName string, status domain.EventStatus) ([]domain.Event, error) {
	if status != "" && !domain.ValidEventStatus(status) {
		return nil, fmt.Errorf("%w: unknown event status %q", ErrInvalidInput, status)
	}
	return s.eventRepo.Search(ctx, search, clubName, status)
}

func (s *adminService) EventStatusCounts(ctx context.Context) (map[domain.EventStatus]int64, error) {
	return s.eventRepo.CountByStatus(ctx)
}

func (s *adminService) EventClubNames(ctx context.Context) ([]string, error) {
	return s.eventRepo.DistinctClubNames(ctx)
}

func (s *adminService) UpdateEventStatus(ctx context.Context, eventID int64, status *domain.EventStatus, comments *string) (*domain.Event, error) {
	if status == nil && comments == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if status != nil && !domain.ValidEventStatus(*status) {
		return nil, fmt.Errorf("%w: unknown event status %q", ErrInvalidInput, *status)
	}

	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if status != nil {
		e.Status = *status
	}
	if comments != nil {
		e.Comments = *comments
	}
	if err := s.eventRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *adminService) UpdateBudgetStatus(ctx context.Context, eventID int64, status domain.BudgetStatus, eventComments *string) (*domain.Event, *domain.Budget, error) {
	if !domain.ValidBudgetStatus(status) {
		return nil, nil, fmt.Errorf("%w: unknown budget status %q", ErrInvalidInput, status)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("event record: %w", err)
	}
	budget, err := s.budgetRepo.GetByBookingID(ctx, event.BookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("budget record: %w", err)
	}

	budget.Status = status
	if err := s.budgetRepo.Update(ctx, budget); err != nil {
		return nil, nil, err
	}

	// The budget decision drives the event's status.
	event.Status = status.EventStatusFor()
	if eventComments != nil {
		event.Comments = *eventComments
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, nil, err
	}
	return event, budget, nil
}

func (s *adminService) ListClubs(ctx context.Context, search string, recruiting *bool) ([]domain.Club, error) {
	return s.clubRepo.SearchWithRecruiting(ctx, search, recruiting)
}

func (s *adminService) UpdateClub(ctx context.Context, clubID int64, upd *domain.ClubAdminUpdate) (*domain.Club, error) {
	return s.clubRepo.AdminUpdate(ctx, clubID, upd)
}

func (s *adminService) StudentCount(ctx context.Context) (int64, error) {
	return s.studRepo.Count(ctx)
}

func (s *adminService) ClubCount(ctx context.Context) (int64, error) {
	return s.clubRepo.Count(ctx)
}

func (s *adminService) RecentClubs(ctx context.Context) ([]domain.Club, error) {
	return s.clubRepo.ListRecent(ctx, 5)
}
