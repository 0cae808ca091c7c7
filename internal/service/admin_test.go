package service_test

import (
	"context"
	"testing"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdminFixture() (*MockEventRepo, *MockBudgetRepo, *MockClubRepo, *MockStudentRepo, service.AdminService) {
	eventRepo := new(MockEventRepo)
	budgetRepo := new(MockBudgetRepo)
	clubRepo := new(MockClubRepo)
	studRepo := new(MockStudentRepo)
	svc := service.NewAdminService(eventRepo, budgetRepo, clubRepo, studRepo)
	return eventRepo, budgetRepo, clubRepo, studRepo, svc
}

func TestAdminService_UpdateBudgetStatus(t *testing.T) {
	ctx := context.Background()

	// A budget decision always drags the event status along.
	cases := []struct {
		budgetStatus domain.BudgetStatus
		eventStatus  domain.EventStatus
	}{
		{domain.BudgetStatusApproved, domain.EventStatusApproved},
		{domain.BudgetStatusRejected, domain.EventStatusRejected},
		{domain.BudgetStatusHold, domain.EventStatusBudget},
		{domain.BudgetStatusPending, domain.EventStatusPending},
	}

	for _, tc := range cases {
		t.Run(string(tc.budgetStatus), func(t *testing.T) {
			eventRepo, budgetRepo, _, _, svc := newAdminFixture()

			event := &domain.Event{ID: 4, BookingID: "bkg-1", Status: domain.EventStatusBudget}
			budget := &domain.Budget{ID: 2, BookingID: "bkg-1", Status: domain.BudgetStatusHold}
			eventRepo.On("GetByID", ctx, int64(4)).Return(event, nil).Once()
			budgetRepo.On("GetByBookingID", ctx, "bkg-1").Return(budget, nil).Once()
			budgetRepo.On("Update", ctx, mock.MatchedBy(func(b *domain.Budget) bool {
				return b.Status == tc.budgetStatus
			})).Return(nil).Once()
			eventRepo.On("Update", ctx, mock.MatchedBy(func(e *domain.Event) bool {
				return e.Status == tc.eventStatus
			})).Return(nil).Once()

			gotEvent, gotBudget, err := svc.UpdateBudgetStatus(ctx, 4, tc.budgetStatus, nil)
			assert.NoError(t, err)
			assert.Equal(t, tc.eventStatus, gotEvent.Status)
			assert.Equal(t, tc.budgetStatus, gotBudget.Status)
		})
	}

	t.Run("UnknownStatus", func(t *testing.T) {
		eventRepo, _, _, _, svc := newAdminFixture()
		_, _, err := svc.UpdateBudgetStatus(ctx, 4, "frozen", nil)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		eventRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestAdminService_UpdateEventStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("StatusAndComments", func(t *testing.T) {
		eventRepo, _, _, _, svc := newAdminFixture()

		event := &domain.Event{ID: 4, Status: domain.EventStatusPending}
		eventRepo.On("GetByID", ctx, int64(4)).Return(event, nil).Once()
		eventRepo.On("Update", ctx, event).Return(nil).Once()

		status := domain.EventStatusApproved
		comments := "room confirmed"
		got, err := svc.UpdateEventStatus(ctx, 4, &status, &comments)
		assert.NoError(t, err)
		assert.Equal(t, domain.EventStatusApproved, got.Status)
		assert.Equal(t, "room confirmed", got.Comments)
	})

	t.Run("NothingToUpdate", func(t *testing.T) {
		_, _, _, _, svc := newAdminFixture()
		_, err := svc.UpdateEventStatus(ctx, 4, nil, nil)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		_, _, _, _, svc := newAdminFixture()
		bad := domain.EventStatus("Scheduled")
		_, err := svc.UpdateEventStatus(ctx, 4, &bad, nil)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestAdminService_ListClubs(t *testing.T) {
	_, _, clubRepo, _, svc := newAdminFixture()
	ctx := context.Background()

	recruiting := true
	clubRepo.On("SearchWithRecruiting", ctx, "chess", &recruiting).Return([]domain.Club{
		{ID: 7, CID: 42, Name: "Chess Club", IsRecruiting: true},
	}, nil).Once()

	clubs, err := svc.ListClubs(ctx, "chess", &recruiting)
	assert.NoError(t, err)
	assert.Len(t, clubs, 1)
	assert.True(t, clubs[0].IsRecruiting)
}
