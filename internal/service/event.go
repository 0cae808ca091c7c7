package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"

	"github.com/google/uuid"
)

// eidAttempts bounds the generate-and-insert loop for the short event
// number. Collisions on an 8-digit space are rare enough that hitting
// the bound means something else is wrong.
const eidAttempts = 5

type eventService struct {
	eventRepo repository.EventRepository
	studRepo  repository.StudentRepository
}

func NewEventService(eventRepo repository.EventRepository, studRepo repository.StudentRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
		studRepo:  studRepo,
	}
}

func (s *eventService) Book(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	// 1. Validate the booking request.
	if e.ClubName == "" || e.Name == "" || e.Date == "" || e.RoomNumber == "" || len(e.TimeSlots) == 0 {
		return nil, fmt.Errorf("%w: club_name, event_name, event_date, room_number and time_slots are required", ErrInvalidInput)
	}

	// 2. Refuse any slot already occupied for the same date and room.
	// Checked per slot; a concurrent booking between check and insert
	// can still win the slot.
	for _, slot := range e.TimeSlots {
		taken, err := s.eventRepo.SlotTaken(ctx, e.Date, e.RoomNumber, slot)
		if err != nil {
			return nil, fmt.Errorf("checking slot availability: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("%w: %s on %s", ErrSlotUnavailable, slot, e.Date)
		}
	}

	// 3. New bookings always start pending with an empty register.
	e.BookingID = uuid.NewString()
	e.Status = domain.EventStatusPending
	if e.Registered == nil {
		e.Registered = []int64{}
	}

	// 4. Insert with a fresh 8-digit event number, retrying on a number
	// collision.
	for i := 0; i < eidAttempts; i++ {
		e.EID = fmt.Sprintf("%08d", rand.Intn(100000000))
		err := s.eventRepo.Create(ctx, e)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("creating event: %w", err)
		}
	}
	return nil, fmt.Errorf("could not allocate a unique event id after %d attempts", eidAttempts)
}

func (s *eventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) GetByBookingID(ctx context.Context, bookingID string) (*domain.Event, error) {
	return s.eventRepo.GetByBookingID(ctx, bookingID)
}

// ListByClub returns the club's bookings still in the review pipeline
// (pending or awaiting budget review), filtered by the optional search
// term on the event number.
func (s *eventService) ListByClub(ctx context.Context, clubName, search string) ([]domain.Event, error) {
	statuses := []domain.EventStatus{domain.EventStatusPending, domain.EventStatusBudget}
	return s.eventRepo.ListByClub(ctx, clubName, search, statuses)
}

func (s *eventService) ListByStatus(ctx context.Context, status domain.EventStatus, search string) ([]domain.Event, error) {
	if !domain.ValidEventStatus(status) {
		return nil, fmt.Errorf("%w: unknown event status %q", ErrInvalidInput, status)
	}
	return s.eventRepo.ListByStatus(ctx, status, search)
}

func (s *eventService) Update(ctx context.Context, id int64, upd *domain.EventUpdate) (*domain.Event, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.TimeSlots != nil {
		e.TimeSlots = upd.TimeSlots
	}
	if upd.RoomNumber != nil {
		e.RoomNumber = *upd.RoomNumber
	}
	if upd.StudentReg != nil {
		e.StudentReg = *upd.StudentReg
	}
	if upd.Details != nil {
		e.Details = *upd.Details
	}

	if err := s.eventRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) RegisteredStudents(ctx context.Context, eventID int64, uids []int64) ([]domain.Student, error) {
	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	// The caller may narrow the list; default to the event's register.
	if len(uids) == 0 {
		uids = e.Registered
	}
	if len(uids) == 0 {
		return []domain.Student{}, nil
	}
	return s.studRepo.ListByUIDs(ctx, uids)
}
