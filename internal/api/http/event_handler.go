package http

import (
	"fmt"
	"net/http"
	"strconv"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/service"

	"github.com/gorilla/mux"
)

type EventHandler struct {
	events service.EventService
}

func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type bookEventRequest struct {
	ClubName   string   `json:"club_name"`
	Name       string   `json:"event_name"`
	Date       string   `json:"event_date"`
	TimeSlots  []string `json:"time_slots"`
	RoomNumber string   `json:"room_number"`
	StudentReg bool     `json:"std_reg"`
	Details    string   `json:"event_details"`
}

func (h *EventHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req bookEventRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event := &domain.Event{
		ClubName:   req.ClubName,
		Name:       req.Name,
		Date:       req.Date,
		TimeSlots:  req.TimeSlots,
		RoomNumber: req.RoomNumber,
		StudentReg: req.StudentReg,
		Details:    req.Details,
	}
	booked, err := h.events.Book(r.Context(), event)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Event booked successfully",
		"event":   booked,
	})
}

func (h *EventHandler) GetByBookingID(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetByBookingID(r.Context(), mux.Vars(r)["bookingId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListByClub(r.Context(), mux.Vars(r)["clubName"], r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.EventStatus(mux.Vars(r)["status"])
	events, err := h.events.ListByStatus(r.Context(), status, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	event, err := h.events.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var upd domain.EventUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, err)
		return
	}
	event, err := h.events.Update(r.Context(), id, &upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Event updated successfully",
		"event":   event,
	})
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.events.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Event deleted successfully")
}

type registeredStudentsRequest struct {
	UIDs []int64 `json:"uids"`
}

func (h *EventHandler) RegisteredStudents(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req registeredStudentsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	students, err := h.events.RegisteredStudents(r.Context(), id, req.UIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func eventID(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	raw, ok := vars["id"]
	if !ok {
		raw = vars["eventId"]
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid event id", service.ErrInvalidInput)
	}
	return id, nil
}
