package domain

type EventStatus string

const (
	EventStatusPending  EventStatus = "Pending"
	EventStatusApproved EventStatus = "Approved"
	EventStatusRejected EventStatus = "Rejected"
	EventStatusBudget   EventStatus = "Budget" // budget submitted, awaiting admin review
)

// ValidEventStatus reports whether s is one of the admin-settable
// event statuses.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusPending, EventStatusApproved, EventStatusRejected, EventStatusBudget:
		return true
	}
	return false
}

// Event is a room booking made by a club. BookingID is a UUID; EID is
// the short human-facing event number, unique across events.
type Event struct {
	ID         int64       `json:"id"`
	BookingID  string      `json:"booking_id"`
	EID        string      `json:"eid"`
	ClubName   string      `json:"club_name"`
	Name       string      `json:"event_name"`
	Date       string      `json:"event_date"`
	TimeSlots  []string    `json:"time_slots"`
	RoomNumber string      `json:"room_number"`
	StudentReg bool        `json:"std_reg"` // whether students may register
	Registered []int64     `json:"reg_std"` // registered student UIDs
	Details    string      `json:"event_details"`
	Status     EventStatus `json:"status"`
	Comments   string      `json:"comments"`
	CreatedOn  string      `json:"createdAt"`
}

// EventUpdate carries the fields a club may edit on its own event.
type EventUpdate struct {
	Name       *string  `json:"event_name,omitempty"`
	Date       *string  `json:"event_date,omitempty"`
	TimeSlots  []string `json:"time_slots,omitempty"`
	RoomNumber *string  `json:"room_number,omitempty"`
	StudentReg *bool    `json:"std_reg,omitempty"`
	Details    *string  `json:"event_details,omitempty"`
}
