package domain

type BudgetStatus string

const (
	BudgetStatusPending  BudgetStatus = "pending"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
	BudgetStatusHold     BudgetStatus = "hold" // submitted, locked for editing
)

// ValidBudgetStatus reports whether s is one of the admin-settable
// budget statuses.
func ValidBudgetStatus(s BudgetStatus) bool {
	switch s {
	case BudgetStatusPending, BudgetStatusApproved, BudgetStatusRejected, BudgetStatusHold:
		return true
	}
	return false
}

// EventStatusFor maps a budget decision onto the status of the event
// the budget belongs to.
func (s BudgetStatus) EventStatusFor() EventStatus {
	switch s {
	case BudgetStatusApproved:
		return EventStatusApproved
	case BudgetStatusRejected:
		return EventStatusRejected
	case BudgetStatusHold:
		return EventStatusBudget
	default:
		return EventStatusPending
	}
}

type BudgetCategory string

const (
	BudgetCategoryFood      BudgetCategory = "Food"
	BudgetCategoryLogistic  BudgetCategory = "Logistic"
	BudgetCategoryTransport BudgetCategory = "Transport"
	BudgetCategoryOther     BudgetCategory = "Other"
)

// ValidBudgetCategory reports whether c is an accepted line-item
// category.
func ValidBudgetCategory(c BudgetCategory) bool {
	switch c {
	case BudgetCategoryFood, BudgetCategoryLogistic, BudgetCategoryTransport, BudgetCategoryOther:
		return true
	}
	return false
}

// BudgetItem is one line item of a budget. TotalPrice is always
// recomputed server-side as Quantity * UnitPrice.
type BudgetItem struct {
	Category   BudgetCategory `json:"category"`
	ItemName   string         `json:"item_name"`
	Quantity   int64          `json:"quantity"`
	UnitPrice  int64          `json:"unit_price"`
	TotalPrice int64          `json:"total_price"`
}

// Budget is the cost plan attached to an event booking, keyed by the
// event's booking UUID.
type Budget struct {
	ID          int64        `json:"id"`
	BookingID   string       `json:"booking_id"`
	EventName   string       `json:"event_name"`
	Items       []BudgetItem `json:"items"`
	TotalBudget int64        `json:"total_budget"`
	Status      BudgetStatus `json:"status"`
	CreatedOn   string       `json:"createdAt"`
	UpdatedOn   string       `json:"updatedAt"`
}
