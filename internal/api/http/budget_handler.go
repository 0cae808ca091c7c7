package http

import (
	"net/http"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/service"

	"github.com/gorilla/mux"
)

type BudgetHandler struct {
	budgets service.BudgetService
}

func NewBudgetHandler(budgets service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

type submitBudgetRequest struct {
	Items []domain.BudgetItem `json:"items"`
}

func (h *BudgetHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req submitBudgetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	budget, created, err := h.budgets.Submit(r.Context(), id, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	msg := "Budget updated successfully"
	if created {
		status = http.StatusCreated
		msg = "Budget submitted successfully"
	}
	writeJSON(w, status, map[string]any{
		"message": msg,
		"budget":  budget,
	})
}

func (h *BudgetHandler) GetByEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	budget, err := h.budgets.GetByEventID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

func (h *BudgetHandler) GetByBookingID(w http.ResponseWriter, r *http.Request) {
	budget, err := h.budgets.GetByBookingID(r.Context(), mux.Vars(r)["bookingId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}
