package http

import (
	"fmt"
	"net/http"
	"strconv"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/service"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	admins  service.AdminService
	auth    service.AuthService
	cookies cookieSettings
}

func NewAdminHandler(admins service.AdminService, auth service.AuthService, cookies cookieSettings) *AdminHandler {
	return &AdminHandler{
		admins:  admins,
		auth:    auth,
		cookies: cookies,
	}
}

type adminLoginRequest struct {
	AdminID  string `json:"adminId"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	admin, token, err := h.auth.AdminLogin(r.Context(), req.AdminID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	setSessionCookie(w, token, h.cookies.ttl, h.cookies.secure)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"admin":   admin,
	})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *AdminHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      claims.Name,
	})
}

func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	events, err := h.admins.ListEvents(r.Context(), q.Get("search"), q.Get("clubName"), domain.EventStatus(q.Get("status")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *AdminHandler) EventCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.admins.EventStatusCounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *AdminHandler) EventClubNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.admins.EventClubNames(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

type eventStatusRequest struct {
	Status   *string `json:"status"`
	Comments *string `json:"comments"`
}

func (h *AdminHandler) UpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req eventStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var status *domain.EventStatus
	if req.Status != nil {
		s := domain.EventStatus(*req.Status)
		status = &s
	}
	event, err := h.admins.UpdateEventStatus(r.Context(), id, status, req.Comments)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Event status updated",
		"event":   event,
	})
}

type budgetStatusRequest struct {
	Status   string  `json:"status"`
	Comments *string `json:"comments"`
}

func (h *AdminHandler) UpdateBudgetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req budgetStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event, budget, err := h.admins.UpdateBudgetStatus(r.Context(), id, domain.BudgetStatus(req.Status), req.Comments)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Budget status updated",
		"event":   event,
		"budget":  budget,
	})
}

func (h *AdminHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var recruiting *bool
	if raw := q.Get("recruiting"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, fmt.Errorf("%w: recruiting must be true or false", service.ErrInvalidInput))
			return
		}
		recruiting = &v
	}

	clubs, err := h.admins.ListClubs(r.Context(), q.Get("search"), recruiting)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}

func (h *AdminHandler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["clubId"], 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid club id", service.ErrInvalidInput))
		return
	}
	var upd domain.ClubAdminUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, err)
		return
	}
	club, err := h.admins.UpdateClub(r.Context(), id, &upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Club updated successfully",
		"club":    club,
	})
}

func (h *AdminHandler) StudentCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.admins.StudentCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *AdminHandler) ClubCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.admins.ClubCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *AdminHandler) RecentClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.admins.RecentClubs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}
