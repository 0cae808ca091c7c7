package http

import (
	"fmt"
	"net/http"
	"strconv"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/service"

	"github.com/gorilla/mux"
)

type RecruitmentHandler struct {
	recruitments service.RecruitmentService
}

func NewRecruitmentHandler(recruitments service.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{recruitments: recruitments}
}

func (h *RecruitmentHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.ParseInt(mux.Vars(r)["clubId"], 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid club id", service.ErrInvalidInput))
		return
	}
	drives, err := h.recruitments.ListByClub(r.Context(), clubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drives)
}

type startRecruitmentRequest struct {
	Semester            string `json:"semester"`
	ApplicationDeadline string `json:"application_deadline"`
	Description         string `json:"description"`
}

func (h *RecruitmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	var req startRecruitmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rec, created, err := h.recruitments.Start(r.Context(), claims.PrincipalID, claims.Name, req.Semester, req.ApplicationDeadline, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	msg := "Recruitment reopened"
	if created {
		status = http.StatusCreated
		msg = "Recruitment started"
	}
	writeJSON(w, status, map[string]any{
		"message":     msg,
		"recruitment": rec,
	})
}

type stopRecruitmentRequest struct {
	Semester string `json:"semester"`
}

func (h *RecruitmentHandler) Stop(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	var req stopRecruitmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.recruitments.Stop(r.Context(), claims.PrincipalID, req.Semester); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Recruitment stopped")
}

func (h *RecruitmentHandler) Applicants(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clubID, err := strconv.ParseInt(vars["clubId"], 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid club id", service.ErrInvalidInput))
		return
	}
	applicants, err := h.recruitments.Applicants(r.Context(), clubID, vars["semester"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, applicants)
}

type evaluateRequest struct {
	ClubID   int64  `json:"clubId"`
	Semester string `json:"semester"`
	UID      int64  `json:"uid"`
	Action   string `json:"action"`
}

func (h *RecruitmentHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	var req evaluateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	// Clubs may only evaluate their own drives.
	if req.ClubID == 0 {
		req.ClubID = claims.PrincipalID
	}
	if req.ClubID != claims.PrincipalID {
		writeError(w, service.ErrForbidden)
		return
	}

	result, err := h.recruitments.Evaluate(r.Context(), req.ClubID, req.Semester, req.UID, domain.EvaluationAction(req.Action))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Student %s successfully", result.Action),
		"uid":     result.UID,
		"action":  result.Action,
	})
}

func (h *RecruitmentHandler) Active(w http.ResponseWriter, r *http.Request) {
	drives, err := h.recruitments.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drives)
}
