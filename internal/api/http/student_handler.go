package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/service"

	"github.com/gorilla/mux"
)

type StudentHandler struct {
	students     service.StudentService
	recruitments service.RecruitmentService
	auth         service.AuthService
	cookies      cookieSettings
}

// cookieSettings carries the session cookie parameters the login
// handlers need.
type cookieSettings struct {
	ttl    time.Duration
	secure bool
}

func NewStudentHandler(students service.StudentService, recruitments service.RecruitmentService, auth service.AuthService, cookies cookieSettings) *StudentHandler {
	return &StudentHandler{
		students:     students,
		recruitments: recruitments,
		auth:         auth,
		cookies:      cookies,
	}
}

type studentRegisterRequest struct {
	UID      int64  `json:"uid"`
	Name     string `json:"uname"`
	DOB      string `json:"dob"`
	Email    string `json:"umail"`
	Mobile   string `json:"umobile"`
	Gender   string `json:"ugender"`
	Password string `json:"password"`
	Major    string `json:"major"`
	Semester string `json:"semester"`
}

func (h *StudentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req studentRegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	student := &domain.Student{
		UID:      req.UID,
		Name:     req.Name,
		DOB:      req.DOB,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Gender:   req.Gender,
		Major:    req.Major,
		Semester: req.Semester,
	}
	if err := h.students.Register(r.Context(), student, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Student registered successfully",
		"student": student,
	})
}

type studentLoginRequest struct {
	UID      int64  `json:"uid"`
	Password string `json:"password"`
}

func (h *StudentHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req studentLoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	student, token, err := h.auth.StudentLogin(r.Context(), req.UID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	setSessionCookie(w, token, h.cookies.ttl, h.cookies.secure)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"student": student,
	})
}

func (h *StudentHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *StudentHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	student, err := h.students.GetProfile(r.Context(), claims.PrincipalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"student":       student,
	})
}

func (h *StudentHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.students.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *StudentHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := h.ownStudentID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	student, err := h.students.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := h.ownStudentID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var upd domain.StudentUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, err)
		return
	}
	student, err := h.students.UpdateProfile(r.Context(), id, &upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"student": student,
	})
}

func (h *StudentHandler) Clubs(w http.ResponseWriter, r *http.Request) {
	id, err := h.ownStudentID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	clubs, err := h.students.MyClubs(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}

func (h *StudentHandler) MyClubs(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	clubs, err := h.students.MyClubs(r.Context(), claims.PrincipalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}

func (h *StudentHandler) SearchMyClubs(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	clubs, err := h.students.SearchMyClubs(r.Context(), claims.PrincipalID, r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}

func (h *StudentHandler) PendingCount(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	student, err := h.students.GetProfile(r.Context(), claims.PrincipalID)
	if err != nil {
		writeError(w, err)
		return
	}
	count, err := h.students.PendingApplicationCount(r.Context(), student.UID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"pendingCount": count})
}

type registerClubRequest struct {
	RecruitmentID int64 `json:"recruitmentId"`
}

func (h *StudentHandler) RegisterClub(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	var req registerClubRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	student, err := h.students.GetProfile(r.Context(), claims.PrincipalID)
	if err != nil {
		writeError(w, err)
		return
	}
	count, err := h.recruitments.Apply(r.Context(), req.RecruitmentID, student.UID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Application submitted successfully",
		"pendingCount": count,
	})
}

// ownStudentID parses the path id and checks it belongs to the session
// principal. Students may only read or edit their own record.
func (h *StudentHandler) ownStudentID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["studentId"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid student id", service.ErrInvalidInput)
	}
	claims, _ := PrincipalFrom(r.Context())
	if claims == nil || claims.PrincipalID != id {
		return 0, service.ErrForbidden
	}
	return id, nil
}
