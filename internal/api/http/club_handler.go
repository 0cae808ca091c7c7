package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/logger"
	"clubsync-backend/internal/service"
	"clubsync-backend/internal/storage"

	"github.com/gorilla/mux"
)

type ClubHandler struct {
	clubs       service.ClubService
	auth        service.AuthService
	logos       storage.LogoStore
	maxLogoSize int64
	cookies     cookieSettings
}

func NewClubHandler(clubs service.ClubService, auth service.AuthService, logos storage.LogoStore, maxLogoSizeMB int64, cookies cookieSettings) *ClubHandler {
	return &ClubHandler{
		clubs:       clubs,
		auth:        auth,
		logos:       logos,
		maxLogoSize: maxLogoSizeMB << 20,
		cookies:     cookies,
	}
}

type clubRegisterRequest struct {
	CID         int64  `json:"cid"`
	Name        string `json:"cname"`
	AdvisorName string `json:"caname"`
	President   string `json:"cpname"`
	ShortName   string `json:"cshortname"`
	Email       string `json:"cmail"`
	Mobile      string `json:"cmobile"`
	Password    string `json:"password"`
	Description string `json:"cdescription"`
	FoundedOn   string `json:"cdate"`
	Social      string `json:"csocial"`
}

func (h *ClubHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req clubRegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	club := &domain.Club{
		CID:         req.CID,
		Name:        req.Name,
		AdvisorName: req.AdvisorName,
		President:   req.President,
		ShortName:   req.ShortName,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Description: req.Description,
		Social:      req.Social,
	}
	if req.FoundedOn != "" {
		club.FoundedOn = &req.FoundedOn
	}
	if err := h.clubs.Register(r.Context(), club, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Club registered successfully",
		"club":    club,
	})
}

type clubLoginRequest struct {
	CID      int64  `json:"cid"`
	Password string `json:"password"`
}

func (h *ClubHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req clubLoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	club, token, err := h.auth.ClubLogin(r.Context(), req.CID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	setSessionCookie(w, token, h.cookies.ttl, h.cookies.secure)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"club":    club,
	})
}

func (h *ClubHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *ClubHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	dash, err := h.clubs.Dashboard(r.Context(), claims.PrincipalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubs.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}

func (h *ClubHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.clubs.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *ClubHandler) Recent(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubs.ListRecent(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}

func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.ParseInt(mux.Vars(r)["cid"], 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid club id", service.ErrInvalidInput))
		return
	}
	club, err := h.clubs.GetByCID(r.Context(), cid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

// Edit updates the club's own profile. The body is multipart form data
// so a logo file can ride along; cid, cname and cshortname are
// protected and ignored if sent.
func (h *ClubHandler) Edit(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.ParseInt(mux.Vars(r)["cid"], 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid club id", service.ErrInvalidInput))
		return
	}

	claims, _ := PrincipalFrom(r.Context())
	club, err := h.clubs.GetByCID(r.Context(), cid)
	if err != nil {
		writeError(w, err)
		return
	}
	if claims == nil || claims.PrincipalID != club.ID {
		writeError(w, service.ErrForbidden)
		return
	}

	if err := r.ParseMultipartForm(h.maxLogoSize); err != nil {
		writeError(w, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return
	}

	upd := clubUpdateFromForm(r)

	// Optional logo upload replaces the stored file.
	if file, header, ferr := r.FormFile("clogo"); ferr == nil {
		defer file.Close()
		url, serr := h.logos.Save(cid, header.Filename, file)
		if serr != nil {
			writeError(w, fmt.Errorf("%w: %v", service.ErrInvalidInput, serr))
			return
		}
		if old := logoKeyFromURL(club.LogoURL); old != "" {
			if derr := h.logos.Delete(old); derr != nil {
				logger.Warn("failed to delete old logo", "club", cid, "error", derr)
			}
		}
		upd.LogoURL = &url
	}

	updated, err := h.clubs.UpdateProfile(r.Context(), cid, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Club updated successfully",
		"club":    updated,
	})
}

func (h *ClubHandler) Members(w http.ResponseWriter, r *http.Request) {
	claims, _ := PrincipalFrom(r.Context())
	members, total, err := h.clubs.Members(r.Context(), claims.PrincipalID, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"members":      members,
		"totalMembers": total,
	})
}

// ServeLogo streams a stored logo file.
func (h *ClubHandler) ServeLogo(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["file"]
	file, err := h.logos.Open(key)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "logo not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch {
	case strings.HasSuffix(key, ".jpg"), strings.HasSuffix(key, ".jpeg"):
		contentType = "image/jpeg"
	case strings.HasSuffix(key, ".png"):
		contentType = "image/png"
	case strings.HasSuffix(key, ".gif"):
		contentType = "image/gif"
	case strings.HasSuffix(key, ".webp"):
		contentType = "image/webp"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}

// clubUpdateFromForm builds the allow-listed update from form values.
func clubUpdateFromForm(r *http.Request) *domain.ClubUpdate {
	upd := &domain.ClubUpdate{}
	set := func(dst **string, field string) {
		if vals, ok := r.MultipartForm.Value[field]; ok && len(vals) > 0 {
			v := vals[0]
			*dst = &v
		}
	}
	set(&upd.AdvisorName, "caname")
	set(&upd.President, "cpname")
	set(&upd.Email, "cmail")
	set(&upd.Mobile, "cmobile")
	set(&upd.Description, "cdescription")
	set(&upd.FoundedOn, "cdate")
	set(&upd.Achievement, "cachievement")
	set(&upd.Social, "csocial")
	return upd
}

// logoKeyFromURL recovers the stored file name from a logo URL.
func logoKeyFromURL(url string) string {
	const marker = "/uploads/logos/"
	idx := strings.LastIndex(url, marker)
	if idx < 0 {
		return ""
	}
	return url[idx+len(marker):]
}
