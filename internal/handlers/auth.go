package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/diewo77/go-quotes/auth"
	"github.com/diewo77/go-quotes/httpx"
	"github.com/diewo77/go-quotes/internal/models"
	"github.com/diewo77/go-quotes/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLen = 8

type AuthHandler struct {
	db       *gorm.DB
	sessions *auth.Sessions
}

func NewAuthHandler(db *gorm.DB, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions}
}

type signupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
	Website     string `json:"website"`
	Newsletter  *bool  `json:"newsletter"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	v := make(validation.Violations)
	validation.Required("email", req.Email, v)
	validation.MaxLen("email", req.Email, 255, v)
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		v["email"] = "invalid"
	}
	if len(req.Password) < minPasswordLen {
		v["password"] = "too_short"
	}
	for field, value := range map[string]string{"name": req.Name, "company_name": req.CompanyName, "role": req.Role, "website": req.Website} {
		validation.MaxLen(field, value, 255, v)
	}
	if !v.Empty() {
		writeError(w, r, v)
		return
	}

	var existing int64
	if err := h.db.WithContext(r.Context()).Model(&models.User{}).Where("email = ?", req.Email).Count(&existing).Error; err != nil {
		writeError(w, r, err)
		return
	}
	if existing > 0 {
		writeError(w, r, validation.Violations{"email": "already_taken"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user := models.User{
		Email:       req.Email,
		Password:    string(hashedPassword),
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Role:        req.Role,
		Website:     req.Website,
		Newsletter:  req.Newsletter == nil || *req.Newsletter,
	}
	if err := h.db.WithContext(r.Context()).Create(&user).Error; err != nil {
		writeError(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Uint("user_id", user.ID).Msg("user signed up")
	h.sessions.Create(w, user.ID)
	httpx.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	var user models.User
	err := h.db.WithContext(r.Context()).Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	} else if err != nil {
		writeError(w, r, err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}

	h.sessions.Create(w, user.ID)
	httpx.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the signed-in user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	var user models.User
	if err := h.db.WithContext(r.Context()).First(&user, uid).Error; err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// UserExists is the session verifier: the user behind a cookie must still exist.
func (h *AuthHandler) UserExists(ctx context.Context, uid uint) bool {
	var n int64
	if err := h.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", uid).Count(&n).Error; err != nil {
		return false
	}
	return n > 0
}
