package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Kennethenow1/Connect-Four-Game/internal/repository/postgres"
	"github.com/Kennethenow1/Connect-Four-Game/internal/transport/http/middleware"
	"github.com/Kennethenow1/Connect-Four-Game/pkg/auth"
)

type AuthHandler struct {
	UserRepo *postgres.UserRepo
	log      *zap.SugaredLogger
}

func NewAuthHandler(userRepo *postgres.UserRepo, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{UserRepo: userRepo, log: log}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	creds.Username = strings.TrimSpace(creds.Username)
	if len(creds.Username) < 3 || len(creds.Username) > 24 {
		writeError(w, http.StatusBadRequest, "username must be 3-24 characters")
		return
	}
	if err := auth.ValidatePasswordStrength(creds.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.UserRepo.GetUserByUsername(r.Context(), creds.Username)
	if err != nil {
		h.log.Errorw("register lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "username already taken")
		return
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		h.log.Errorw("password hash failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	userID, err := h.UserRepo.CreateUser(r.Context(), creds.Username, hash)
	if err != nil {
		h.log.Errorw("user create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	token, err := auth.GenerateAccessToken(userID, creds.Username)
	if err != nil {
		h.log.Errorw("token generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"token":    token,
		"id":       userID,
		"username": creds.Username,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.UserRepo.GetUserByUsername(r.Context(), strings.TrimSpace(creds.Username))
	if err != nil {
		h.log.Errorw("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if user == nil || !auth.CheckPasswordHash(creds.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := auth.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		h.log.Errorw("token generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user.UserResponse(),
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil || user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, user.UserResponse())
}

func (h *AuthHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.UserRepo.Leaderboard(r.Context(), 20)
	if err != nil {
		h.log.Errorw("leaderboard query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch leaderboard")
		return
	}
	if stats == nil {
		stats = []postgres.PlayerStats{}
	}
	writeJSON(w, http.StatusOK, stats)
}
