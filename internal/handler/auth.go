package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"famorg/internal/middleware"
	"famorg/internal/session"
	"famorg/internal/store"
	"famorg/internal/validate"
)

// Login failures get one deliberately vague message so an attacker can't
// tell a wrong password from an unknown user or family.
const loginFailedMsg = "Login failed. Check your credentials."

type AuthHandler struct {
	users    *store.UserStore
	families *store.FamilyStore
	sessions *session.Manager
	guard    *middleware.LoginGuard
	logger   *slog.Logger
}

func NewAuthHandler(us *store.UserStore, fs *store.FamilyStore, sm *session.Manager, guard *middleware.LoginGuard, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:    us,
		families: fs,
		sessions: sm,
		guard:    guard,
		logger:   logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FamilyID string `json:"familyId"`
}

type loginResponse struct {
	Success    bool   `json:"success"`
	Token      string `json:"token,omitempty"`
	Username   string `json:"username,omitempty"`
	UserRole   string `json:"userrole,omitempty"`
	UserFamily string `json:"userfamily,omitempty"`
	Msg        string `json:"msg,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, loginResponse{Msg: "invalid JSON"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, loginResponse{Msg: "username and password are required"})
		return
	}

	// Lockout gate runs before any store access: a locked client is
	// turned away without a lookup.
	key := middleware.RealIP(r) + "|" + req.Username
	if ok, remaining := h.guard.Allow(key); !ok {
		writeJSON(w, http.StatusTooManyRequests, loginResponse{
			Msg: fmt.Sprintf("Too many failed attempts. Try again in %d seconds.", int(remaining.Seconds())+1),
		})
		return
	}

	user, err := h.users.GetByUsername(req.Username)
	if err != nil {
		h.logger.Error("login lookup", "error", err)
		writeJSON(w, http.StatusInternalServerError, loginResponse{Msg: "internal error"})
		return
	}

	if user == nil || user.FamilyID != req.FamilyID ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		h.guard.RecordFailure(key)
		writeJSON(w, http.StatusUnauthorized, loginResponse{Msg: loginFailedMsg})
		return
	}

	h.guard.RecordSuccess(key)

	token, err := h.sessions.Issue(session.Identity{
		Username: user.Username,
		Role:     user.Role,
		FamilyID: user.FamilyID,
	}, time.Now())
	if err != nil {
		h.logger.Error("issue token", "error", err)
		writeJSON(w, http.StatusInternalServerError, loginResponse{Msg: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success:    true,
		Token:      token,
		Username:   user.Username,
		UserRole:   user.Role,
		UserFamily: user.FamilyID,
	})
}

type registerRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	FamilyID     string `json:"familyId"`
	CreateFamily bool   `json:"createFamily"`
}

type registerResponse struct {
	Success  bool   `json:"success"`
	FamilyID string `json:"familyId,omitempty"`
	Msg      string `json:"msg,omitempty"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, registerResponse{Msg: "invalid JSON"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.FamilyID = strings.TrimSpace(req.FamilyID)

	var problems []string
	problems = append(problems, validate.Username(req.Username)...)
	problems = append(problems, validate.Password(req.Password)...)
	if !req.CreateFamily || req.FamilyID != "" {
		problems = append(problems, validate.FamilyID(req.FamilyID)...)
	}
	if len(problems) > 0 {
		writeJSON(w, http.StatusBadRequest, registerResponse{Msg: strings.Join(problems, "; ")})
		return
	}

	existing, err := h.users.GetByUsername(req.Username)
	if err != nil {
		h.logger.Error("register lookup", "error", err)
		writeJSON(w, http.StatusInternalServerError, registerResponse{Msg: "internal error"})
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusConflict, registerResponse{Msg: "Username is already taken."})
		return
	}

	familyID := req.FamilyID
	if req.CreateFamily {
		if familyID == "" {
			familyID = store.GenerateID()
		}
		taken, err := h.families.Exists(familyID)
		if err != nil {
			h.logger.Error("register family check", "error", err)
			writeJSON(w, http.StatusInternalServerError, registerResponse{Msg: "internal error"})
			return
		}
		if taken {
			writeJSON(w, http.StatusConflict, registerResponse{Msg: "Family ID is already taken."})
			return
		}
		if _, err := h.families.Create(familyID); err != nil {
			h.logger.Error("create family", "error", err)
			writeJSON(w, http.StatusInternalServerError, registerResponse{Msg: "internal error"})
			return
		}
	} else {
		found, err := h.families.Exists(familyID)
		if err != nil {
			h.logger.Error("register family check", "error", err)
			writeJSON(w, http.StatusInternalServerError, registerResponse{Msg: "internal error"})
			return
		}
		if !found {
			writeJSON(w, http.StatusBadRequest, registerResponse{Msg: "Family not found. Check the ID with a family member."})
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("hash password", "error", err)
		writeJSON(w, http.StatusInternalServerError, registerResponse{Msg: "internal error"})
		return
	}

	if _, err := h.users.Create(req.Username, string(hash), "member", familyID); err != nil {
		h.logger.Error("create user", "error", err)
		writeJSON(w, http.StatusInternalServerError, registerResponse{Msg: "internal error"})
		return
	}

	h.logger.Info("user registered", "username", req.Username, "family", familyID, "new_family", req.CreateFamily)
	writeJSON(w, http.StatusCreated, registerResponse{Success: true, FamilyID: familyID})
}
