package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/casegen-ai/casegen/internal/auth"
	"github.com/casegen-ai/casegen/internal/store"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type userView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func viewUser(u store.User) userView {
	return userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonErr(w, "invalid body", 400)
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	switch {
	case name == "":
		jsonErr(w, "Name is required", 400)
		return
	case email == "":
		jsonErr(w, "Email is required", 400)
		return
	case req.Password == "":
		jsonErr(w, "Password is required", 400)
		return
	case len(req.Password) < 6:
		jsonErr(w, "Password must be at least 6 characters", 400)
		return
	case !emailPattern.MatchString(email):
		jsonErr(w, "Invalid email format", 400)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		jsonErr(w, "An error occurred during signup", 500)
		return
	}

	user, err := s.store.CreateUser(r.Context(), name, email, hash)
	if errors.Is(err, store.ErrEmailTaken) {
		jsonErr(w, "Email already registered", 409)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("signup failed")
		jsonErr(w, "An error occurred during signup", 500)
		return
	}

	token, err := s.sessions.Issue(r.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Msg("session issue failed")
		jsonErr(w, "An error occurred during signup", 500)
		return
	}

	jsonOK(w, map[string]any{
		"message": "Account created successfully",
		"user":    viewUser(user),
		"token":   token,
	}, 201)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonErr(w, "invalid body", 400)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		jsonErr(w, "Email is required", 400)
		return
	}
	if req.Password == "" {
		jsonErr(w, "Password is required", 400)
		return
	}

	user, err := s.store.UserByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !auth.CheckPassword(req.Password, user.PasswordHash)) {
		jsonErr(w, "Invalid email or password", 401)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("login lookup failed")
		jsonErr(w, "An error occurred during login", 500)
		return
	}

	token, err := s.sessions.Issue(r.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Msg("session issue failed")
		jsonErr(w, "An error occurred during login", 500)
		return
	}

	jsonOK(w, map[string]any{
		"message": "Login successful",
		"user":    viewUser(user),
		"token":   token,
	}, 200)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		if err := s.sessions.Revoke(r.Context(), token); err != nil {
			log.Error().Err(err).Msg("logout failed")
		}
	}
	jsonOK(w, map[string]string{"message": "Logged out successfully"}, 200)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request, user store.User) {
	jsonOK(w, map[string]any{"user": viewUser(user)}, 200)
}
