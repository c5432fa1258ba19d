// Package server is the public-facing HTTP layer: account signup/login,
// provider listing, test-case generation, history, and spreadsheet downloads.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/casegen-ai/casegen/internal/ai"
	"github.com/casegen-ai/casegen/internal/auth"
	"github.com/casegen-ai/casegen/internal/store"
)

// Server holds the wired dependencies for every handler.
type Server struct {
	store     store.Store
	sessions  *auth.Sessions
	generator *ai.Generator

	maxUploadBytes int64
}

// New assembles a server. maxUploadBytes bounds request bodies on the
// generate endpoint.
func New(st store.Store, sessions *auth.Sessions, generator *ai.Generator, maxUploadBytes int64) *Server {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 16 << 20
	}
	return &Server{
		store:          st,
		sessions:       sessions,
		generator:      generator,
		maxUploadBytes: maxUploadBytes,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/signup", s.signup)
	mux.HandleFunc("POST /api/login", s.login)
	mux.HandleFunc("POST /api/logout", s.logout)
	mux.HandleFunc("GET /api/me", s.requireUser(s.me))

	mux.HandleFunc("GET /api/providers", s.listProviders)
	mux.HandleFunc("POST /api/generate", s.requireUser(s.generate))
	mux.HandleFunc("GET /api/generate/{id}", s.requireUser(s.getArtifact))

	mux.HandleFunc("GET /api/history", s.requireUser(s.history))
	mux.HandleFunc("DELETE /api/history/{id}", s.requireUser(s.deleteArtifact))
	mux.HandleFunc("GET /api/download/excel/{id}", s.requireUser(s.downloadExcel))
	mux.HandleFunc("GET /api/download/csv/{id}", s.requireUser(s.downloadCSV))

	mux.HandleFunc("GET /api/status", s.status)

	return cors(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutCtx)
	}()

	log.Info().Str("addr", addr).Msg("server online")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, map[string]any{
		"status":  "online",
		"version": "1.0.0",
	}, 200)
}

// ── Auth middleware ───────────────────────────────────────────────────────────

type userHandler func(w http.ResponseWriter, r *http.Request, user store.User)

// requireUser resolves the bearer token and rejects the request with 401
// when it is missing, unknown, or expired.
func (s *Server) requireUser(next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := s.sessions.Resolve(r.Context(), bearerToken(r))
		if err != nil {
			jsonErr(w, "Unauthorized", 401)
			return
		}
		next(w, r, user)
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonErr(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}
