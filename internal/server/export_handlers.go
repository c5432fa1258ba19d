package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/casegen-ai/casegen/internal/ai"
	"github.com/casegen-ai/casegen/internal/export"
	"github.com/casegen-ai/casegen/internal/store"
)

func (s *Server) history(w http.ResponseWriter, r *http.Request, user store.User) {
	items, err := s.store.ListArtifacts(r.Context(), user.ID, 50)
	if err != nil {
		log.Error().Err(err).Msg("history lookup failed")
		jsonErr(w, "An error occurred", 500)
		return
	}

	history := make([]map[string]any, 0, len(items))
	for _, item := range items {
		history = append(history, map[string]any{
			"id":           item.ID,
			"filename":     item.Filename,
			"project_type": item.ProjectType,
			"created_at":   item.CreatedAt.Format(time.RFC3339),
		})
	}
	jsonOK(w, map[string]any{"history": history}, 200)
}

func (s *Server) deleteArtifact(w http.ResponseWriter, r *http.Request, user store.User) {
	err := s.store.DeleteArtifact(r.Context(), r.PathValue("id"), user.ID)
	if errors.Is(err, store.ErrNotFound) {
		jsonErr(w, "File not found", 404)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("artifact delete failed")
		jsonErr(w, "An error occurred", 500)
		return
	}
	jsonOK(w, map[string]string{"message": "File deleted successfully"}, 200)
}

// loadCases fetches an owned artifact and decodes its test cases.
func (s *Server) loadCases(w http.ResponseWriter, r *http.Request, user store.User) (store.Artifact, []ai.TestCase, bool) {
	artifact, err := s.store.ArtifactByID(r.Context(), r.PathValue("id"), user.ID)
	if errors.Is(err, store.ErrNotFound) {
		jsonErr(w, "File not found", 404)
		return store.Artifact{}, nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("artifact lookup failed")
		jsonErr(w, "An error occurred", 500)
		return store.Artifact{}, nil, false
	}

	var result ai.GenerationResult
	if err := json.Unmarshal(artifact.Result, &result); err != nil {
		jsonErr(w, "An error occurred", 500)
		return store.Artifact{}, nil, false
	}
	return artifact, result.TestCases, true
}

func (s *Server) downloadExcel(w http.ResponseWriter, r *http.Request, user store.User) {
	artifact, cases, ok := s.loadCases(w, r, user)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+artifact.Filename+`.xlsx"`)
	if err := export.Excel(w, cases); err != nil {
		log.Error().Err(err).Msg("excel export failed")
	}
}

func (s *Server) downloadCSV(w http.ResponseWriter, r *http.Request, user store.User) {
	artifact, cases, ok := s.loadCases(w, r, user)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+artifact.Filename+`.csv"`)
	if err := export.CSV(w, cases); err != nil {
		log.Error().Err(err).Msg("csv export failed")
	}
}
