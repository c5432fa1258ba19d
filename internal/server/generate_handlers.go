package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/casegen-ai/casegen/internal/ai"
	"github.com/casegen-ai/casegen/internal/extract"
	"github.com/casegen-ai/casegen/internal/store"
)

func (s *Server) listProviders(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, map[string]any{
		"providers": s.generator.Registry().Available(),
		"default":   s.generator.Registry().Default(),
	}, 200)
}

// generateRequest is the merged view of the JSON and multipart forms the
// generate endpoint accepts.
type generateRequest struct {
	Requirements string
	ProjectType  string
	Provider     string
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, user store.User) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	req, err := s.readGenerateRequest(r)
	if err != nil {
		jsonErr(w, err.Error(), 400)
		return
	}
	if req.Requirements == "" {
		jsonErr(w, "Requirements are required", 400)
		return
	}

	projectType := ai.NormalizeProjectType(req.ProjectType)
	result := s.generator.Generate(r.Context(), req.Requirements, projectType, req.Provider)

	log.Info().
		Int64("user", user.ID).
		Str("provider", result.Provider).
		Int("cases", len(result.TestCases)).
		Msg("generated test cases")

	payload, err := json.Marshal(result)
	if err != nil {
		jsonErr(w, "An error occurred during test case generation", 500)
		return
	}

	artifact := store.Artifact{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Filename:     fmt.Sprintf("test_cases_%s_%s", strings.ToLower(projectType), time.Now().Format("20060102_150405")),
		Requirements: truncate(req.Requirements, 1000),
		Result:       payload,
		ProjectType:  projectType,
		CreatedAt:    time.Now(),
	}
	if err := s.store.SaveArtifact(r.Context(), artifact); err != nil {
		log.Error().Err(err).Msg("artifact save failed")
		jsonErr(w, "An error occurred during test case generation", 500)
		return
	}

	resp := map[string]any{
		"success":    true,
		"file_id":    artifact.ID,
		"filename":   artifact.Filename,
		"test_cases": result.TestCases,
		"summary":    result.Summary,
		"provider":   result.Provider,
	}
	if result.Note != "" {
		resp["note"] = result.Note
	}
	if result.Error != "" {
		resp["error"] = result.Error
	}
	jsonOK(w, resp, 200)
}

// readGenerateRequest accepts either a JSON body or a multipart form with an
// optional requirements document. File text, when present, wins over typed
// requirements.
func (s *Server) readGenerateRequest(r *http.Request) (generateRequest, error) {
	var req generateRequest

	if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
			return req, fmt.Errorf("invalid form data")
		}
		req.Requirements = strings.TrimSpace(r.FormValue("requirements"))
		req.ProjectType = r.FormValue("project_type")
		req.Provider = r.FormValue("ai_provider")

		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			text, err := extractUpload(file, header.Filename)
			if err != nil {
				return req, err
			}
			req.Requirements = strings.TrimSpace(text)
		}
		return req, nil
	}

	var body struct {
		Requirements string `json:"requirements"`
		ProjectType  string `json:"project_type"`
		Provider     string `json:"ai_provider"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return req, fmt.Errorf("invalid body")
	}
	req.Requirements = strings.TrimSpace(body.Requirements)
	req.ProjectType = body.ProjectType
	req.Provider = body.Provider
	return req, nil
}

// extractUpload spools the upload to a temp file and runs text extraction on
// it. The temp file is always removed.
func extractUpload(file io.Reader, filename string) (string, error) {
	if !extract.AllowedFilename(filename) {
		return "", fmt.Errorf("Invalid file type. Allowed: PDF, DOCX, TXT")
	}

	tmp, err := os.CreateTemp("", "upload-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return "", fmt.Errorf("could not process upload")
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return "", fmt.Errorf("could not process upload")
	}
	tmp.Close()

	text, err := extract.Text(tmp.Name())
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("text extraction failed")
		return "", fmt.Errorf("could not extract text from %s", filename)
	}
	return text, nil
}

func (s *Server) getArtifact(w http.ResponseWriter, r *http.Request, user store.User) {
	artifact, err := s.store.ArtifactByID(r.Context(), r.PathValue("id"), user.ID)
	if errors.Is(err, store.ErrNotFound) {
		jsonErr(w, "File not found", 404)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("artifact lookup failed")
		jsonErr(w, "An error occurred", 500)
		return
	}

	var result ai.GenerationResult
	if err := json.Unmarshal(artifact.Result, &result); err != nil {
		jsonErr(w, "An error occurred", 500)
		return
	}

	jsonOK(w, map[string]any{
		"id":           artifact.ID,
		"filename":     artifact.Filename,
		"requirements": artifact.Requirements,
		"test_cases":   result.TestCases,
		"summary":      result.Summary,
		"project_type": artifact.ProjectType,
		"created_at":   artifact.CreatedAt.Format(time.RFC3339),
	}, 200)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
