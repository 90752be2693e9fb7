package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/GOPIVARDHAN1965/resumes/internal/generation"
	"github.com/GOPIVARDHAN1965/resumes/internal/ingest"
	"github.com/GOPIVARDHAN1965/resumes/internal/store"
	"github.com/GOPIVARDHAN1965/resumes/internal/trends"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GenerateRequest is the body for POST /api/generate. Exactly one of
// JobDescription and JobURL must be set.
type GenerateRequest struct {
	JobDescription string `json:"job_description" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL         string `json:"job_url" validate:"omitempty,url"`
	Company        string `json:"company"`
	Title          string `json:"title"`
	TopN           int    `json:"top_n" validate:"gte=0,lte=50"`
	ProjectTopN    int    `json:"project_top_n" validate:"gte=0,lte=50"`
	Track          bool   `json:"track"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jd := req.JobDescription
	if req.JobURL != "" {
		fetched, err := ingest.FetchURL(r.Context(), req.JobURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, err.Error())
			return
		}
		jd = fetched
	} else {
		normalized, err := ingest.Normalize(jd)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		jd = normalized
	}

	result, err := s.generator.Generate(r.Context(), jd, generation.Options{
		TopN:        req.TopN,
		ProjectTopN: req.ProjectTopN,
		Track:       req.Track,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Track && req.Company != "" {
		if _, err := s.store.TrackApplication(r.Context(), req.Company, req.Title,
			jd, result.Role, result.ATS.Percentage, result.SelectedBulletIDs); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.KeywordFrequencies(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"keywords": stats})
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	cutoff := time.Now().Add(-trendWindow)

	recent, err := s.store.KeywordsSince(r.Context(), cutoff)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	older, err := s.store.KeywordsBefore(r.Context(), cutoff)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"window_days": int(trendWindow.Hours() / 24),
		"emerging":    trends.Emerging(recent, older),
	})
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.store.Applications(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"applications": apps})
}

// OutcomeRequest is the body for POST /api/applications/{id}/outcome.
type OutcomeRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=interview offer rejected"`
}

func (s *Server) handleOutcome(w http.ResponseWriter, r *http.Request) {
	appID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid application id")
		return
	}

	var req OutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.UpdateApplicationOutcome(r.Context(), appID, req.Outcome); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// ensure the store satisfies both generator store interfaces.
var (
	_ generation.ProfileStore   = (*store.Store)(nil)
	_ generation.AnalyticsStore = (*store.Store)(nil)
)
