package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/interview-prep/internal/highlight"
	"github.com/jonathan/interview-prep/internal/types"
)

// maxJSONBytes bounds JSON request bodies.
const maxJSONBytes = 1 << 20

// StageInfo describes one interview stage
type StageInfo struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// StagesResponse represents the response for /api/stages
type StagesResponse struct {
	Stages []StageInfo `json:"stages"`
}

// BundleResponse represents the response for /api/bundle
type BundleResponse struct {
	*types.Bundle
	FAQs []types.FAQ `json:"faqs"`
}

// HighlightRequest represents the request body for /api/highlight.
// Keywords take precedence; Stage supplies its cover keywords when Keywords is empty.
type HighlightRequest struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords,omitempty"`
	Stage    string   `json:"stage,omitempty"`
}

// HighlightResponse represents the response for /api/highlight
type HighlightResponse struct {
	Segments []types.Segment `json:"segments"`
	Matches  []string        `json:"matches"`
}

// handleStages lists the interview stages in display order.
func (s *Server) handleStages(w http.ResponseWriter, _ *http.Request) {
	resp := StagesResponse{Stages: make([]StageInfo, 0, len(types.Stages()))}
	for _, stage := range types.Stages() {
		resp.Stages = append(resp.Stages, StageInfo{Name: stage.String(), Slug: stage.Slug()})
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleBundle generates the bundle for ?stage= and the optional ?job_title=.
func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("stage") == "" {
		err := &ErrValidation{Field: "stage", Message: "is required"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	stage, err := types.ParseStage(query.Get("stage"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	bundle, err := s.content.Generate(stage, query.Get("job_title"))
	if err != nil {
		s.log.Error("failed to generate bundle", "error", err, "stage", stage)
		s.errorResponse(w, HTTPStatus(err), "interview content is unavailable")
		return
	}
	faqs, err := s.content.FAQs(stage)
	if err != nil {
		s.log.Error("failed to load FAQs", "error", err, "stage", stage)
		s.errorResponse(w, HTTPStatus(err), "interview content is unavailable")
		return
	}

	s.jsonResponse(w, http.StatusOK, BundleResponse{Bundle: bundle, FAQs: faqs})
}

// handleHighlight splits text into matched and unmatched segments.
func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)

	var req HighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		s.errorResponse(w, status, "Invalid request body: "+err.Error())
		return
	}

	keywords := req.Keywords
	if len(keywords) == 0 && req.Stage != "" {
		stage, err := types.ParseStage(req.Stage)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		entry, err := s.content.Lookup(stage)
		if err != nil {
			s.log.Error("failed to look up stage content", "error", err, "stage", stage)
			s.errorResponse(w, HTTPStatus(err), "interview content is unavailable")
			return
		}
		keywords = entry.Keywords
	}

	segments := highlight.Highlight(req.Text, keywords)
	if segments == nil {
		segments = []types.Segment{}
	}
	matches := highlight.Matches(segments)
	if matches == nil {
		matches = []string{}
	}

	s.jsonResponse(w, http.StatusOK, HighlightResponse{Segments: segments, Matches: matches})
}
