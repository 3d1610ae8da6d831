package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"content_planner/planner"
)

// stepTimeout bounds a single generation call.
const stepTimeout = 120 * time.Second

// Server exposes the content-planner step endpoint family. Each endpoint
// accepts the step's request slice and answers {"<field>": {...}} on success
// or {"error": "..."} otherwise.
type Server struct {
	agent  *planner.Agent
	logger *zap.Logger
}

func New(agent *planner.Agent, logger *zap.Logger) (*Server, error) {
	if agent == nil {
		return nil, errors.New("planner agent required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{agent: agent, logger: logger}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/content-planner/analyze-brief", s.handleAnalyzeBrief)
	mux.HandleFunc("/api/content-planner/research-keywords", s.handleResearchKeywords)
	mux.HandleFunc("/api/content-planner/research-audience", s.handleResearchAudience)
	mux.HandleFunc("/api/content-planner/analyze-competitors", s.handleAnalyzeCompetitors)
	mux.HandleFunc("/api/content-planner/gather-sources", s.handleGatherSources)
	mux.HandleFunc("/api/content-planner/generate-outline", s.handleGenerateOutline)
	mux.HandleFunc("/api/content-planner/preview", s.handlePreview)
	return s.logMiddleware(mux)
}

// --- Handlers ---

func (s *Server) handleAnalyzeBrief(w http.ResponseWriter, r *http.Request) {
	var req planner.AnalyzeBriefRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), stepTimeout)
	defer cancel()
	brief, err := s.agent.AnalyzeBrief(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, planner.BriefResponse{Brief: brief})
}

func (s *Server) handleResearchKeywords(w http.ResponseWriter, r *http.Request) {
	var req planner.ResearchKeywordsRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), stepTimeout)
	defer cancel()
	keywords, err := s.agent.ResearchKeywords(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, planner.KeywordsResponse{Keywords: keywords})
}

func (s *Server) handleResearchAudience(w http.ResponseWriter, r *http.Request) {
	var req planner.ResearchAudienceRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), stepTimeout)
	defer cancel()
	audience, err := s.agent.ResearchAudience(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, planner.AudienceResponse{Audience: audience})
}

func (s *Server) handleAnalyzeCompetitors(w http.ResponseWriter, r *http.Request) {
	var req planner.AnalyzeCompetitorsRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), stepTimeout)
	defer cancel()
	competitors, err := s.agent.AnalyzeCompetitors(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, planner.CompetitorsResponse{Competitors: competitors})
}

func (s *Server) handleGatherSources(w http.ResponseWriter, r *http.Request) {
	var req planner.GatherSourcesRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), stepTimeout)
	defer cancel()
	sources, err := s.agent.GatherSources(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, planner.SourcesResponse{Sources: sources})
}

func (s *Server) handleGenerateOutline(w http.ResponseWriter, r *http.Request) {
	var req planner.GenerateOutlineRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), stepTimeout)
	defer cancel()
	outline, err := s.agent.GenerateOutline(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, planner.OutlineResponse{Outline: outline})
}

type previewReq struct {
	Markdown string `json:"markdown"`
}

type previewResp struct {
	HTML string `json:"html"`
}

// handlePreview renders a compiled help sheet to HTML for display.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewReq
	if !s.decode(w, r, &req) {
		return
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(req.Markdown), &buf); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, previewResp{HTML: buf.String()})
}

// --- Helpers ---

// decode enforces POST + JSON body; it answers the request itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		writeJSONStatus(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONStatus(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.logger.Warn("planner step failed", zap.Error(err))
	writeJSONStatus(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}
