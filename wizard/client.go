package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"content_planner/planner"
)

// Step endpoint paths, relative to the endpoint base.
const (
	pathAnalyzeBrief       = "/api/content-planner/analyze-brief"
	pathResearchKeywords   = "/api/content-planner/research-keywords"
	pathResearchAudience   = "/api/content-planner/research-audience"
	pathAnalyzeCompetitors = "/api/content-planner/analyze-competitors"
	pathGatherSources      = "/api/content-planner/gather-sources"
	pathGenerateOutline    = "/api/content-planner/generate-outline"
)

// StepClient talks to the step endpoint family. Responses carry either the
// step's result object or an error message; nothing is retried.
type StepClient struct {
	base string
	http *http.Client
}

func NewStepClient(base string) *StepClient {
	return &StepClient{
		base: base,
		http: &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *StepClient) post(ctx context.Context, path string, body, out any, fallback string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s", e.Error)
		}
		return fmt.Errorf("%s", fallback)
	}
	return json.Unmarshal(data, out)
}

func (c *StepClient) AnalyzeBrief(ctx context.Context, req planner.AnalyzeBriefRequest) (*planner.BriefAnalysis, error) {
	var resp planner.BriefResponse
	if err := c.post(ctx, pathAnalyzeBrief, req, &resp, "Failed to analyze brief"); err != nil {
		return nil, err
	}
	if resp.Brief == nil {
		return nil, errors.New("Failed to analyze brief")
	}
	return resp.Brief, nil
}

func (c *StepClient) ResearchKeywords(ctx context.Context, req planner.ResearchKeywordsRequest) (*planner.KeywordResearch, error) {
	var resp planner.KeywordsResponse
	if err := c.post(ctx, pathResearchKeywords, req, &resp, "Failed to research keywords"); err != nil {
		return nil, err
	}
	if resp.Keywords == nil {
		return nil, errors.New("Failed to research keywords")
	}
	return resp.Keywords, nil
}

func (c *StepClient) ResearchAudience(ctx context.Context, req planner.ResearchAudienceRequest) (*planner.AudienceAnalysis, error) {
	var resp planner.AudienceResponse
	if err := c.post(ctx, pathResearchAudience, req, &resp, "Failed to analyze audience"); err != nil {
		return nil, err
	}
	if resp.Audience == nil {
		return nil, errors.New("Failed to analyze audience")
	}
	return resp.Audience, nil
}

func (c *StepClient) AnalyzeCompetitors(ctx context.Context, req planner.AnalyzeCompetitorsRequest) (*planner.CompetitiveAnalysis, error) {
	var resp planner.CompetitorsResponse
	if err := c.post(ctx, pathAnalyzeCompetitors, req, &resp, "Failed to analyze competitors"); err != nil {
		return nil, err
	}
	if resp.Competitors == nil {
		return nil, errors.New("Failed to analyze competitors")
	}
	return resp.Competitors, nil
}

func (c *StepClient) GatherSources(ctx context.Context, req planner.GatherSourcesRequest) (*planner.SourcesResearch, error) {
	var resp planner.SourcesResponse
	if err := c.post(ctx, pathGatherSources, req, &resp, "Failed to gather sources"); err != nil {
		return nil, err
	}
	if resp.Sources == nil {
		return nil, errors.New("Failed to gather sources")
	}
	return resp.Sources, nil
}

func (c *StepClient) GenerateOutline(ctx context.Context, req planner.GenerateOutlineRequest) (*planner.HelpSheetOutline, error) {
	var resp planner.OutlineResponse
	if err := c.post(ctx, pathGenerateOutline, req, &resp, "Failed to generate outline"); err != nil {
		return nil, err
	}
	if resp.Outline == nil {
		return nil, errors.New("Failed to generate outline")
	}
	return resp.Outline, nil
}
