package planner

import (
	"context"
	"errors"
)

// Agent runs one generation per planning step: build prompt, complete, parse.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

func (a *Agent) AnalyzeBrief(ctx context.Context, req AnalyzeBriefRequest) (*BriefAnalysis, error) {
	raw, err := a.llm.Complete(ctx, BuildBriefPrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseBrief(raw)
}

func (a *Agent) ResearchKeywords(ctx context.Context, req ResearchKeywordsRequest) (*KeywordResearch, error) {
	raw, err := a.llm.Complete(ctx, BuildKeywordsPrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseKeywords(raw)
}

func (a *Agent) ResearchAudience(ctx context.Context, req ResearchAudienceRequest) (*AudienceAnalysis, error) {
	raw, err := a.llm.Complete(ctx, BuildAudiencePrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseAudience(raw)
}

func (a *Agent) AnalyzeCompetitors(ctx context.Context, req AnalyzeCompetitorsRequest) (*CompetitiveAnalysis, error) {
	raw, err := a.llm.Complete(ctx, BuildCompetitorsPrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseCompetitors(raw)
}

func (a *Agent) GatherSources(ctx context.Context, req GatherSourcesRequest) (*SourcesResearch, error) {
	raw, err := a.llm.Complete(ctx, BuildSourcesPrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseSources(raw)
}

func (a *Agent) GenerateOutline(ctx context.Context, req GenerateOutlineRequest) (*HelpSheetOutline, error) {
	raw, err := a.llm.Complete(ctx, BuildOutlinePrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseOutline(raw)
}
