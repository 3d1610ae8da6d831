package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// extractJSON pulls the JSON object out of a raw completion. Models keep
// wrapping output in code fences despite instructions, so fences and leading
// prose are tolerated.
func extractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errors.New("model returned empty output")
	}
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", errors.New("no JSON object in model output")
	}
	s = s[start : end+1]
	if !gjson.Valid(s) {
		return "", errors.New("model output is not valid JSON")
	}
	return s, nil
}

func decodeInto(raw string, v any) error {
	body, err := extractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}

// ParseBrief validates and normalizes a brief-analysis completion.
func ParseBrief(raw string) (*BriefAnalysis, error) {
	var b BriefAnalysis
	if err := decodeInto(raw, &b); err != nil {
		return nil, err
	}
	if b.CoreMessage == "" {
		return nil, errors.New("brief missing coreMessage")
	}
	if len(b.InScopeTopics) == 0 {
		return nil, errors.New("brief missing inScopeTopics")
	}
	return &b, nil
}

func ParseKeywords(raw string) (*KeywordResearch, error) {
	var k KeywordResearch
	if err := decodeInto(raw, &k); err != nil {
		return nil, err
	}
	if k.PrimaryKeyword == "" {
		return nil, errors.New("keyword research missing primaryKeyword")
	}
	switch strings.ToLower(k.SearchIntent) {
	case IntentInformational, IntentTransactional, IntentNavigational, IntentCommercial:
		k.SearchIntent = strings.ToLower(k.SearchIntent)
	default:
		k.SearchIntent = IntentInformational
	}
	return &k, nil
}

func ParseAudience(raw string) (*AudienceAnalysis, error) {
	var a AudienceAnalysis
	if err := decodeInto(raw, &a); err != nil {
		return nil, err
	}
	if a.PersonaDescription == "" {
		return nil, errors.New("audience analysis missing personaDescription")
	}
	switch strings.ToLower(a.KnowledgeLevel) {
	case LevelBeginner, LevelIntermediate, LevelExpert:
		a.KnowledgeLevel = strings.ToLower(a.KnowledgeLevel)
	default:
		a.KnowledgeLevel = LevelIntermediate
	}
	return &a, nil
}

func ParseCompetitors(raw string) (*CompetitiveAnalysis, error) {
	var c CompetitiveAnalysis
	if err := decodeInto(raw, &c); err != nil {
		return nil, err
	}
	if c.UniqueAngle == "" {
		return nil, errors.New("competitive analysis missing uniqueAngle")
	}
	return &c, nil
}

// ParseSources additionally assigns ids to checklist items and clears any
// bookkeeping fields the model may have invented; found state belongs to the user.
func ParseSources(raw string) (*SourcesResearch, error) {
	var s SourcesResearch
	if err := decodeInto(raw, &s); err != nil {
		return nil, err
	}
	total := len(s.Statistics) + len(s.ExpertTypes) + len(s.CredibilityBoosters) + len(s.ResearchQuestions)
	if total == 0 {
		return nil, errors.New("sources research has no checklist items")
	}
	for _, list := range [][]ResearchItem{s.Statistics, s.ExpertTypes, s.CredibilityBoosters, s.ResearchQuestions} {
		for i := range list {
			list[i].ID = uuid.NewString()
			list[i].Found = false
			list[i].Notes = ""
		}
	}
	return &s, nil
}

func ParseOutline(raw string) (*HelpSheetOutline, error) {
	var o HelpSheetOutline
	if err := decodeInto(raw, &o); err != nil {
		return nil, err
	}
	if len(o.Sections) == 0 {
		return nil, errors.New("outline has no sections")
	}
	for i := range o.Sections {
		o.Sections[i].ID = uuid.NewString()
		if o.Sections[i].Heading == "" {
			return nil, fmt.Errorf("outline section %d missing heading", i+1)
		}
		if o.Sections[i].SuggestedWordCount < 0 {
			o.Sections[i].SuggestedWordCount = 0
		}
	}
	return &o, nil
}
