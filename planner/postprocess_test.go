package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		out, err := extractJSON(`{"a": 1}`)
		require.NoError(t, err)
		assert.Equal(t, `{"a": 1}`, out)
	})

	t.Run("fenced object", func(t *testing.T) {
		out, err := extractJSON("```json\n{\"a\": 1}\n```")
		require.NoError(t, err)
		assert.Equal(t, `{"a": 1}`, out)
	})

	t.Run("leading prose", func(t *testing.T) {
		out, err := extractJSON("Here is the analysis:\n{\"a\": 1}")
		require.NoError(t, err)
		assert.Equal(t, `{"a": 1}`, out)
	})

	t.Run("empty output", func(t *testing.T) {
		_, err := extractJSON("   ")
		assert.Error(t, err)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := extractJSON("sorry, I cannot help with that")
		assert.Error(t, err)
	})

	t.Run("broken json", func(t *testing.T) {
		_, err := extractJSON(`{"a": `)
		assert.Error(t, err)
	})
}

func TestParseBrief(t *testing.T) {
	raw := `{"coreMessage": "m", "inScopeTopics": ["a"], "outOfScopeTopics": [], "desiredOutcome": "o", "formatRecommendation": "f"}`
	b, err := ParseBrief(raw)
	require.NoError(t, err)
	assert.Equal(t, "m", b.CoreMessage)
	assert.Equal(t, []string{"a"}, b.InScopeTopics)

	_, err = ParseBrief(`{"inScopeTopics": ["a"]}`)
	assert.Error(t, err, "coreMessage is required")

	_, err = ParseBrief(`{"coreMessage": "m"}`)
	assert.Error(t, err, "inScopeTopics is required")
}

func TestParseKeywords_NormalizesIntent(t *testing.T) {
	cases := []struct {
		name   string
		intent string
		want   string
	}{
		{"valid lowercase", "transactional", IntentTransactional},
		{"valid mixed case", "Commercial", IntentCommercial},
		{"unknown falls back", "curious", IntentInformational},
		{"empty falls back", "", IntentInformational},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := ParseKeywords(`{"primaryKeyword": "k", "searchIntent": "` + tc.intent + `"}`)
			require.NoError(t, err)
			assert.Equal(t, tc.want, k.SearchIntent)
		})
	}

	_, err := ParseKeywords(`{"searchIntent": "informational"}`)
	assert.Error(t, err, "primaryKeyword is required")
}

func TestParseAudience_NormalizesLevel(t *testing.T) {
	a, err := ParseAudience(`{"personaDescription": "p", "knowledgeLevel": "Expert"}`)
	require.NoError(t, err)
	assert.Equal(t, LevelExpert, a.KnowledgeLevel)

	a, err = ParseAudience(`{"personaDescription": "p", "knowledgeLevel": "wizard"}`)
	require.NoError(t, err)
	assert.Equal(t, LevelIntermediate, a.KnowledgeLevel)
}

func TestParseSources(t *testing.T) {
	raw := `{
		"statistics": [{"description": "s1", "found": true, "notes": "model-invented"}],
		"expertTypes": [{"description": "e1"}],
		"credibilityBoosters": [],
		"researchQuestions": [{"description": "q1", "aiFindings": {"summary": "sum", "sources": [{"title": "t", "url": "u"}]}}]
	}`
	s, err := ParseSources(raw)
	require.NoError(t, err)

	t.Run("items get ids", func(t *testing.T) {
		assert.NotEmpty(t, s.Statistics[0].ID)
		assert.NotEmpty(t, s.ExpertTypes[0].ID)
		assert.NotEmpty(t, s.ResearchQuestions[0].ID)
		assert.NotEqual(t, s.Statistics[0].ID, s.ExpertTypes[0].ID)
	})

	t.Run("bookkeeping cleared", func(t *testing.T) {
		assert.False(t, s.Statistics[0].Found, "found state belongs to the user, not the model")
		assert.Empty(t, s.Statistics[0].Notes)
	})

	t.Run("findings preserved", func(t *testing.T) {
		require.NotNil(t, s.ResearchQuestions[0].AIFindings)
		assert.Equal(t, "sum", s.ResearchQuestions[0].AIFindings.Summary)
	})

	_, err = ParseSources(`{"statistics": [], "expertTypes": [], "credibilityBoosters": [], "researchQuestions": []}`)
	assert.Error(t, err, "all-empty checklists are rejected")
}

func TestParseOutline(t *testing.T) {
	o, err := ParseOutline(`{"sections": [{"heading": "h", "purpose": "p", "keyPoints": ["k"], "evidencePlacement": "e", "suggestedWordCount": 300}]}`)
	require.NoError(t, err)
	require.Len(t, o.Sections, 1)
	assert.NotEmpty(t, o.Sections[0].ID)

	_, err = ParseOutline(`{"sections": []}`)
	assert.Error(t, err)

	_, err = ParseOutline(`{"sections": [{"purpose": "p"}]}`)
	assert.Error(t, err, "heading is required")

	o, err = ParseOutline(`{"sections": [{"heading": "h", "suggestedWordCount": -10}]}`)
	require.NoError(t, err)
	assert.Equal(t, 0, o.Sections[0].SuggestedWordCount)
}
