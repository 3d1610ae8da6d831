package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_planner/planner"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "planner_state.json"), nil)
}

func TestStoreRoundTrip(t *testing.T) {
	st := testStore(t)

	s := NewState()
	s.CurrentStep = StepCompetitors
	s.Input = planner.ContentPlannerInput{WorkingTitle: "My Title", SourceContent: strings.Repeat("x", 60), SEOImportant: true}
	s.Brief = &planner.BriefAnalysis{CoreMessage: "m", InScopeTopics: []string{"a", "b"}}
	s.Keywords = &planner.KeywordResearch{PrimaryKeyword: "k", SearchIntent: planner.IntentInformational}
	s.Audience = &planner.AudienceAnalysis{PersonaDescription: "p", KnowledgeLevel: planner.LevelBeginner}
	s.CustomCompetitorURLs = []string{"https://example.com"}
	// Transients in any combination must not survive persistence.
	s.Loading = true
	s.Err = "stale error"

	st.Save(s)
	got := st.Load()

	assert.Equal(t, s.CurrentStep, got.CurrentStep)
	assert.Equal(t, s.Input, got.Input)
	assert.Equal(t, s.Brief, got.Brief)
	assert.Equal(t, s.Keywords, got.Keywords)
	assert.Equal(t, s.Audience, got.Audience)
	assert.Equal(t, s.CustomCompetitorURLs, got.CustomCompetitorURLs)
	assert.False(t, got.Loading)
	assert.Empty(t, got.Err)
}

func TestStoreLoadMissingFile(t *testing.T) {
	st := testStore(t)
	got := st.Load()
	assert.Equal(t, NewState(), got)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner_state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got := NewStore(path, nil).Load()
	assert.Equal(t, NewState(), got, "unparseable state is swallowed, not fatal")
}

func TestStoreLoadSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner_state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schemaVersion": 99, "currentStep": 4}`), 0o644))

	got := NewStore(path, nil).Load()
	assert.Equal(t, NewState(), got, "foreign schema versions are discarded")
}

func TestStoreLoadClampsBadStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner_state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schemaVersion": 1, "currentStep": 42}`), 0o644))

	got := NewStore(path, nil).Load()
	assert.Equal(t, StepInput, got.CurrentStep)
}

func TestStoreClear(t *testing.T) {
	st := testStore(t)
	st.Save(NewState())
	st.Clear()
	_, err := os.Stat(st.path)
	assert.True(t, os.IsNotExist(err))

	st.Clear() // clearing twice is fine
}
