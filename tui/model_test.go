package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_planner/planner"
	"content_planner/wizard"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := wizard.NewStore(filepath.Join(t.TempDir(), "planner_state.json"), nil)
	state := store.Load()
	machine := wizard.NewMachine(state, wizard.NewStepClient("http://127.0.0.1:1"), store, nil)
	return NewModel(machine)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := newTestModel(t)
			var msg tea.KeyMsg
			if key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}
			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestKeysIgnoredWhileBusy(t *testing.T) {
	m := newTestModel(t)
	m.busy = true

	before := m.machine.State().CurrentStep
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "no request is dispatched while one is in flight")
	assert.Equal(t, before, updated.(Model).machine.State().CurrentStep)
}

func TestToggleFound(t *testing.T) {
	store := wizard.NewStore(filepath.Join(t.TempDir(), "planner_state.json"), nil)
	state := store.Load()
	state.Sources = &planner.SourcesResearch{
		Statistics:  []planner.ResearchItem{{ID: "a", Description: "stat"}},
		ExpertTypes: []planner.ResearchItem{{ID: "b", Description: "expert"}},
	}

	toggleFound(state, 1)
	assert.True(t, state.Sources.Statistics[0].Found)

	// Numbering continues into the next list.
	toggleFound(state, 2)
	assert.True(t, state.Sources.ExpertTypes[0].Found)
}

func TestStepIndicatorMarksProgress(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "Content Planner")
	assert.Contains(t, view, wizard.StepName(wizard.StepInput))
	assert.Contains(t, view, wizard.StepName(wizard.StepOutlineExport))
}
