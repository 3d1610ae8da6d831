package wizard

import (
	"fmt"
	"strings"

	"content_planner/planner"
)

// Wizard steps. The cursor moves forward one step per successful transition.
const (
	StepInput            = 1
	StepBrief            = 2
	StepKeywordsAudience = 3
	StepCompetitors      = 4
	StepSources          = 5
	StepOutlineExport    = 6

	StepMin = StepInput
	StepMax = StepOutlineExport
)

// SchemaVersion is written into every persisted state file. Hydration
// discards payloads written by a different schema rather than guessing.
const SchemaVersion = 1

// minSourceLen is the shortest source content that can seed a plan.
const minSourceLen = 50

// State is the single aggregate for one planning run. Loading and Err are
// session-transient and never persisted.
type State struct {
	SchemaVersion int `json:"schemaVersion"`
	CurrentStep   int `json:"currentStep"`

	Input       planner.ContentPlannerInput  `json:"input"`
	Brief       *planner.BriefAnalysis       `json:"brief,omitempty"`
	Keywords    *planner.KeywordResearch     `json:"keywords,omitempty"`
	Audience    *planner.AudienceAnalysis    `json:"audience,omitempty"`
	Competitors *planner.CompetitiveAnalysis `json:"competitors,omitempty"`
	Sources     *planner.SourcesResearch     `json:"sources,omitempty"`
	Outline     *planner.HelpSheetOutline    `json:"outline,omitempty"`

	CompiledHelpSheet    string   `json:"compiledHelpSheet,omitempty"`
	CustomCompetitorURLs []string `json:"customCompetitorUrls,omitempty"`

	Loading bool   `json:"-"`
	Err     string `json:"-"`
}

// NewState returns the empty aggregate positioned at the input step.
func NewState() *State {
	return &State{SchemaVersion: SchemaVersion, CurrentStep: StepInput}
}

// Reset clears everything back to a fresh run.
func (s *State) Reset() {
	*s = *NewState()
}

// StepName returns the display name of a step.
func StepName(step int) string {
	switch step {
	case StepInput:
		return "Input"
	case StepBrief:
		return "Brief"
	case StepKeywordsAudience:
		return "Keywords & Audience"
	case StepCompetitors:
		return "Competitors"
	case StepSources:
		return "Sources"
	case StepOutlineExport:
		return "Outline & Export"
	default:
		return fmt.Sprintf("Step %d", step)
	}
}

// StepCompleted reports whether the given step's output exists.
func (s *State) StepCompleted(step int) bool {
	switch step {
	case StepInput:
		return s.inputValid()
	case StepBrief:
		return s.Brief != nil
	case StepKeywordsAudience:
		return s.Keywords != nil && s.Audience != nil
	case StepCompetitors:
		return s.Competitors != nil
	case StepSources:
		return s.Sources != nil
	case StepOutlineExport:
		return s.Outline != nil
	default:
		return false
	}
}

// HighestReachable is the furthest step the cursor may sit on: one past the
// highest completed step, capped at the terminal step.
func (s *State) HighestReachable() int {
	reach := StepMin
	for step := StepMin; step <= StepMax; step++ {
		if !s.StepCompleted(step) {
			break
		}
		reach = step + 1
	}
	if reach > StepMax {
		reach = StepMax
	}
	return reach
}

func (s *State) inputValid() bool {
	return strings.TrimSpace(s.Input.WorkingTitle) != "" &&
		len(strings.TrimSpace(s.Input.SourceContent)) >= minSourceLen
}

// CanProceed reports whether the current step allows moving forward.
func (s *State) CanProceed() bool {
	if s.Loading || s.CurrentStep >= StepMax {
		return false
	}
	return s.StepCompleted(s.CurrentStep)
}

// GoToStep jumps to an already-reachable step.
func (s *State) GoToStep(step int) error {
	if step < StepMin || step > StepMax {
		return fmt.Errorf("step %d out of range", step)
	}
	if step > s.HighestReachable() {
		return fmt.Errorf("step %d not reachable yet", step)
	}
	s.CurrentStep = step
	return nil
}

// NextStep moves the cursor forward by one, never past the terminal step.
func (s *State) NextStep() {
	if s.CurrentStep < StepMax {
		s.CurrentStep++
	}
}

// PrevStep moves the cursor back by one, never before the first step.
func (s *State) PrevStep() {
	if s.CurrentStep > StepMin {
		s.CurrentStep--
	}
}

// ReadyToCompile reports whether every upstream result exists.
func (s *State) ReadyToCompile() bool {
	return s.Brief != nil && s.Keywords != nil && s.Audience != nil &&
		s.Competitors != nil && s.Sources != nil && s.Outline != nil
}
