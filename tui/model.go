package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"content_planner/planner"
	"content_planner/wizard"
)

// stepDoneMsg reports the outcome of a transition or regenerate run.
type stepDoneMsg struct {
	err error
}

// copiedMsg reports a clipboard or file export outcome.
type copiedMsg struct {
	note string
	err  error
}

// Model drives the six-step wizard. One request may be in flight at a time;
// while it runs every interactive key is ignored, mirroring the single
// shared loading flag.
type Model struct {
	machine *wizard.Machine
	spin    spinner.Model
	width   int
	status  string
	busy    bool
	quit    bool
}

func NewModel(machine *wizard.Machine) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{machine: machine, spin: sp, width: 80}
}

func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case stepDoneMsg:
		m.busy = false
		if msg.err == nil {
			m.status = ""
		}
		return m, nil

	case copiedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = msg.note
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" || key == "q" {
		m.quit = true
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	state := m.machine.State()
	switch msg.String() {
	case "enter":
		if cmd := m.transitionCmd(state.CurrentStep); cmd != nil {
			m.busy = true
			m.status = ""
			return m, cmd
		}
	case "r":
		if cmd := m.regenerateCmd(state.CurrentStep); cmd != nil {
			m.busy = true
			m.status = ""
			return m, cmd
		}
	case "left", "h":
		state.PrevStep()
		m.machine.SaveEdits()
	case "right", "l":
		if state.CurrentStep < state.HighestReachable() {
			state.NextStep()
			m.machine.SaveEdits()
		}
	case "c":
		if state.CurrentStep == wizard.StepOutlineExport {
			if _, err := m.machine.Compile(); err == nil {
				m.status = "recompiled"
			}
		}
	case "y":
		if state.CompiledHelpSheet != "" {
			m.busy = true
			return m, func() tea.Msg {
				if err := state.CopyToClipboard(); err != nil {
					return copiedMsg{err: err}
				}
				return copiedMsg{note: "help sheet copied to clipboard"}
			}
		}
	case "s":
		if state.CompiledHelpSheet != "" {
			m.busy = true
			return m, func() tea.Msg {
				path, err := state.WriteFile("")
				if err != nil {
					return copiedMsg{err: err}
				}
				return copiedMsg{note: "saved " + path}
			}
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if state.CurrentStep == wizard.StepSources && state.Sources != nil {
			toggleFound(state, int(msg.String()[0]-'0'))
			m.machine.SaveEdits()
		}
	}
	return m, nil
}

// transitionCmd maps the cursor position to the transition that runs from it.
func (m Model) transitionCmd(step int) tea.Cmd {
	run := func(fn func(context.Context) error) tea.Cmd {
		return func() tea.Msg {
			return stepDoneMsg{err: fn(context.Background())}
		}
	}
	switch step {
	case wizard.StepInput:
		return run(m.machine.AnalyzeBrief)
	case wizard.StepBrief:
		return run(m.machine.ResearchKeywordsAudience)
	case wizard.StepKeywordsAudience:
		return run(m.machine.AnalyzeCompetitors)
	case wizard.StepCompetitors:
		return run(m.machine.GatherSources)
	case wizard.StepSources:
		return run(m.machine.GenerateOutline)
	default:
		return nil
	}
}

func (m Model) regenerateCmd(step int) tea.Cmd {
	run := func(fn func(context.Context) error) tea.Cmd {
		return func() tea.Msg {
			return stepDoneMsg{err: fn(context.Background())}
		}
	}
	switch step {
	case wizard.StepBrief:
		return run(m.machine.RegenerateBrief)
	case wizard.StepKeywordsAudience:
		return run(m.machine.RegenerateKeywordsAudience)
	case wizard.StepCompetitors:
		return run(m.machine.RegenerateCompetitors)
	case wizard.StepSources:
		return run(m.machine.RegenerateSources)
	case wizard.StepOutlineExport:
		return run(m.machine.RegenerateOutline)
	default:
		return nil
	}
}

// toggleFound flips the nth checklist item, counting across the four lists
// in display order.
func toggleFound(state *wizard.State, n int) {
	idx := n - 1
	lists := [][]planner.ResearchItem{
		state.Sources.Statistics,
		state.Sources.ExpertTypes,
		state.Sources.CredibilityBoosters,
		state.Sources.ResearchQuestions,
	}
	for _, items := range lists {
		if idx < len(items) {
			items[idx].Found = !items[idx].Found
			return
		}
		idx -= len(items)
	}
}
