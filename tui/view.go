package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"content_planner/planner"
	"content_planner/wizard"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stepHereStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	stepTodoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m Model) View() string {
	if m.quit {
		return ""
	}
	state := m.machine.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Content Planner"))
	b.WriteString("\n\n")
	b.WriteString(m.stepIndicator(state))
	b.WriteString("\n\n")

	if state.Err != "" {
		b.WriteString(errorStyle.Render("✗ " + state.Err))
		b.WriteString("\n\n")
	}
	if m.busy {
		b.WriteString(m.spin.View() + " working...\n\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(m.stepBody(state))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine(state)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) stepIndicator(state *wizard.State) string {
	parts := make([]string, 0, wizard.StepMax)
	for step := wizard.StepMin; step <= wizard.StepMax; step++ {
		name := fmt.Sprintf("%d %s", step, wizard.StepName(step))
		switch {
		case step == state.CurrentStep:
			parts = append(parts, stepHereStyle.Render(name))
		case state.StepCompleted(step):
			parts = append(parts, stepDoneStyle.Render(name))
		default:
			parts = append(parts, stepTodoStyle.Render(name))
		}
	}
	return strings.Join(parts, stepTodoStyle.Render(" > "))
}

func (m Model) stepBody(state *wizard.State) string {
	switch state.CurrentStep {
	case wizard.StepInput:
		return m.viewInput(state)
	case wizard.StepBrief:
		return m.viewBrief(state)
	case wizard.StepKeywordsAudience:
		return m.viewKeywordsAudience(state)
	case wizard.StepCompetitors:
		return m.viewCompetitors(state)
	case wizard.StepSources:
		return m.viewSources(state)
	case wizard.StepOutlineExport:
		return m.viewOutline(state)
	}
	return ""
}

func (m Model) viewInput(state *wizard.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Working title:"), state.Input.WorkingTitle)
	fmt.Fprintf(&b, "%s %d characters\n", labelStyle.Render("Source content:"), len(strings.TrimSpace(state.Input.SourceContent)))
	if state.Input.TargetAudience != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Audience hint:"), state.Input.TargetAudience)
	}
	fmt.Fprintf(&b, "%s %v\n", labelStyle.Render("SEO important:"), state.Input.SEOImportant)
	if !state.CanProceed() && !state.Loading {
		b.WriteString(helpStyle.Render("\nA title and at least 50 characters of source content are required.\n"))
	}
	return b.String()
}

func (m Model) viewBrief(state *wizard.State) string {
	if state.Brief == nil {
		return helpStyle.Render("No brief yet.\n")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Core message:"), state.Brief.CoreMessage)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Desired outcome:"), state.Brief.DesiredOutcome)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Format:"), state.Brief.FormatRecommendation)
	writeBullets(&b, "In scope", state.Brief.InScopeTopics)
	writeBullets(&b, "Out of scope", state.Brief.OutOfScopeTopics)
	return b.String()
}

func (m Model) viewKeywordsAudience(state *wizard.State) string {
	if state.Keywords == nil || state.Audience == nil {
		return helpStyle.Render("No keyword or audience research yet.\n")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Primary keyword:"), state.Keywords.PrimaryKeyword)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Secondary:"), strings.Join(state.Keywords.SecondaryKeywords, ", "))
	fmt.Fprintf(&b, "%s %s (%s)\n", labelStyle.Render("Intent:"), state.Keywords.SearchIntent, state.Keywords.IntentExplanation)
	fmt.Fprintf(&b, "\n%s %s\n", labelStyle.Render("Reader:"), state.Audience.PersonaDescription)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Knowledge level:"), state.Audience.KnowledgeLevel)
	writeBullets(&b, "Problems", state.Audience.ProblemsToSolve)
	writeBullets(&b, "Motivations", state.Audience.Motivations)
	return b.String()
}

func (m Model) viewCompetitors(state *wizard.State) string {
	if state.Competitors == nil {
		return helpStyle.Render("No competitive analysis yet.\n")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Unique angle:"), state.Competitors.UniqueAngle)
	writeBullets(&b, "Avoid", state.Competitors.AnglesToAvoid)
	writeBullets(&b, "Gaps", state.Competitors.ContentGaps)
	writeBullets(&b, "Patterns", state.Competitors.WorkingPatterns)
	if len(state.CustomCompetitorURLs) > 0 {
		writeBullets(&b, "Your URLs (used on regenerate)", state.CustomCompetitorURLs)
	}
	return b.String()
}

func (m Model) viewSources(state *wizard.State) string {
	if state.Sources == nil {
		return helpStyle.Render("No sources research yet.\n")
	}
	var b strings.Builder
	n := 0
	writeChecklist := func(label string, items []planner.ResearchItem) {
		if len(items) == 0 {
			return
		}
		b.WriteString(labelStyle.Render(label) + "\n")
		for _, it := range items {
			n++
			mark := "[ ]"
			if it.Found {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "  %d %s %s\n", n, mark, it.Description)
			if it.AIFindings != nil {
				fmt.Fprintf(&b, "      %s\n", helpStyle.Render(it.AIFindings.Summary))
			}
		}
	}
	writeChecklist("Statistics", state.Sources.Statistics)
	writeChecklist("Experts", state.Sources.ExpertTypes)
	writeChecklist("Credibility", state.Sources.CredibilityBoosters)
	writeChecklist("Questions", state.Sources.ResearchQuestions)
	return b.String()
}

func (m Model) viewOutline(state *wizard.State) string {
	if state.Outline == nil {
		return helpStyle.Render("No outline yet.\n")
	}
	if state.CompiledHelpSheet != "" {
		rendered, err := glamour.Render(state.CompiledHelpSheet, "dark")
		if err == nil {
			return rendered
		}
		return state.CompiledHelpSheet
	}
	var b strings.Builder
	for i, sec := range state.Outline.Sections {
		fmt.Fprintf(&b, "%s (%d words)\n", labelStyle.Render(fmt.Sprintf("%d. %s", i+1, sec.Heading)), sec.SuggestedWordCount)
		fmt.Fprintf(&b, "   %s\n", sec.Purpose)
	}
	fmt.Fprintf(&b, "\n%s %d\n", labelStyle.Render("Total word target:"), state.Outline.TotalWordCount())
	return b.String()
}

func (m Model) helpLine(state *wizard.State) string {
	keys := []string{"←/→ navigate", "q quit"}
	if state.CurrentStep < wizard.StepMax {
		keys = append([]string{"enter run step"}, keys...)
	}
	if state.CurrentStep > wizard.StepInput {
		keys = append(keys, "r regenerate")
	}
	if state.CurrentStep == wizard.StepSources {
		keys = append(keys, "1-9 toggle found")
	}
	if state.CurrentStep == wizard.StepOutlineExport {
		keys = append(keys, "c compile", "y copy", "s save")
	}
	return strings.Join(keys, " · ")
}

func writeBullets(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(labelStyle.Render(label) + "\n")
	for _, it := range items {
		fmt.Fprintf(b, "  - %s\n", it)
	}
}
