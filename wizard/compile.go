package wizard

import (
	"fmt"
	"strings"

	"content_planner/planner"
)

// CompileHelpSheet renders a fully-populated state into the final markdown
// document. It is pure and idempotent: identical state yields byte-identical
// output. Callers guard that every upstream field exists.
func CompileHelpSheet(s *State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Help Sheet: %s\n\n", s.Input.WorkingTitle)

	b.WriteString("## Content Brief\n\n")
	fmt.Fprintf(&b, "**Core message:** %s\n\n", s.Brief.CoreMessage)
	fmt.Fprintf(&b, "**Desired outcome:** %s\n\n", s.Brief.DesiredOutcome)
	fmt.Fprintf(&b, "**Recommended format:** %s\n\n", s.Brief.FormatRecommendation)
	writeTopicList(&b, "In scope", s.Brief.InScopeTopics)
	writeTopicList(&b, "Out of scope", s.Brief.OutOfScopeTopics)

	b.WriteString("## Keywords & Audience\n\n")
	fmt.Fprintf(&b, "**Primary keyword:** %s\n\n", s.Keywords.PrimaryKeyword)
	if len(s.Keywords.SecondaryKeywords) > 0 {
		fmt.Fprintf(&b, "**Secondary keywords:** %s\n\n", strings.Join(s.Keywords.SecondaryKeywords, ", "))
	}
	fmt.Fprintf(&b, "**Search intent:** %s - %s\n\n", s.Keywords.SearchIntent, s.Keywords.IntentExplanation)
	fmt.Fprintf(&b, "**Reader:** %s\n\n", s.Audience.PersonaDescription)
	fmt.Fprintf(&b, "**Knowledge level:** %s\n\n", s.Audience.KnowledgeLevel)
	writeTopicList(&b, "Problems to solve", s.Audience.ProblemsToSolve)
	writeTopicList(&b, "Motivations", s.Audience.Motivations)

	b.WriteString("## Competitive Positioning\n\n")
	fmt.Fprintf(&b, "**Unique angle:** %s\n\n", s.Competitors.UniqueAngle)
	writeTopicList(&b, "Angles to avoid", s.Competitors.AnglesToAvoid)
	writeTopicList(&b, "Content gaps to exploit", s.Competitors.ContentGaps)
	writeTopicList(&b, "Patterns that work", s.Competitors.WorkingPatterns)
	if len(s.Competitors.SearchResults) > 0 {
		b.WriteString("**Current landscape:**\n\n")
		for _, r := range s.Competitors.SearchResults {
			fmt.Fprintf(&b, "- [%s](%s) - %s\n", r.Title, r.URL, r.Snippet)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Research Findings\n\n")
	writeChecklistSection(&b, "Statistics to find", s.Sources.Statistics)
	writeChecklistSection(&b, "Experts to consult", s.Sources.ExpertTypes)
	writeChecklistSection(&b, "Credibility boosters", s.Sources.CredibilityBoosters)
	writeChecklistSection(&b, "Questions to answer", s.Sources.ResearchQuestions)

	b.WriteString("## Outline\n\n")
	for i, sec := range s.Outline.Sections {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, sec.Heading)
		fmt.Fprintf(&b, "**Purpose:** %s\n\n", sec.Purpose)
		if len(sec.KeyPoints) > 0 {
			b.WriteString("Key points:\n\n")
			for _, kp := range sec.KeyPoints {
				fmt.Fprintf(&b, "- %s\n", kp)
			}
			b.WriteString("\n")
		}
		if sec.EvidencePlacement != "" {
			fmt.Fprintf(&b, "**Evidence:** %s\n\n", sec.EvidencePlacement)
		}
		fmt.Fprintf(&b, "**Word target:** %d\n\n", sec.SuggestedWordCount)
	}
	fmt.Fprintf(&b, "**Total word target:** %d\n", s.Outline.TotalWordCount())

	return b.String()
}

func writeTopicList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s:**\n\n", label)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

func writeChecklistSection(b *strings.Builder, label string, items []planner.ResearchItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", label)
	for _, it := range items {
		fmt.Fprintf(b, "- %s", it.Description)
		if it.AIFindings != nil {
			fmt.Fprintf(b, " - %s", it.AIFindings.Summary)
			for _, src := range it.AIFindings.Sources {
				fmt.Fprintf(b, " ([%s](%s))", src.Title, src.URL)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
