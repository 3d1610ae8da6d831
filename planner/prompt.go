package planner

import (
	"fmt"
	"strings"
)

// Step identifies which planning stage a prompt (and its response schema) belongs to.
type Step string

const (
	StepBrief       Step = "brief"
	StepKeywords    Step = "keywords"
	StepAudience    Step = "audience"
	StepCompetitors Step = "competitors"
	StepSources     Step = "sources"
	StepOutline     Step = "outline"
)

// Prompt is the message pair sent to the LLM for one step.
type Prompt struct {
	Step   Step
	System string
	User   string
}

const jsonOnly = "Respond with a single JSON object and nothing else. No markdown fences, no commentary."

// BuildBriefPrompt asks the model to distill raw source material into a content brief.
func BuildBriefPrompt(req AnalyzeBriefRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("You are a senior content strategist. Analyze the provided source material and produce a content brief.\n")
	sb.WriteString("Return JSON with keys:\n")
	sb.WriteString("- coreMessage: the single most important takeaway, one sentence\n")
	sb.WriteString("- inScopeTopics: ordered list of topics the piece should cover\n")
	sb.WriteString("- outOfScopeTopics: topics to explicitly leave out\n")
	sb.WriteString("- desiredOutcome: what the reader should be able to do afterwards\n")
	sb.WriteString("- formatRecommendation: the best-suited content format and why, one sentence\n")
	sb.WriteString(jsonOnly)

	user := fmt.Sprintf("Working title: %s\n\nSource material:\n%s", req.WorkingTitle, req.SourceContent)
	return Prompt{Step: StepBrief, System: sb.String(), User: user}
}

// BuildKeywordsPrompt asks for keyword research around the brief.
func BuildKeywordsPrompt(req ResearchKeywordsRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("You are an SEO researcher. Propose keyword targeting for the described piece.\n")
	sb.WriteString("Return JSON with keys:\n")
	sb.WriteString("- primaryKeyword: the one keyword to optimize for\n")
	sb.WriteString("- secondaryKeywords: 3-6 supporting keywords\n")
	sb.WriteString("- searchIntent: one of informational, transactional, navigational, commercial\n")
	sb.WriteString("- intentExplanation: one sentence justifying the intent classification\n")
	if !req.SEOImportant {
		sb.WriteString("SEO is a secondary concern for this piece; favor natural phrasing over volume.\n")
	}
	sb.WriteString(jsonOnly)

	user := fmt.Sprintf("Working title: %s\nCore message: %s\nIn-scope topics: %s\nDesired outcome: %s",
		req.WorkingTitle, req.CoreMessage, strings.Join(req.InScopeTopics, "; "), req.DesiredOutcome)
	return Prompt{Step: StepKeywords, System: sb.String(), User: user}
}

// BuildAudiencePrompt asks for an audience analysis around the brief.
func BuildAudiencePrompt(req ResearchAudienceRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("You are an audience researcher. Describe the reader this piece should be written for.\n")
	sb.WriteString("Return JSON with keys:\n")
	sb.WriteString("- personaDescription: a short persona sketch, 2-3 sentences\n")
	sb.WriteString("- knowledgeLevel: one of beginner, intermediate, expert\n")
	sb.WriteString("- problemsToSolve: list of problems the reader wants solved\n")
	sb.WriteString("- motivations: list of reasons the reader would engage with this piece\n")
	sb.WriteString(jsonOnly)

	var ub strings.Builder
	fmt.Fprintf(&ub, "Working title: %s\nCore message: %s\nIn-scope topics: %s\nDesired outcome: %s",
		req.WorkingTitle, req.CoreMessage, strings.Join(req.InScopeTopics, "; "), req.DesiredOutcome)
	if req.AudienceHint != "" {
		fmt.Fprintf(&ub, "\nAudience hint from the author: %s", req.AudienceHint)
	}
	return Prompt{Step: StepAudience, System: sb.String(), User: ub.String()}
}

// BuildCompetitorsPrompt asks for a competitive landscape analysis.
func BuildCompetitorsPrompt(req AnalyzeCompetitorsRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("You are a content competition analyst. Map the existing landscape for the target keyword and recommend positioning.\n")
	sb.WriteString("Return JSON with keys:\n")
	sb.WriteString("- searchResults: list of {title, url, snippet} for representative ranking pages\n")
	sb.WriteString("- anglesToAvoid: list of overused angles in the current results\n")
	sb.WriteString("- contentGaps: list of questions or subtopics the current results leave open\n")
	sb.WriteString("- workingPatterns: list of structural patterns that the successful pieces share\n")
	sb.WriteString("- uniqueAngle: one sentence recommending a differentiated angle\n")
	sb.WriteString(jsonOnly)

	var ub strings.Builder
	fmt.Fprintf(&ub, "Working title: %s\nCore message: %s\nIn-scope topics: %s\nPrimary keyword: %s\nSecondary keywords: %s\nSearch intent: %s",
		req.WorkingTitle, req.CoreMessage, strings.Join(req.InScopeTopics, "; "),
		req.PrimaryKeyword, strings.Join(req.SecondaryKeywords, ", "), req.SearchIntent)
	if len(req.CustomCompetitorURLs) > 0 {
		fmt.Fprintf(&ub, "\nInclude these competitor URLs in the analysis:\n%s", strings.Join(req.CustomCompetitorURLs, "\n"))
	}
	return Prompt{Step: StepCompetitors, System: sb.String(), User: ub.String()}
}

// BuildSourcesPrompt asks for the four research checklists.
func BuildSourcesPrompt(req GatherSourcesRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("You are a research editor. List the evidence this piece needs to be credible.\n")
	sb.WriteString("Return JSON with keys statistics, expertTypes, credibilityBoosters, researchQuestions.\n")
	sb.WriteString("Each is a list of items: {description, aiFindings: {summary, sources: [{title, url}]}}.\n")
	sb.WriteString("Where you can already point at concrete findings, fill aiFindings; otherwise omit it.\n")
	sb.WriteString("3-5 items per list.\n")
	sb.WriteString(jsonOnly)

	var ub strings.Builder
	fmt.Fprintf(&ub, "Working title: %s\nCore message: %s\nDesired outcome: %s\nPrimary keyword: %s",
		req.WorkingTitle, req.CoreMessage, req.DesiredOutcome, req.PrimaryKeyword)
	fmt.Fprintf(&ub, "\nReader: %s (knowledge level: %s)", req.PersonaDescription, req.KnowledgeLevel)
	if len(req.ProblemsToSolve) > 0 {
		fmt.Fprintf(&ub, "\nReader problems: %s", strings.Join(req.ProblemsToSolve, "; "))
	}
	if len(req.ContentGaps) > 0 {
		fmt.Fprintf(&ub, "\nContent gaps to exploit: %s", strings.Join(req.ContentGaps, "; "))
	}
	if req.UniqueAngle != "" {
		fmt.Fprintf(&ub, "\nChosen angle: %s", req.UniqueAngle)
	}
	return Prompt{Step: StepSources, System: sb.String(), User: ub.String()}
}

// BuildOutlinePrompt asks for the section-by-section outline.
func BuildOutlinePrompt(req GenerateOutlineRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("You are a content architect. Produce a section-by-section outline for the piece.\n")
	sb.WriteString("Return JSON with key sections: a list of {heading, purpose, keyPoints, evidencePlacement, suggestedWordCount}.\n")
	sb.WriteString("- headings follow the chosen angle and format recommendation\n")
	sb.WriteString("- evidencePlacement names which gathered evidence belongs in that section\n")
	sb.WriteString("- suggestedWordCount is an integer per section\n")
	sb.WriteString(jsonOnly)

	var ub strings.Builder
	fmt.Fprintf(&ub, "Working title: %s\nCore message: %s\nIn-scope topics: %s\nDesired outcome: %s\nFormat: %s",
		req.WorkingTitle, req.CoreMessage, strings.Join(req.InScopeTopics, "; "),
		req.DesiredOutcome, req.FormatRecommendation)
	fmt.Fprintf(&ub, "\nPrimary keyword: %s (intent: %s)", req.PrimaryKeyword, req.SearchIntent)
	fmt.Fprintf(&ub, "\nReader: %s (knowledge level: %s)", req.PersonaDescription, req.KnowledgeLevel)
	fmt.Fprintf(&ub, "\nUnique angle: %s", req.UniqueAngle)
	if len(req.ContentGaps) > 0 {
		fmt.Fprintf(&ub, "\nGaps to cover: %s", strings.Join(req.ContentGaps, "; "))
	}
	writeChecklist(&ub, "Statistics to place", req.Statistics)
	writeChecklist(&ub, "Experts to cite", req.ExpertTypes)
	writeChecklist(&ub, "Credibility boosters", req.CredibilityBoosters)
	writeChecklist(&ub, "Questions to answer", req.ResearchQuestions)
	return Prompt{Step: StepOutline, System: sb.String(), User: ub.String()}
}

func writeChecklist(ub *strings.Builder, label string, items []ResearchItemSlice) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(ub, "\n%s:\n", label)
	for _, it := range items {
		fmt.Fprintf(ub, "- %s", it.Description)
		if it.AISummary != "" {
			fmt.Fprintf(ub, " (found: %s", it.AISummary)
			for _, src := range it.AISources {
				fmt.Fprintf(ub, "; %s %s", src.Title, src.URL)
			}
			ub.WriteString(")")
		}
		ub.WriteString("\n")
	}
}
