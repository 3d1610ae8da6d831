package planner

// ContentPlannerInput is the user-supplied seed for a planning run.
type ContentPlannerInput struct {
	WorkingTitle   string `json:"workingTitle"`
	SourceContent  string `json:"sourceContent"`
	TargetAudience string `json:"targetAudience,omitempty"`
	SEOImportant   bool   `json:"seoImportant"`
}

// BriefAnalysis is the step-2 result distilled from the raw source material.
type BriefAnalysis struct {
	CoreMessage          string   `json:"coreMessage"`
	InScopeTopics        []string `json:"inScopeTopics"`
	OutOfScopeTopics     []string `json:"outOfScopeTopics"`
	DesiredOutcome       string   `json:"desiredOutcome"`
	FormatRecommendation string   `json:"formatRecommendation"`
}

// Search intent values returned by keyword research.
const (
	IntentInformational = "informational"
	IntentTransactional = "transactional"
	IntentNavigational  = "navigational"
	IntentCommercial    = "commercial"
)

type KeywordResearch struct {
	PrimaryKeyword    string   `json:"primaryKeyword"`
	SecondaryKeywords []string `json:"secondaryKeywords"`
	SearchIntent      string   `json:"searchIntent"`
	IntentExplanation string   `json:"intentExplanation"`
}

// Knowledge level values returned by audience analysis.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelExpert       = "expert"
)

type AudienceAnalysis struct {
	PersonaDescription string   `json:"personaDescription"`
	KnowledgeLevel     string   `json:"knowledgeLevel"`
	ProblemsToSolve    []string `json:"problemsToSolve"`
	Motivations        []string `json:"motivations"`
}

type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type CompetitiveAnalysis struct {
	SearchResults   []SearchResult `json:"searchResults"`
	AnglesToAvoid   []string       `json:"anglesToAvoid"`
	ContentGaps     []string       `json:"contentGaps"`
	WorkingPatterns []string       `json:"workingPatterns"`
	UniqueAngle     string         `json:"uniqueAngle"`
}

// SourceLink is one reference attached to an AI finding.
type SourceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type AIFindings struct {
	Summary string       `json:"summary"`
	Sources []SourceLink `json:"sources"`
}

// ResearchItem is one entry of a sources checklist. Found and Notes are
// user bookkeeping and never travel back to the generation endpoints.
type ResearchItem struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Found       bool        `json:"found"`
	Notes       string      `json:"notes,omitempty"`
	AIFindings  *AIFindings `json:"aiFindings,omitempty"`
}

// SourcesResearch groups the four parallel research checklists.
type SourcesResearch struct {
	Statistics          []ResearchItem `json:"statistics"`
	ExpertTypes         []ResearchItem `json:"expertTypes"`
	CredibilityBoosters []ResearchItem `json:"credibilityBoosters"`
	ResearchQuestions   []ResearchItem `json:"researchQuestions"`
}

type OutlineSection struct {
	ID                 string   `json:"id"`
	Heading            string   `json:"heading"`
	Purpose            string   `json:"purpose"`
	KeyPoints          []string `json:"keyPoints"`
	EvidencePlacement  string   `json:"evidencePlacement"`
	SuggestedWordCount int      `json:"suggestedWordCount"`
}

type HelpSheetOutline struct {
	Sections []OutlineSection `json:"sections"`
}

// TotalWordCount sums the per-section targets. The total is always derived;
// no stored total is ever trusted.
func (o HelpSheetOutline) TotalWordCount() int {
	total := 0
	for _, s := range o.Sections {
		total += s.SuggestedWordCount
	}
	return total
}

// ResearchItemSlice is the reduced checklist shape forwarded to the outline
// endpoint: description plus AI findings only.
type ResearchItemSlice struct {
	Description string       `json:"description"`
	AISummary   string       `json:"aiSummary,omitempty"`
	AISources   []SourceLink `json:"aiSources,omitempty"`
}

// ReduceItems maps a checklist to its outline-endpoint shape.
func ReduceItems(items []ResearchItem) []ResearchItemSlice {
	out := make([]ResearchItemSlice, 0, len(items))
	for _, it := range items {
		slice := ResearchItemSlice{Description: it.Description}
		if it.AIFindings != nil {
			slice.AISummary = it.AIFindings.Summary
			slice.AISources = it.AIFindings.Sources
		}
		out = append(out, slice)
	}
	return out
}
