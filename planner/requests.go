package planner

// Request payloads for the step endpoint family. Each step forwards only the
// slices of upstream results it needs; the raw source content travels once,
// in the brief step.

type AnalyzeBriefRequest struct {
	SourceContent string `json:"sourceContent"`
	WorkingTitle  string `json:"workingTitle"`
}

type ResearchKeywordsRequest struct {
	WorkingTitle   string   `json:"workingTitle"`
	CoreMessage    string   `json:"coreMessage"`
	InScopeTopics  []string `json:"inScopeTopics"`
	DesiredOutcome string   `json:"desiredOutcome"`
	SEOImportant   bool     `json:"seoImportant"`
}

type ResearchAudienceRequest struct {
	WorkingTitle   string   `json:"workingTitle"`
	CoreMessage    string   `json:"coreMessage"`
	InScopeTopics  []string `json:"inScopeTopics"`
	DesiredOutcome string   `json:"desiredOutcome"`
	AudienceHint   string   `json:"audienceHint,omitempty"`
}

type AnalyzeCompetitorsRequest struct {
	WorkingTitle      string   `json:"workingTitle"`
	CoreMessage       string   `json:"coreMessage"`
	InScopeTopics     []string `json:"inScopeTopics"`
	PrimaryKeyword    string   `json:"primaryKeyword"`
	SecondaryKeywords []string `json:"secondaryKeywords"`
	SearchIntent      string   `json:"searchIntent"`
	// CustomCompetitorURLs is only populated on regeneration, after the user
	// has narrowed the field. The first pass runs broad.
	CustomCompetitorURLs []string `json:"customCompetitorUrls,omitempty"`
}

type GatherSourcesRequest struct {
	WorkingTitle       string   `json:"workingTitle"`
	CoreMessage        string   `json:"coreMessage"`
	DesiredOutcome     string   `json:"desiredOutcome"`
	PersonaDescription string   `json:"personaDescription"`
	KnowledgeLevel     string   `json:"knowledgeLevel"`
	ProblemsToSolve    []string `json:"problemsToSolve"`
	ContentGaps        []string `json:"contentGaps"`
	UniqueAngle        string   `json:"uniqueAngle"`
	PrimaryKeyword     string   `json:"primaryKeyword"`
}

type GenerateOutlineRequest struct {
	WorkingTitle         string              `json:"workingTitle"`
	CoreMessage          string              `json:"coreMessage"`
	InScopeTopics        []string            `json:"inScopeTopics"`
	DesiredOutcome       string              `json:"desiredOutcome"`
	FormatRecommendation string              `json:"formatRecommendation"`
	PrimaryKeyword       string              `json:"primaryKeyword"`
	SecondaryKeywords    []string            `json:"secondaryKeywords"`
	SearchIntent         string              `json:"searchIntent"`
	PersonaDescription   string              `json:"personaDescription"`
	KnowledgeLevel       string              `json:"knowledgeLevel"`
	UniqueAngle          string              `json:"uniqueAngle"`
	ContentGaps          []string            `json:"contentGaps"`
	Statistics           []ResearchItemSlice `json:"statistics"`
	ExpertTypes          []ResearchItemSlice `json:"expertTypes"`
	CredibilityBoosters  []ResearchItemSlice `json:"credibilityBoosters"`
	ResearchQuestions    []ResearchItemSlice `json:"researchQuestions"`
}

// Response envelopes. A 2xx response carries exactly one populated field; a
// non-2xx response carries only Error.

type BriefResponse struct {
	Brief *BriefAnalysis `json:"brief,omitempty"`
	Error string         `json:"error,omitempty"`
}

type KeywordsResponse struct {
	Keywords *KeywordResearch `json:"keywords,omitempty"`
	Error    string           `json:"error,omitempty"`
}

type AudienceResponse struct {
	Audience *AudienceAnalysis `json:"audience,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type CompetitorsResponse struct {
	Competitors *CompetitiveAnalysis `json:"competitors,omitempty"`
	Error       string               `json:"error,omitempty"`
}

type SourcesResponse struct {
	Sources *SourcesResearch `json:"sources,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type OutlineResponse struct {
	Outline *HelpSheetOutline `json:"outline,omitempty"`
	Error   string            `json:"error,omitempty"`
}
