package planner

import (
	"context"
	"fmt"
)

// MockLLM is a deterministic stand-in for local runs and tests; it never
// leaves the process. Output is keyed on the prompt's step.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	switch prompt.Step {
	case StepBrief:
		return `{
  "coreMessage": "Shipping smaller releases reduces risk and shortens feedback loops.",
  "inScopeTopics": ["batch size", "deployment frequency", "feedback loops"],
  "outOfScopeTopics": ["CI tooling comparison", "team staffing"],
  "desiredOutcome": "The reader can argue for smaller release batches at their company.",
  "formatRecommendation": "An opinionated how-to article with a worked example."
}`, nil
	case StepKeywords:
		return `{
  "primaryKeyword": "small batch releases",
  "secondaryKeywords": ["deployment frequency", "release risk", "continuous delivery"],
  "searchIntent": "informational",
  "intentExplanation": "Readers are researching a practice, not buying a product."
}`, nil
	case StepAudience:
		return `{
  "personaDescription": "An engineering lead at a mid-size product company who owns the release process and is frustrated by painful quarterly launches.",
  "knowledgeLevel": "intermediate",
  "problemsToSolve": ["releases are risky", "feedback arrives too late"],
  "motivations": ["fewer incidents", "faster learning"]
}`, nil
	case StepCompetitors:
		return `{
  "searchResults": [
    {"title": "Why small batches win", "url": "https://example.com/batches", "snippet": "Batch size drives risk."}
  ],
  "anglesToAvoid": ["generic agile advocacy"],
  "contentGaps": ["no one shows the cost model", "migration path from quarterly releases"],
  "workingPatterns": ["concrete numbers up front", "short sections"],
  "uniqueAngle": "Quantify the risk curve instead of arguing by analogy."
}`, nil
	case StepSources:
		return `{
  "statistics": [
    {"description": "Change failure rate vs. deploy frequency", "aiFindings": {"summary": "DORA reports correlate smaller batches with lower failure rates.", "sources": [{"title": "DORA State of DevOps", "url": "https://example.com/dora"}]}}
  ],
  "expertTypes": [
    {"description": "A release engineer who migrated off quarterly releases"}
  ],
  "credibilityBoosters": [
    {"description": "A before/after incident count from a real team"}
  ],
  "researchQuestions": [
    {"description": "What is the smallest batch that still amortizes release overhead?"}
  ]
}`, nil
	case StepOutline:
		return `{
  "sections": [
    {"heading": "The quarterly release trap", "purpose": "Hook with the pain", "keyPoints": ["risk compounds with batch size"], "evidencePlacement": "incident count before/after", "suggestedWordCount": 300},
    {"heading": "The math of batch size", "purpose": "Make the risk curve concrete", "keyPoints": ["failure rate data", "feedback latency"], "evidencePlacement": "DORA statistics", "suggestedWordCount": 450},
    {"heading": "Getting there from here", "purpose": "Give a migration path", "keyPoints": ["carve out one service", "automate the boring parts"], "evidencePlacement": "release engineer quotes", "suggestedWordCount": 200}
  ]
}`, nil
	default:
		return "", fmt.Errorf("mock llm: unknown step %q", prompt.Step)
	}
}
