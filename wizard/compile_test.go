package wizard

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileIdempotent(t *testing.T) {
	s := NewState()
	fillState(s)

	first := CompileHelpSheet(s)
	second := CompileHelpSheet(s)
	assert.Equal(t, first, second, "identical state compiles to byte-identical output")
	assert.NotEmpty(t, first)
}

func TestCompileSectionOrdering(t *testing.T) {
	s := NewState()
	fillState(s)
	sheet := CompileHelpSheet(s)

	order := []string{
		"# Help Sheet: Ship Smaller Releases",
		"## Content Brief",
		"## Keywords & Audience",
		"## Competitive Positioning",
		"## Research Findings",
		"## Outline",
	}
	last := -1
	for _, heading := range order {
		idx := strings.Index(sheet, heading)
		assert.Greater(t, idx, last, "%q appears after the previous section", heading)
		last = idx
	}
}

func TestCompileContent(t *testing.T) {
	s := NewState()
	fillState(s)
	sheet := CompileHelpSheet(s)

	assert.Contains(t, sheet, "**Core message:** core")
	assert.Contains(t, sheet, "**Primary keyword:** primary")
	assert.Contains(t, sheet, "**Unique angle:** angle")
	assert.Contains(t, sheet, "- stat - sum ([src](https://src))", "findings include AI summaries and source links")
	assert.Contains(t, sheet, "### 1. First")
	assert.Contains(t, sheet, "**Evidence:** stats here")
	assert.Contains(t, sheet, "**Total word target:** 950", "total is recomputed from sections")
	assert.NotContains(t, sheet, "found", "user bookkeeping never appears in the sheet")
}

func TestCompileTotalIgnoresNothingStored(t *testing.T) {
	// There is no stored total to go stale; changing a section changes the sum.
	s := NewState()
	fillState(s)
	s.Outline.Sections[0].SuggestedWordCount = 1000
	sheet := CompileHelpSheet(s)
	assert.Contains(t, sheet, fmt.Sprintf("**Total word target:** %d", 1000+450+200))
}
