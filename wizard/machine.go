package wizard

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"content_planner/planner"
)

// Precondition errors raised before any network call. Each names the missing
// upstream result and is recoverable by returning to an earlier step.
var (
	ErrInputIncomplete     = errors.New("Working title and at least 50 characters of source content are required")
	ErrBriefMissing        = errors.New("Brief not available")
	ErrKeywordsMissing     = errors.New("Keyword research not available")
	ErrAudienceMissing     = errors.New("Audience analysis not available")
	ErrCompetitorsMissing  = errors.New("Competitive analysis not available")
	ErrSourcesMissing      = errors.New("Sources research not available")
	ErrNothingToCompileYet = errors.New("All steps must be completed before compiling")
	ErrBusy                = errors.New("Another request is still running")
)

// Machine owns the wizard state and drives it through the step endpoints.
// All mutations funnel through here; there are no competing writers.
type Machine struct {
	state  *State
	client *StepClient
	store  *Store
	logger *zap.Logger
}

func NewMachine(state *State, client *StepClient, store *Store, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{state: state, client: client, store: store, logger: logger}
}

// State exposes the aggregate for rendering and direct user edits. Callers
// must persist edits via SaveEdits.
func (m *Machine) State() *State {
	return m.state
}

// SaveEdits persists user edits made directly on the state (topic add/remove,
// found toggles, notes, custom competitor URLs).
func (m *Machine) SaveEdits() {
	m.maybeCompile()
	m.persist()
}

// Reset clears the run and its persisted file.
func (m *Machine) Reset() {
	m.state.Reset()
	if m.store != nil {
		m.store.Clear()
	}
}

// begin marks a request in flight. One shared flag gates the whole wizard.
func (m *Machine) begin() error {
	if m.state.Loading {
		return ErrBusy
	}
	m.state.Loading = true
	m.state.Err = ""
	return nil
}

// fail records the error without touching domain fields or the cursor.
func (m *Machine) fail(step string, err error) error {
	m.state.Loading = false
	m.state.Err = err.Error()
	m.logger.Warn("planner step failed", zap.String("step", step), zap.Error(err))
	return err
}

// finish clears the in-flight flag, runs the auto-compile check, and persists.
func (m *Machine) finish() {
	m.state.Loading = false
	m.maybeCompile()
	m.persist()
}

// precondition records a synchronous precondition failure. No network call
// has happened; the in-flight flag was never set.
func (m *Machine) precondition(err error) error {
	m.state.Err = err.Error()
	return err
}

func (m *Machine) persist() {
	if m.store != nil {
		m.store.Save(m.state)
	}
}

// aborted reports whether the surrounding context was cancelled while a
// request was in flight. A cancelled run must not merge phantom results.
func (m *Machine) aborted(ctx context.Context, step string) bool {
	if ctx.Err() == nil {
		return false
	}
	m.state.Loading = false
	m.logger.Debug("planner step abandoned", zap.String("step", step), zap.Error(ctx.Err()))
	return true
}

// AnalyzeBrief runs the first transition: raw input to content brief.
func (m *Machine) AnalyzeBrief(ctx context.Context) error {
	return m.analyzeBrief(ctx, true)
}

// RegenerateBrief redoes the brief without advancing.
func (m *Machine) RegenerateBrief(ctx context.Context) error {
	return m.analyzeBrief(ctx, false)
}

func (m *Machine) analyzeBrief(ctx context.Context, advance bool) error {
	if !m.state.inputValid() {
		return m.precondition(ErrInputIncomplete)
	}
	if err := m.begin(); err != nil {
		return err
	}
	brief, err := m.client.AnalyzeBrief(ctx, planner.AnalyzeBriefRequest{
		SourceContent: m.state.Input.SourceContent,
		WorkingTitle:  m.state.Input.WorkingTitle,
	})
	if m.aborted(ctx, "brief") {
		return ctx.Err()
	}
	if err != nil {
		return m.fail("brief", err)
	}
	m.state.Brief = brief
	if advance {
		m.state.NextStep()
	}
	m.finish()
	return nil
}

// ResearchKeywordsAudience runs the joint second transition. The two requests
// race concurrently; the state is only touched when both succeed.
func (m *Machine) ResearchKeywordsAudience(ctx context.Context) error {
	return m.researchKeywordsAudience(ctx, true)
}

// RegenerateKeywordsAudience redoes both results without advancing.
func (m *Machine) RegenerateKeywordsAudience(ctx context.Context) error {
	return m.researchKeywordsAudience(ctx, false)
}

func (m *Machine) researchKeywordsAudience(ctx context.Context, advance bool) error {
	brief := m.state.Brief
	if brief == nil {
		return m.precondition(ErrBriefMissing)
	}
	if err := m.begin(); err != nil {
		return err
	}

	// Only the brief slices travel; the raw source content stays home to
	// bound the payload.
	var keywords *planner.KeywordResearch
	var audience *planner.AudienceAnalysis
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		k, err := m.client.ResearchKeywords(gctx, planner.ResearchKeywordsRequest{
			WorkingTitle:   m.state.Input.WorkingTitle,
			CoreMessage:    brief.CoreMessage,
			InScopeTopics:  brief.InScopeTopics,
			DesiredOutcome: brief.DesiredOutcome,
			SEOImportant:   m.state.Input.SEOImportant,
		})
		if err != nil {
			return err
		}
		keywords = k
		return nil
	})
	g.Go(func() error {
		a, err := m.client.ResearchAudience(gctx, planner.ResearchAudienceRequest{
			WorkingTitle:   m.state.Input.WorkingTitle,
			CoreMessage:    brief.CoreMessage,
			InScopeTopics:  brief.InScopeTopics,
			DesiredOutcome: brief.DesiredOutcome,
			AudienceHint:   m.state.Input.TargetAudience,
		})
		if err != nil {
			return err
		}
		audience = a
		return nil
	})
	err := g.Wait()
	if m.aborted(ctx, "keywords-audience") {
		return ctx.Err()
	}
	if err != nil {
		return m.fail("keywords-audience", err)
	}
	m.state.Keywords = keywords
	m.state.Audience = audience
	if advance {
		m.state.NextStep()
	}
	m.finish()
	return nil
}

// AnalyzeCompetitors runs the third transition. The forward pass deliberately
// ignores user-supplied competitor URLs so discovery runs broad before the
// user narrows it on regeneration.
func (m *Machine) AnalyzeCompetitors(ctx context.Context) error {
	return m.analyzeCompetitors(ctx, true, nil)
}

// RegenerateCompetitors redoes the analysis, folding in any user-supplied URLs.
func (m *Machine) RegenerateCompetitors(ctx context.Context) error {
	return m.analyzeCompetitors(ctx, false, m.state.CustomCompetitorURLs)
}

func (m *Machine) analyzeCompetitors(ctx context.Context, advance bool, customURLs []string) error {
	brief, keywords := m.state.Brief, m.state.Keywords
	if brief == nil {
		return m.precondition(ErrBriefMissing)
	}
	if keywords == nil {
		return m.precondition(ErrKeywordsMissing)
	}
	if err := m.begin(); err != nil {
		return err
	}
	competitors, err := m.client.AnalyzeCompetitors(ctx, planner.AnalyzeCompetitorsRequest{
		WorkingTitle:         m.state.Input.WorkingTitle,
		CoreMessage:          brief.CoreMessage,
		InScopeTopics:        brief.InScopeTopics,
		PrimaryKeyword:       keywords.PrimaryKeyword,
		SecondaryKeywords:    keywords.SecondaryKeywords,
		SearchIntent:         keywords.SearchIntent,
		CustomCompetitorURLs: customURLs,
	})
	if m.aborted(ctx, "competitors") {
		return ctx.Err()
	}
	if err != nil {
		return m.fail("competitors", err)
	}
	m.state.Competitors = competitors
	if advance {
		m.state.NextStep()
	}
	m.finish()
	return nil
}

// GatherSources runs the fourth transition.
func (m *Machine) GatherSources(ctx context.Context) error {
	return m.gatherSources(ctx, true)
}

// RegenerateSources redoes the checklists without advancing. User bookkeeping
// on the old checklists is discarded with them.
func (m *Machine) RegenerateSources(ctx context.Context) error {
	return m.gatherSources(ctx, false)
}

func (m *Machine) gatherSources(ctx context.Context, advance bool) error {
	brief, audience, competitors := m.state.Brief, m.state.Audience, m.state.Competitors
	if brief == nil {
		return m.precondition(ErrBriefMissing)
	}
	if audience == nil {
		return m.precondition(ErrAudienceMissing)
	}
	if competitors == nil {
		return m.precondition(ErrCompetitorsMissing)
	}
	if m.state.Keywords == nil {
		return m.precondition(ErrKeywordsMissing)
	}
	if err := m.begin(); err != nil {
		return err
	}
	sources, err := m.client.GatherSources(ctx, planner.GatherSourcesRequest{
		WorkingTitle:       m.state.Input.WorkingTitle,
		CoreMessage:        brief.CoreMessage,
		DesiredOutcome:     brief.DesiredOutcome,
		PersonaDescription: audience.PersonaDescription,
		KnowledgeLevel:     audience.KnowledgeLevel,
		ProblemsToSolve:    audience.ProblemsToSolve,
		ContentGaps:        competitors.ContentGaps,
		UniqueAngle:        competitors.UniqueAngle,
		PrimaryKeyword:     m.state.Keywords.PrimaryKeyword,
	})
	if m.aborted(ctx, "sources") {
		return ctx.Err()
	}
	if err != nil {
		return m.fail("sources", err)
	}
	m.state.Sources = sources
	if advance {
		m.state.NextStep()
	}
	m.finish()
	return nil
}

// GenerateOutline runs the final transition.
func (m *Machine) GenerateOutline(ctx context.Context) error {
	return m.generateOutline(ctx, true)
}

// RegenerateOutline redoes the outline and clears the compiled sheet so the
// auto-compile guard fires again.
func (m *Machine) RegenerateOutline(ctx context.Context) error {
	return m.generateOutline(ctx, false)
}

func (m *Machine) generateOutline(ctx context.Context, advance bool) error {
	s := m.state
	if s.Brief == nil {
		return m.precondition(ErrBriefMissing)
	}
	if s.Keywords == nil {
		return m.precondition(ErrKeywordsMissing)
	}
	if s.Audience == nil {
		return m.precondition(ErrAudienceMissing)
	}
	if s.Competitors == nil {
		return m.precondition(ErrCompetitorsMissing)
	}
	if s.Sources == nil {
		return m.precondition(ErrSourcesMissing)
	}
	if err := m.begin(); err != nil {
		return err
	}
	outline, err := m.client.GenerateOutline(ctx, planner.GenerateOutlineRequest{
		WorkingTitle:         s.Input.WorkingTitle,
		CoreMessage:          s.Brief.CoreMessage,
		InScopeTopics:        s.Brief.InScopeTopics,
		DesiredOutcome:       s.Brief.DesiredOutcome,
		FormatRecommendation: s.Brief.FormatRecommendation,
		PrimaryKeyword:       s.Keywords.PrimaryKeyword,
		SecondaryKeywords:    s.Keywords.SecondaryKeywords,
		SearchIntent:         s.Keywords.SearchIntent,
		PersonaDescription:   s.Audience.PersonaDescription,
		KnowledgeLevel:       s.Audience.KnowledgeLevel,
		UniqueAngle:          s.Competitors.UniqueAngle,
		ContentGaps:          s.Competitors.ContentGaps,
		Statistics:           planner.ReduceItems(s.Sources.Statistics),
		ExpertTypes:          planner.ReduceItems(s.Sources.ExpertTypes),
		CredibilityBoosters:  planner.ReduceItems(s.Sources.CredibilityBoosters),
		ResearchQuestions:    planner.ReduceItems(s.Sources.ResearchQuestions),
	})
	if m.aborted(ctx, "outline") {
		return ctx.Err()
	}
	if err != nil {
		return m.fail("outline", err)
	}
	s.Outline = outline
	if advance {
		s.NextStep()
		m.finish()
		return nil
	}
	// Regeneration clears the compiled sheet and leaves it empty; the
	// auto-compile guard re-fires on the next state change instead of
	// immediately, so the caller can see the cleared state.
	s.CompiledHelpSheet = ""
	s.Loading = false
	m.persist()
	return nil
}

// maybeCompile fires compilation exactly once per set of inputs: terminal
// step, everything populated, and nothing compiled yet. The guard keeps
// manual edits to the compiled sheet from being clobbered on every change.
func (m *Machine) maybeCompile() {
	if m.state.CurrentStep == StepOutlineExport && m.state.ReadyToCompile() && m.state.CompiledHelpSheet == "" {
		m.state.CompiledHelpSheet = CompileHelpSheet(m.state)
	}
}

// Compile recomputes the help sheet unconditionally.
func (m *Machine) Compile() (string, error) {
	if !m.state.ReadyToCompile() {
		return "", m.precondition(ErrNothingToCompileYet)
	}
	m.state.CompiledHelpSheet = CompileHelpSheet(m.state)
	m.persist()
	return m.state.CompiledHelpSheet, nil
}
