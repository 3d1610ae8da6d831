package wizard

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store persists the wizard state as a single JSON file. Persistence is
// best-effort: a run must keep working in memory when the disk misbehaves,
// so read and write failures are logged and swallowed.
type Store struct {
	path   string
	logger *zap.Logger
}

func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Load hydrates the persisted state, or returns a fresh one when the file is
// missing, unreadable, or from a different schema version.
func (st *Store) Load() *State {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			st.logger.Warn("read planner state failed", zap.String("path", st.path), zap.Error(err))
		}
		return NewState()
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		st.logger.Warn("parse planner state failed, starting fresh", zap.String("path", st.path), zap.Error(err))
		return NewState()
	}
	if s.SchemaVersion != SchemaVersion {
		st.logger.Warn("planner state schema mismatch, starting fresh",
			zap.Int("found", s.SchemaVersion), zap.Int("want", SchemaVersion))
		return NewState()
	}
	if s.CurrentStep < StepMin || s.CurrentStep > StepMax {
		s.CurrentStep = StepMin
	}
	// Transients are never trusted from disk.
	s.Loading = false
	s.Err = ""
	return &s
}

// Save writes the state with transients forced clear.
func (st *Store) Save(s *State) {
	copied := *s
	copied.SchemaVersion = SchemaVersion
	copied.Loading = false
	copied.Err = ""
	data, err := json.MarshalIndent(&copied, "", "  ")
	if err != nil {
		st.logger.Warn("encode planner state failed", zap.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		st.logger.Warn("create state dir failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		st.logger.Warn("write planner state failed", zap.String("path", st.path), zap.Error(err))
	}
}

// Clear removes the persisted file.
func (st *Store) Clear() {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		st.logger.Warn("remove planner state failed", zap.String("path", st.path), zap.Error(err))
	}
}
