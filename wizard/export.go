package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title and collapses everything else into hyphens.
func Slugify(title string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "untitled"
	}
	return s
}

// ExportFileName derives the download name from the working title.
func ExportFileName(title string) string {
	return Slugify(title) + "-help-sheet.md"
}

// WriteFile writes the compiled sheet into dir and returns the full path.
// The content is written as-is; export never transforms it.
func (s *State) WriteFile(dir string) (string, error) {
	if s.CompiledHelpSheet == "" {
		return "", errors.New("nothing compiled to export")
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, ExportFileName(s.Input.WorkingTitle))
	if err := os.WriteFile(path, []byte(s.CompiledHelpSheet), 0o644); err != nil {
		return "", fmt.Errorf("write help sheet: %w", err)
	}
	return path, nil
}

// CopyToClipboard puts the compiled sheet on the system clipboard.
func (s *State) CopyToClipboard() error {
	if s.CompiledHelpSheet == "" {
		return errors.New("nothing compiled to copy")
	}
	return clipboard.WriteAll(s.CompiledHelpSheet)
}
