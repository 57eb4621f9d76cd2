// Package reports serves the JSON artifacts other tooling drops into
// the shared data directory.
package reports

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const DefaultDir = "/attack_data"

// Store reads report documents out of a single directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	if len(strings.TrimSpace(dir)) == 0 {
		dir = DefaultDir
	}
	return &Store{dir: dir}
}

// List decodes every *.json file whose name contains REPORT. A missing
// directory is not an error, it just means no reports yet. Files that
// fail to decode are skipped and logged.
func (s *Store) List() ([]any, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return []any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read report dir %s: %w", s.dir, err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".json") && strings.Contains(name, "REPORT") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	docs := []any{}
	for _, name := range names {
		doc, err := s.Read(name)
		if err != nil {
			slog.Warn("skipping unreadable report", "file", name, "error", err)
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Read decodes one JSON file from the data directory. The top-level
// value may be an object or an array. Names that would escape the
// directory are rejected; a missing file surfaces as os.ErrNotExist so
// callers can map it to 404.
func (s *Store) Read(filename string) (any, error) {
	if filepath.Base(filename) != filename || filename == "." || filename == ".." {
		return nil, fmt.Errorf("invalid report filename %q", filename)
	}

	b, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", filename, err)
	}

	return doc, nil
}
