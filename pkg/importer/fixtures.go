package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/trustification/spog-ui-e2e/internal/models"
)

// ReadFixtures reads every regular file of dir in name order.
// Sub-directories are skipped.
func ReadFixtures(dir string, kind models.FixtureKind) ([]models.FixtureFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s fixtures from %s: %w", kind, dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	fixtures := make([]models.FixtureFile, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
		}
		fixtures = append(fixtures, models.FixtureFile{
			Kind:     kind,
			Filename: e.Name(),
			Path:     path,
			Content:  content,
		})
	}

	return fixtures, nil
}
