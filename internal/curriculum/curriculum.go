package curriculum

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"aluno-sync/internal/domain"
	"aluno-sync/internal/normalize"
)

// Entry is the static curriculum metadata for one discipline, keyed by its
// normalized name. It is independent of any offered turma.
type Entry struct {
	PreRequisitos []string
	Periodo       string
}

// Index maps normalized discipline name -> curriculum entry. Built once per
// run and read-only afterwards.
type Index map[string]Entry

// Build normalizes a raw requisitos table into an Index. Discipline and
// prerequisite names are cleaned so lookups match scraped data regardless of
// accents or abbreviations. The last entry wins on duplicate keys.
func Build(requisitos []domain.RawRequisito) Index {
	idx := make(Index, len(requisitos))
	for _, r := range requisitos {
		idx[normalize.Clean(r.Disciplina)] = Entry{
			PreRequisitos: normalize.CleanAll(r.PreRequisitos),
			Periodo:       r.Periodo,
		}
	}
	return idx
}

// Load reads the requisitos table from disk and builds the Index.
func Load(path string) (Index, error) {
	requisitos, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(requisitos), nil
}

// ReadFile reads the raw requisitos table. The file may be JSON (the
// scraper's native format) or YAML for hand-maintained tables. A missing
// file is not an error: the curriculum table is optional and its absence
// just means no prerequisite/period fallback data.
func ReadFile(path string) ([]domain.RawRequisito, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("curriculum: read %s: %w", path, err)
	}

	var requisitos []domain.RawRequisito
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &requisitos); err != nil {
			return nil, fmt.Errorf("curriculum: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &requisitos); err != nil {
			return nil, fmt.Errorf("curriculum: parse %s: %w", path, err)
		}
	}

	return requisitos, nil
}
