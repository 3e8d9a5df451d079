package transform

import (
	"encoding/json"
	"fmt"
	"os"

	"aluno-sync/internal/curriculum"
	"aluno-sync/internal/domain"
)

// LoadInputs reads the four datasets from disk. A missing file substitutes
// an empty collection — a fresh checkout has no scraped data yet and that is
// fine — but a file that exists and fails to parse is an error: silently
// consolidating over a corrupt dataset would produce a plausible-looking but
// wrong snapshot.
func LoadInputs(aprovadasPath, requisitosPath, disponiveisPath, matriculaPath string) (Inputs, error) {
	var in Inputs

	if err := readJSON(aprovadasPath, &in.DisciplinasAprovadas); err != nil {
		return Inputs{}, err
	}

	requisitos, err := curriculum.ReadFile(requisitosPath)
	if err != nil {
		return Inputs{}, err
	}
	in.Requisitos = requisitos

	if err := readJSON(disponiveisPath, &in.TurmasDisponiveis); err != nil {
		return Inputs{}, err
	}
	if err := readJSON(matriculaPath, &in.TurmasMatricula); err != nil {
		return Inputs{}, err
	}

	if in.TurmasDisponiveis == nil {
		in.TurmasDisponiveis = map[string]domain.RawTurma{}
	}
	if in.TurmasMatricula == nil {
		in.TurmasMatricula = map[string]domain.RawTurma{}
	}
	return in, nil
}

func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("transform: read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("transform: parse %s: %w", path, err)
	}
	return nil
}
