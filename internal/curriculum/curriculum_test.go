package curriculum

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"aluno-sync/internal/domain"
)

func TestBuild(t *testing.T) {
	requisitos := []domain.RawRequisito{
		{
			Disciplina:    "Equações Diferenciais Parciais e Séries (EDPS)",
			PreRequisitos: []string{"Cálculo a Várias Variáveis"},
			Periodo:       "4",
		},
		{
			Disciplina: "Álgebra Linear",
			Periodo:    "2",
		},
	}

	idx := Build(requisitos)

	entry, ok := idx["EQUACOES DIFERENCIAIS PARCIAIS E SERIES"]
	if !ok {
		t.Fatalf("expected normalized key for EDPS, got keys %v", keys(idx))
	}
	if entry.Periodo != "4" {
		t.Errorf("Periodo = %q, want %q", entry.Periodo, "4")
	}
	if !reflect.DeepEqual(entry.PreRequisitos, []string{"CALCULO A VARIAS VARIAVEIS"}) {
		t.Errorf("PreRequisitos = %v, want normalized names", entry.PreRequisitos)
	}

	if _, ok := idx["ALGEBRA LINEAR"]; !ok {
		t.Errorf("expected accent-stripped key ALGEBRA LINEAR, got keys %v", keys(idx))
	}
}

func TestBuildDuplicateKeysLastWins(t *testing.T) {
	idx := Build([]domain.RawRequisito{
		{Disciplina: "Física I", Periodo: "1"},
		{Disciplina: "FISICA I", Periodo: "3"},
	})

	if len(idx) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(idx))
	}
	if idx["FISICA I"].Periodo != "3" {
		t.Errorf("Periodo = %q, want last entry to win", idx["FISICA I"].Periodo)
	}
}

func TestLoadMissingFile(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "requisitos.json"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if len(idx) != 0 {
		t.Errorf("expected empty index, got %d entries", len(idx))
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requisitos.json")
	content := `[{"disciplina": "Cálculo I", "pre_requisitos": [], "periodo": "1"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if idx["CALCULO I"].Periodo != "1" {
		t.Errorf("expected CALCULO I with periodo 1, got %v", idx)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requisitos.yaml")
	content := "- disciplina: Cálculo II\n  pre_requisitos:\n    - Cálculo I\n  periodo: \"2\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entry := idx["CALCULO II"]
	if entry.Periodo != "2" {
		t.Errorf("Periodo = %q, want %q", entry.Periodo, "2")
	}
	if !reflect.DeepEqual(entry.PreRequisitos, []string{"CALCULO I"}) {
		t.Errorf("PreRequisitos = %v, want [CALCULO I]", entry.PreRequisitos)
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requisitos.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error for corrupt file, got nil")
	}
}

func keys(idx Index) []string {
	out := make([]string, 0, len(idx))
	for k := range idx {
		out = append(out, k)
	}
	return out
}
