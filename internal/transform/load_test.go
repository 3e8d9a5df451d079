package transform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInputsMissingFiles(t *testing.T) {
	dir := t.TempDir()

	in, err := LoadInputs(
		filepath.Join(dir, "aprovadas.json"),
		filepath.Join(dir, "requisitos.json"),
		filepath.Join(dir, "disponiveis.json"),
		filepath.Join(dir, "matricula.json"),
	)
	if err != nil {
		t.Fatalf("LoadInputs() error = %v, want nil for missing files", err)
	}

	if len(in.DisciplinasAprovadas) != 0 || len(in.Requisitos) != 0 {
		t.Error("expected empty collections for missing files")
	}
	if in.TurmasDisponiveis == nil || in.TurmasMatricula == nil {
		t.Error("turma maps must be non-nil even when files are missing")
	}
}

func TestLoadInputs(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	aprovadas := write("aprovadas.json", `["Cálculo I"]`)
	requisitos := write("requisitos.json", `[{"disciplina": "Física", "pre_requisitos": [], "periodo": "1"}]`)
	matricula := write("matricula.json", `{"42": {"Disciplina": "Física", "Nome": "1", "Curso": "C", "Ano": "2026", "Semestre": "1", "Vagas Totais": "10"}}`)

	in, err := LoadInputs(aprovadas, requisitos, filepath.Join(dir, "missing.json"), matricula)
	if err != nil {
		t.Fatalf("LoadInputs() error = %v", err)
	}

	if len(in.DisciplinasAprovadas) != 1 || len(in.Requisitos) != 1 {
		t.Errorf("unexpected input sizes: %+v", in)
	}
	raw, ok := in.TurmasMatricula["42"]
	if !ok {
		t.Fatal("expected turma 42 in matricula dataset")
	}
	if raw.Disciplina != "Física" || raw.VagasTotais != "10" {
		t.Errorf("raw turma decoded wrong: %+v", raw)
	}
}

func TestLoadInputsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matricula.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadInputs(
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "r.json"),
		filepath.Join(dir, "d.json"),
		path,
	)
	if err == nil {
		t.Fatal("expected error for corrupt dataset, got nil")
	}
}
