package domain

import "testing"

func validTurma() RawTurma {
	return RawTurma{
		Disciplina:  "CÁLCULO I",
		Nome:        "951522",
		Curso:       "CCOMP - BACHARELADO EM CIÊNCIA DA COMPUTAÇÃO",
		Ano:         "2026",
		Semestre:    "1",
		VagasTotais: "40",
	}
}

func TestRawTurmaValidate(t *testing.T) {
	if err := validTurma().Validate(); err != nil {
		t.Fatalf("Validate() on complete record = %v", err)
	}
}

func TestRawTurmaValidateMissingField(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*RawTurma)
	}{
		{"disciplina", func(r *RawTurma) { r.Disciplina = "" }},
		{"nome", func(r *RawTurma) { r.Nome = "" }},
		{"curso", func(r *RawTurma) { r.Curso = "" }},
		{"ano", func(r *RawTurma) { r.Ano = "" }},
		{"semestre", func(r *RawTurma) { r.Semestre = "" }},
		{"vagas totais", func(r *RawTurma) { r.VagasTotais = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validTurma()
			tt.mut(&raw)
			if err := raw.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error for missing %s", tt.name)
			}
		})
	}
}

func TestRawTurmaOptionalFieldsNotRequired(t *testing.T) {
	raw := validTurma()
	raw.Docentes = nil
	raw.Horarios = nil
	raw.Espacos = nil
	raw.Periodo = ""
	raw.Matricula = ""
	if err := raw.Validate(); err != nil {
		t.Fatalf("Validate() with optional fields empty = %v", err)
	}
}
