package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RawTurma is one scraped turma page, as persisted under data/. The JSON keys
// are the portal's own Portuguese table headers, so the files stay readable
// against the source pages. Records are immutable once handed to the
// transform layer.
//
// Docentes, Horarios and Espacos are nil when the corresponding table is
// absent from the page; that is the explicit "no data" case, not an error.
type RawTurma struct {
	Disciplina    string       `json:"Disciplina"`
	Nome          string       `json:"Nome"`
	Curso         string       `json:"Curso"`
	Ano           string       `json:"Ano"`
	Semestre      string       `json:"Semestre"`
	CargaHoraria  string       `json:"Carga Horária Realizada"`
	VagasTotais   string       `json:"Vagas Totais"`
	VagasOcupadas string       `json:"Vagas Ocupadas"`
	TotalMatric   string       `json:"Total de Matrículas"`
	TotalSolicit  string       `json:"Total de Solicitações"`
	Docentes      []RawDocente `json:"Docentes"`
	Horarios      []RawHorario `json:"Horários"`
	Espacos       []RawEspaco  `json:"Espaço Físico"`

	// Periodo is only set on oferta records (the listing's curriculum
	// period digit); quadro-de-horário records leave it empty.
	Periodo string `json:"Período,omitempty"`

	// Matricula is only set on enrolled records: "Aceita/Matriculada",
	// "Solicitada", or whatever legacy status the portal shows.
	Matricula string `json:"Matrícula,omitempty"`
}

// RawDocente is one row of the Docentes table.
type RawDocente struct {
	Nome  string `json:"Nome do Docente"`
	Papel string `json:"Papel do Docente"`
}

// RawHorario is one row of the Horários table: a weekly meeting plus the
// semester date range it repeats over.
type RawHorario struct {
	Aula       string `json:"Aula"`
	DiaSemana  string `json:"Dia da Semana"` // "2 - Segunda-feira"; first char is the code
	HoraInicio string `json:"Hora Início"`
	HoraFim    string `json:"Hora Fim"`
	DataInicio string `json:"Data Início Período"` // dd/mm/yyyy
	DataFim    string `json:"Data Fim Período"`
}

// RawEspaco is one row of the Espaço Físico table.
type RawEspaco struct {
	Predio string `json:"Nome do Prédio"`
	Sala   string `json:"Número da Sala"`
	Espaco string `json:"Espaço Físico"`
}

// Validate enforces the structural keys every turma page must carry. It runs
// once at the ingestion boundary; a failure is an input-contract violation
// and aborts the consolidation run.
func (t RawTurma) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Disciplina, validation.Required),
		validation.Field(&t.Nome, validation.Required),
		validation.Field(&t.Curso, validation.Required),
		validation.Field(&t.Ano, validation.Required),
		validation.Field(&t.Semestre, validation.Required),
		validation.Field(&t.VagasTotais, validation.Required),
	)
}

// RawRequisito is one entry of the locally maintained curriculum table.
type RawRequisito struct {
	Disciplina    string   `json:"disciplina" yaml:"disciplina"`
	PreRequisitos []string `json:"pre_requisitos" yaml:"pre_requisitos"`
	Periodo       string   `json:"periodo" yaml:"periodo"`
}
