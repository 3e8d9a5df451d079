package portal

import (
	"reflect"
	"testing"

	"aluno-sync/internal/domain"
)

const turmaPageHTML = `<!DOCTYPE html>
<html><body>
<div class="topopage">Turma&nbsp;951522&nbsp;2026/1</div>
<div title="Dados Gerais">
  <p><span class="label">Disciplina:</span> ADMINISTRAÇÃO DE BANCO DE DADOS</p>
  <p><span class="label">Curso:</span> MAR - CURSO  DE BACHARELADO EM CIÊNCIA DA COMPUTAÇÃO</p>
  <p><span class="label">Ano:</span> 2026</p>
  <p><span class="label">Período:</span> 1º Semestre</p>
  <p><span class="label">Carga Horária Realizada:</span> 72</p>
  <table class="tablevagas">
    <tr><td class="label">Vagas Totais:</td><td><strong>40</strong></td></tr>
    <tr><td class="label">Vagas Ocupadas:</td><td><strong>25</strong></td></tr>
    <tr><td class="label">Total de Matrículas:</td><td><strong>25</strong></td></tr>
    <tr><td class="label">Total de Solicitações:</td><td><strong>0</strong></td></tr>
  </table>
</div>
<div title="Docentes">
  <table>
    <thead><tr><th>Nome do Docente</th><th>Papel do Docente</th></tr></thead>
    <tbody><tr><td>JORGE DE ABREU SOARES</td><td>Colaborador</td></tr></tbody>
  </table>
</div>
<div title="Horários">
  <table>
    <thead><tr>
      <th>Aula</th><th>Dia da Semana</th><th>Hora Início</th><th>Hora Fim</th>
      <th>Data Início Período</th><th>Data Fim Período</th>
    </tr></thead>
    <tbody><tr>
      <td>Teórica</td><td>2 - Segunda-feira</td><td>14:35</td><td>18:10</td>
      <td>23/02/2026</td><td>02/07/2026</td>
    </tr></tbody>
  </table>
</div>
<div title="Espaço Físico">
  <table>
    <thead><tr><th>Nome do Prédio</th><th>Número da Sala</th><th>Espaço Físico</th></tr></thead>
    <tbody><tr><td>Bloco E</td><td>420</td><td>Laboratório</td></tr></tbody>
  </table>
</div>
</body></html>`

func TestParseTurmaPage(t *testing.T) {
	doc, err := parsePage([]byte(turmaPageHTML))
	if err != nil {
		t.Fatal(err)
	}

	raw, err := parseTurmaPage(doc, "951522")
	if err != nil {
		t.Fatalf("parseTurmaPage() error = %v", err)
	}

	if raw.Disciplina != "ADMINISTRAÇÃO DE BANCO DE DADOS" {
		t.Errorf("Disciplina = %q", raw.Disciplina)
	}
	if raw.Nome != "951522" {
		t.Errorf("Nome = %q, want topo-page section id", raw.Nome)
	}
	if raw.Ano != "2026" {
		t.Errorf("Ano = %q", raw.Ano)
	}
	if raw.Semestre != "1" {
		t.Errorf("Semestre = %q, want first digit of Período", raw.Semestre)
	}
	if raw.CargaHoraria != "72" {
		t.Errorf("CargaHoraria = %q", raw.CargaHoraria)
	}
	if raw.VagasTotais != "40" || raw.VagasOcupadas != "25" || raw.TotalMatric != "25" || raw.TotalSolicit != "0" {
		t.Errorf("seat counters = %q/%q/%q/%q", raw.VagasTotais, raw.VagasOcupadas, raw.TotalMatric, raw.TotalSolicit)
	}

	if !reflect.DeepEqual(raw.Docentes, []domain.RawDocente{
		{Nome: "JORGE DE ABREU SOARES", Papel: "Colaborador"},
	}) {
		t.Errorf("Docentes = %+v", raw.Docentes)
	}
	if !reflect.DeepEqual(raw.Horarios, []domain.RawHorario{{
		Aula:       "Teórica",
		DiaSemana:  "2 - Segunda-feira",
		HoraInicio: "14:35",
		HoraFim:    "18:10",
		DataInicio: "23/02/2026",
		DataFim:    "02/07/2026",
	}}) {
		t.Errorf("Horarios = %+v", raw.Horarios)
	}
	if !reflect.DeepEqual(raw.Espacos, []domain.RawEspaco{
		{Predio: "Bloco E", Sala: "420", Espaco: "Laboratório"},
	}) {
		t.Errorf("Espacos = %+v", raw.Espacos)
	}

	if err := raw.Validate(); err != nil {
		t.Errorf("parsed page fails validation: %v", err)
	}
}

func TestParseTurmaPageAbsentTables(t *testing.T) {
	page := `<html><body>
<div class="topopage">Turma&nbsp;1</div>
<div title="Dados Gerais">
  <p><span class="label">Disciplina:</span> FÍSICA</p>
</div>
</body></html>`

	doc, err := parsePage([]byte(page))
	if err != nil {
		t.Fatal(err)
	}

	raw, err := parseTurmaPage(doc, "1")
	if err != nil {
		t.Fatalf("parseTurmaPage() error = %v", err)
	}
	if raw.Docentes != nil || raw.Horarios != nil || raw.Espacos != nil {
		t.Errorf("absent tables must parse as nil slices: %+v", raw)
	}
}

func TestParseTurmaPageNoDadosGerais(t *testing.T) {
	doc, err := parsePage([]byte("<html><body><p>sessão expirada</p></body></html>"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parseTurmaPage(doc, "1"); err == nil {
		t.Fatal("expected error for page without Dados Gerais, got nil")
	}
}
