package portal

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"aluno-sync/internal/domain"
)

// TurmaData fetches and parses one turma detail page.
//
// The page renders a "Dados Gerais" container with a seat-count table,
// loose label/value spans (Disciplina, Curso, Ano, Período, ...), and three
// optional tables (Docentes, Horários, Espaço Físico). Absent tables come
// back as nil slices.
func (c *Client) TurmaData(ctx context.Context, turmaID string) (domain.RawTurma, error) {
	doc, err := c.getDoc(ctx, c.BaseURL+"/aluno/aluno/turma.action?turma="+turmaID, true)
	if err != nil {
		return domain.RawTurma{}, fmt.Errorf("portal: turma %s: %w", turmaID, err)
	}
	return parseTurmaPage(doc, turmaID)
}

func parseTurmaPage(doc *html.Node, turmaID string) (domain.RawTurma, error) {
	container := findOne(doc, divByTitle("Dados Gerais"))
	if container == nil {
		return domain.RawTurma{}, fmt.Errorf("portal: turma %s: dados gerais container not found", turmaID)
	}

	fields := map[string]string{}

	// Seat counters live in a nested label/strong table.
	for _, table := range findAll(container, byClass("tablevagas")) {
		for _, row := range findAll(table, byTag("tr")) {
			label := findOne(row, byClass("label"))
			value := findOne(row, byTag("strong"))
			if label != nil && value != nil {
				fields[stripColon(text(label))] = text(value)
			}
		}
	}

	// Loose labeled fields: the value is the parent's text minus the label.
	for _, lbl := range findAll(container, spanWithClass("label")) {
		key := stripColon(text(lbl))
		if _, exists := fields[key]; exists {
			continue
		}
		value := strings.TrimSpace(strings.ReplaceAll(text(lbl.Parent), text(lbl), ""))
		if value != "" {
			fields[key] = value
		}
	}

	raw := domain.RawTurma{
		Disciplina:    fields["Disciplina"],
		Curso:         fields["Curso"],
		Ano:           fields["Ano"],
		CargaHoraria:  fields["Carga Horária Realizada"],
		VagasTotais:   fields["Vagas Totais"],
		VagasOcupadas: fields["Vagas Ocupadas"],
		TotalMatric:   fields["Total de Matrículas"],
		TotalSolicit:  fields["Total de Solicitações"],
		Nome:          parseTopoNome(doc),
	}

	// The page shows "1º Semestre"; only the ordinal digit is kept. The
	// raw Período label is dropped — the canonical Período field is the
	// curriculum period set by the oferta listing, not this one.
	if p := fields["Período"]; p != "" {
		raw.Semestre = string([]rune(p)[0])
	}

	for _, row := range tableByTitle(doc, "Docentes") {
		raw.Docentes = append(raw.Docentes, domain.RawDocente{
			Nome:  row["Nome do Docente"],
			Papel: row["Papel do Docente"],
		})
	}
	for _, row := range tableByTitle(doc, "Horários") {
		raw.Horarios = append(raw.Horarios, domain.RawHorario{
			Aula:       row["Aula"],
			DiaSemana:  row["Dia da Semana"],
			HoraInicio: row["Hora Início"],
			HoraFim:    row["Hora Fim"],
			DataInicio: row["Data Início Período"],
			DataFim:    row["Data Fim Período"],
		})
	}
	for _, row := range tableByTitle(doc, "Espaço Físico") {
		raw.Espacos = append(raw.Espacos, domain.RawEspaco{
			Predio: row["Nome do Prédio"],
			Sala:   row["Número da Sala"],
			Espaco: row["Espaço Físico"],
		})
	}

	return raw, nil
}

// parseTopoNome extracts the section name from the topo-page heading, whose
// parts are separated by no-break spaces.
func parseTopoNome(doc *html.Node) string {
	topo := findOne(doc, byClass("topopage"))
	if topo == nil {
		return ""
	}
	parts := strings.Split(rawText(topo), " ")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// tableByTitle parses the table inside the titled container into one map
// per body row, keyed by the header cells. Returns nil when the container
// or the table is absent from the page.
func tableByTitle(doc *html.Node, title string) []map[string]string {
	container := findOne(doc, divByTitle(title))
	if container == nil {
		return nil
	}
	table := findOne(container, byTag("table"))
	if table == nil {
		return nil
	}

	var headers []string
	if thead := findOne(table, byTag("thead")); thead != nil {
		for _, th := range findAll(thead, byTag("th")) {
			headers = append(headers, text(th))
		}
	}

	tbody := findOne(table, byTag("tbody"))
	if tbody == nil {
		return nil
	}

	var rows []map[string]string
	for _, tr := range findAll(tbody, byTag("tr")) {
		row := map[string]string{}
		for i, td := range findAll(tr, byTag("td")) {
			if i < len(headers) {
				row[headers[i]] = text(td)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func divByTitle(title string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == "div" && attr(n, "title") == title }
}

func spanWithClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == "span" && hasClass(n, class) }
}

func stripColon(s string) string {
	return strings.ReplaceAll(s, ":", "")
}
