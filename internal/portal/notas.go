package portal

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Situações that count as completed on the histórico escolar.
const (
	situacaoAprovado = "Aprovado"
	situacaoIsento   = "Isento"
)

// DisciplinasAprovadas scrapes the histórico escolar and returns the names
// of every discipline the student completed (approved or exempted), in page
// order. The name cell appends the turma code after a double-space run, so
// everything from the first double space on is discarded.
func (c *Client) DisciplinasAprovadas(ctx context.Context, matricula string) ([]string, error) {
	doc, err := c.getDoc(ctx, c.BaseURL+"/aluno/aluno/nota/nota.action?matricula="+matricula, true)
	if err != nil {
		return nil, fmt.Errorf("portal: disciplinas aprovadas: %w", err)
	}
	return parseAprovadas(doc), nil
}

func parseAprovadas(doc *html.Node) []string {
	var aprovadas []string

	for _, table := range findAll(doc, tableWithClass("table-turmas")) {
		tbody := findOne(table, byTag("tbody"))
		if tbody == nil {
			continue
		}
		for _, tr := range findAll(tbody, byTag("tr")) {
			tds := findAll(tr, byTag("td"))
			if len(tds) < 2 {
				continue
			}

			disciplina := strings.TrimSpace(rawText(tds[0]))
			if i := strings.Index(disciplina, "  "); i >= 0 {
				disciplina = disciplina[:i]
			}

			situacao := text(tds[1])
			if situacao == situacaoAprovado || situacao == situacaoIsento {
				aprovadas = append(aprovadas, disciplina)
			}
		}
	}
	return aprovadas
}

func tableWithClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == "table" && hasClass(n, class) }
}
