package portal

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"aluno-sync/internal/concurrency"
	"aluno-sync/internal/domain"
)

// ErrOfertaUnavailable is returned when the matrícula page has no course
// selector; the oferta listing only exists while the enrollment phase is
// open.
var ErrOfertaUnavailable = errors.New("portal: matrícula page unavailable")

// ofertaRef is one turma in the oferta listing, tagged with its curriculum
// period digit.
type ofertaRef struct {
	ID      string
	Periodo string
}

// CursosDisponiveis returns the ids of the course programs the student can
// enroll in, taken from the matrícula page's selector.
func (c *Client) CursosDisponiveis(ctx context.Context, matricula string) ([]string, error) {
	doc, err := c.getDoc(ctx, c.BaseURL+"/aluno/aluno/matricula/oferta.action?matricula="+matricula, false)
	if err != nil {
		return nil, fmt.Errorf("portal: cursos disponíveis: %w", err)
	}

	cursos := findOne(doc, byID("cursos"))
	if cursos == nil {
		return nil, ErrOfertaUnavailable
	}

	var ids []string
	for _, opt := range findAll(cursos, byTag("option")) {
		ids = append(ids, attr(opt, "value"))
	}
	return ids, nil
}

// TurmasDisponiveis scrapes every turma offered for the given course
// programs, grouped per curriculum period in the listing. Each record gets
// its Período digit from the group it was listed under. Detail pages are
// fetched with a bounded worker pool; the listing can hold hundreds of
// turmas and fetching them serially takes several minutes.
func (c *Client) TurmasDisponiveis(ctx context.Context, matricula string, cursoIDs []string) (map[string]domain.RawTurma, error) {
	var refs []ofertaRef
	seen := map[string]bool{}

	for _, cursoID := range cursoIDs {
		pageURL := fmt.Sprintf(
			"%s/aluno/ajax/aluno/matricula/oferta.action?matricula=%s&cursoDisc=%s&exigeConsistencia=false&agruparPor=periodo",
			c.BaseURL, matricula, cursoID)
		doc, err := c.getDoc(ctx, pageURL, false)
		if err != nil {
			return nil, fmt.Errorf("portal: oferta for curso %s: %w", cursoID, err)
		}

		for _, ref := range parseOferta(doc) {
			if seen[ref.ID] {
				continue
			}
			seen[ref.ID] = true
			refs = append(refs, ref)
		}
	}

	turmas, errs := concurrency.Map(ctx, refs, concurrency.DefaultOptions(),
		func(ctx context.Context, ref ofertaRef) (domain.RawTurma, error) {
			raw, err := c.TurmaData(ctx, ref.ID)
			if err != nil {
				return domain.RawTurma{}, err
			}
			raw.Periodo = ref.Periodo
			return raw, nil
		})
	if len(errs) > 0 {
		return nil, fmt.Errorf("portal: turmas disponíveis: %w", errors.Join(errs...))
	}

	out := make(map[string]domain.RawTurma, len(refs))
	for i, ref := range refs {
		out[ref.ID] = turmas[i]
	}
	return out, nil
}

// parseOferta walks the period groups of an oferta page. The group anchor's
// text ends with the period digit; each disciplina holds its turma id as a
// list-item attribute.
func parseOferta(doc *html.Node) []ofertaRef {
	var refs []ofertaRef

	for _, group := range findAll(doc, byAttr("tipoinformacao", "periodo")) {
		periodo := ""
		if a := findOne(group, byTag("a")); a != nil {
			if t := rawText(a); t != "" {
				runes := []rune(t)
				periodo = string(runes[len(runes)-1])
			}
		}

		for _, disc := range findAll(group, byAttr("tipoinformacao", "disciplina")) {
			li := findOne(disc, byTag("li"))
			if li == nil {
				continue
			}
			id := attr(li, "idturma")
			if id == "" {
				continue
			}
			refs = append(refs, ofertaRef{ID: id, Periodo: periodo})
		}
	}
	return refs
}
