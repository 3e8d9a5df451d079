package portal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"aluno-sync/internal/concurrency"
	"aluno-sync/internal/domain"
)

// enrolledRef is one turma reference on the quadro de horário: its id plus
// the enrollment status shown on the badge.
type enrolledRef struct {
	ID     string
	Status string
}

// TurmasMatricula scrapes the student's quadro de horário: every turma the
// student is enrolled in or has requested, with full detail pages attached.
// The result maps turma id to its raw record, each carrying the Matrícula
// status badge ("Aceita/Matriculada" or "Solicitada").
func (c *Client) TurmasMatricula(ctx context.Context, matricula string) (map[string]domain.RawTurma, error) {
	pageURL := c.BaseURL + "/aluno/ajax/aluno/quadrohorario/quadrohorario.action?matricula=" + matricula
	doc, err := c.getDoc(ctx, pageURL, false)
	if err != nil {
		return nil, fmt.Errorf("portal: quadro de horário: %w", err)
	}

	refs, err := parseQuadro(doc)
	if err != nil {
		return nil, err
	}

	turmas, errs := concurrency.Map(ctx, refs, concurrency.DefaultOptions(),
		func(ctx context.Context, ref enrolledRef) (domain.RawTurma, error) {
			fmt.Printf("checando dados de turma %s | %s\n", ref.ID, ref.Status)
			raw, err := c.TurmaData(ctx, ref.ID)
			if err != nil {
				return domain.RawTurma{}, err
			}
			raw.Matricula = ref.Status
			return raw, nil
		})
	if len(errs) > 0 {
		return nil, fmt.Errorf("portal: quadro de horário: %w", errors.Join(errs...))
	}

	out := make(map[string]domain.RawTurma, len(refs))
	for i, ref := range refs {
		out[ref.ID] = turmas[i]
	}
	return out, nil
}

func parseQuadro(doc *html.Node) ([]enrolledRef, error) {
	var refs []enrolledRef
	seen := map[string]bool{}

	for _, block := range findAll(doc, byClass("turmaqh")) {
		link := findOne(block, byTag("a"))
		badge := findOne(block, byTag("img"))
		if link == nil || badge == nil {
			continue
		}

		href := attr(link, "href")
		_, id, ok := strings.Cut(href, "turma=")
		if !ok || id == "" {
			return nil, fmt.Errorf("portal: quadro de horário: no turma id in href %q", href)
		}
		// A turma meeting several times a week appears once per slot.
		if seen[id] {
			continue
		}
		seen[id] = true

		refs = append(refs, enrolledRef{ID: id, Status: attr(badge, "title")})
	}
	return refs, nil
}
