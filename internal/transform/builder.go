package transform

import (
	"fmt"
	"strconv"
	"strings"

	"aluno-sync/internal/curriculum"
	"aluno-sync/internal/domain"
	"aluno-sync/internal/normalize"
)

// Instructional hours per credit unit at the institution.
const hoursPerCredit = 18

// BuildCourse maps one raw scraped turma into the canonical course model,
// consulting the curriculum index for period and prerequisite fallbacks.
// Pure transform: the raw record is never mutated.
//
// The raw record is assumed to have passed RawTurma.Validate; only the
// documented optional fields (Docentes, Horários, Período, Carga Horária)
// are handled here. An unrecognized weekday code or a non-numeric workload
// is malformed scraped data and fails the build.
func BuildCourse(id string, raw domain.RawTurma, idx curriculum.Index) (domain.CanonicalCourse, error) {
	code := normalize.Clean(raw.Disciplina)
	name := normalize.Clean(raw.Nome)
	degree := cleanDegree(raw.Curso)

	professors := []string{}
	for _, d := range raw.Docentes {
		professors = append(professors, d.Nome)
	}

	// The oferta listing's period (specific to the actual offering) always
	// wins over the generic curriculum table value.
	period := raw.Periodo
	if period == "" {
		if entry, ok := idx[code]; ok {
			period = entry.Periodo
		}
	}

	credits, err := parseCredits(raw.CargaHoraria)
	if err != nil {
		return domain.CanonicalCourse{}, fmt.Errorf("transform: turma %s: %w", id, err)
	}

	slots := []domain.Slot{}
	for _, h := range raw.Horarios {
		wd, ok := domain.WeekdayFor(h.DiaSemana)
		if !ok {
			return domain.CanonicalCourse{}, fmt.Errorf("transform: turma %s: unknown weekday code in %q", id, h.DiaSemana)
		}
		slots = append(slots, domain.Slot{Day: wd.Label, Start: h.HoraInicio, End: h.HoraFim})
	}

	preReqs := []string{}
	if entry, ok := idx[code]; ok && entry.PreRequisitos != nil {
		preReqs = entry.PreRequisitos
	}

	return domain.CanonicalCourse{
		ID:         id,
		Code:       code,
		Name:       name,
		Degree:     degree,
		Professors: professors,
		Period:     period,
		Credits:    credits,
		Occupancy: domain.Occupancy{
			Total:     raw.VagasTotais,
			Occupied:  raw.TotalMatric,
			Requested: raw.TotalSolicit,
		},
		Slots:   slots,
		PreReqs: preReqs,
	}, nil
}

// cleanDegree normalizes the degree string and strips the portal's program
// prefix. The "CURSO DE " marker is stripped before the "- " separator; the
// reverse order would keep the marker for strings like
// "MAR - CURSO DE BACHARELADO EM CIENCIA DA COMPUTACAO".
func cleanDegree(curso string) string {
	degree := normalize.Clean(curso)
	if _, after, ok := strings.Cut(degree, "CURSO DE "); ok {
		degree = after
	}
	if _, after, ok := strings.Cut(degree, "- "); ok {
		degree = after
	}
	return degree
}

// parseCredits derives the credit count from the "Carga Horária Realizada"
// field: total hours integer-divided by 18, truncating toward zero. An
// absent field means zero credits; a non-numeric value is an error.
func parseCredits(cargaHoraria string) (int, error) {
	if cargaHoraria == "" {
		return 0, nil
	}
	hours, err := strconv.Atoi(strings.TrimSpace(cargaHoraria))
	if err != nil {
		return 0, fmt.Errorf("invalid carga horária %q: %w", cargaHoraria, err)
	}
	return hours / hoursPerCredit, nil
}
