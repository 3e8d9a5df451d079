package transform

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"aluno-sync/internal/curriculum"
	"aluno-sync/internal/domain"
	"aluno-sync/internal/normalize"
)

// SnapshotVersion is the fixed schema tag of the consolidated artifact.
const SnapshotVersion = "1.0"

// ErrNoEnrolledTurmas is returned when the semester label cannot be derived
// because the enrolled-turma dataset is empty.
var ErrNoEnrolledTurmas = errors.New("transform: cannot derive semester: no enrolled turmas")

// Inputs are the four datasets the consolidation consumes. Any of them may
// be empty; the scraping layer substitutes empty collections for missing
// files before calling Consolidate.
type Inputs struct {
	DisciplinasAprovadas []string
	Requisitos           []domain.RawRequisito
	TurmasDisponiveis    map[string]domain.RawTurma
	TurmasMatricula      map[string]domain.RawTurma
}

// Consolidate runs the full normalization pass: builds the curriculum index,
// maps every available and enrolled turma into the canonical model,
// classifies enrollment, and assembles the snapshot. Turmas are processed in
// sorted-id order so the output is deterministic across runs.
//
// Any validation or build error aborts the whole run: the snapshot is only
// as trustworthy as its weakest record, so no partial document is produced.
func Consolidate(in Inputs, now time.Time) (domain.Snapshot, error) {
	idx := curriculum.Build(in.Requisitos)

	courses := []domain.CanonicalCourse{}
	for _, id := range sortedIDs(in.TurmasDisponiveis) {
		c, err := buildValidated(id, in.TurmasDisponiveis[id], idx)
		if err != nil {
			return domain.Snapshot{}, err
		}
		courses = append(courses, c)
	}

	enrollment := Enrollment{ConfirmedIDs: []string{}, PlannedIDs: []string{}}
	for _, id := range sortedIDs(in.TurmasMatricula) {
		raw := in.TurmasMatricula[id]
		c, err := buildValidated(id, raw, idx)
		if err != nil {
			return domain.Snapshot{}, err
		}
		courses = append(courses, c)
		enrollment.Classify(id, raw)
	}

	semester, err := deriveSemester(in.TurmasMatricula)
	if err != nil {
		return domain.Snapshot{}, err
	}

	return domain.Snapshot{
		Version: SnapshotVersion,
		Metadata: domain.Metadata{
			Semester:   semester,
			LastUpdate: now.Format("2006-01-02"),
		},
		Courses: courses,
		User: domain.UserState{
			ConfirmedCourseIDs:    enrollment.ConfirmedIDs,
			PlannedCourseIDs:      enrollment.PlannedIDs,
			CompletedCoursesCodes: normalize.CleanAll(in.DisciplinasAprovadas),
		},
	}, nil
}

func buildValidated(id string, raw domain.RawTurma, idx curriculum.Index) (domain.CanonicalCourse, error) {
	if err := raw.Validate(); err != nil {
		return domain.CanonicalCourse{}, fmt.Errorf("transform: turma %s: %w", id, err)
	}
	return BuildCourse(id, raw, idx)
}

// deriveSemester picks the most common (Ano, Semestre) pair across the
// enrolled turmas, with ties broken lexically so the result never depends on
// map iteration order. Enrolled records are the only trustworthy source for
// the label: the oferta listing can span several program offerings.
func deriveSemester(enrolled map[string]domain.RawTurma) (string, error) {
	if len(enrolled) == 0 {
		return "", ErrNoEnrolledTurmas
	}

	counts := map[string]int{}
	for _, raw := range enrolled {
		counts[fmt.Sprintf("%s.%s", raw.Ano, raw.Semestre)]++
	}

	best := ""
	for label, n := range counts {
		if best == "" || n > counts[best] || (n == counts[best] && label < best) {
			best = label
		}
	}
	return best, nil
}

func sortedIDs(turmas map[string]domain.RawTurma) []string {
	ids := make([]string, 0, len(turmas))
	for id := range turmas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
