package transform

import "aluno-sync/internal/domain"

// Enrollment status tags as the portal renders them on the quadro de horário.
const (
	StatusConfirmed = "Aceita/Matriculada"
	StatusRequested = "Solicitada"
)

// Enrollment partitions enrolled turma ids by membership status.
type Enrollment struct {
	ConfirmedIDs []string
	PlannedIDs   []string
}

// Classify sorts one enrolled turma into its status bucket. Statuses other
// than the two known tags are tolerated and simply not surfaced: the portal
// occasionally shows legacy states that are not actionable for the student.
func (e *Enrollment) Classify(id string, raw domain.RawTurma) {
	switch raw.Matricula {
	case StatusConfirmed:
		e.ConfirmedIDs = append(e.ConfirmedIDs, id)
	case StatusRequested:
		e.PlannedIDs = append(e.PlannedIDs, id)
	}
}
