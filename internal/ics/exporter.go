package ics

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"aluno-sync/internal/domain"
)

var header = []string{
	"BEGIN:VCALENDAR",
	"VERSION:2.0",
	"PRODID:-//aluno-sync//PT",
	"CALSCALE:GREGORIAN",
	"METHOD:PUBLISH",
}

// Export renders the recurring agenda for the enrolled turmas. Turmas
// without Horários are omitted entirely. A malformed slot is logged and
// skipped; one bad record never aborts the rest of the calendar. The output
// is deterministic: turmas render in sorted-id order and event UIDs are
// derived solely from the input.
func Export(turmas map[string]domain.RawTurma) string {
	lines := append([]string{}, header...)

	ids := make([]string, 0, len(turmas))
	for id := range turmas {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		raw := turmas[id]
		if len(raw.Horarios) == 0 {
			continue
		}

		location := formatLocation(raw.Espacos)
		description := formatDescription(raw.Docentes)

		for _, h := range raw.Horarios {
			ev, err := BuildEvent(id, raw.Disciplina, h, location, description)
			if err != nil {
				log.Printf("ics: skipping slot for %s: %v", raw.Disciplina, err)
				continue
			}
			if ev == nil {
				continue
			}
			lines = append(lines, renderEvent(ev)...)
		}
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\n")
}

func renderEvent(ev *Event) []string {
	lines := []string{
		"BEGIN:VEVENT",
		"SUMMARY:" + ev.Title,
		"DTSTART:" + ev.Start.Format(stampLayout),
		"DTEND:" + ev.End.Format(stampLayout),
		fmt.Sprintf("RRULE:FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", ev.ICSDay, ev.Until),
	}
	if ev.Location != "" {
		lines = append(lines, "LOCATION:"+ev.Location)
	}
	lines = append(lines,
		"DESCRIPTION:"+ev.Description,
		"UID:"+ev.UID,
		"END:VEVENT",
	)
	return lines
}

// formatLocation joins the building/room/space fields of the first Espaço
// Físico row. Turmas occasionally list several rooms; the first one is the
// regular meeting place.
func formatLocation(espacos []domain.RawEspaco) string {
	if len(espacos) == 0 {
		return ""
	}
	e := espacos[0]
	parts := []string{}
	for _, p := range []string{e.Predio, e.Sala, e.Espaco} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func formatDescription(docentes []domain.RawDocente) string {
	profs := []string{}
	for _, d := range docentes {
		if d.Nome != "" {
			profs = append(profs, d.Nome)
		}
	}
	if len(profs) == 0 {
		return ""
	}
	return "Docentes: " + strings.Join(profs, ", ")
}
