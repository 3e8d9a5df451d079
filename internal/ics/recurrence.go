package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"aluno-sync/internal/domain"
)

const (
	dateLayout  = "02/01/2006" // portal period dates: dd/mm/yyyy
	stampLayout = "20060102T150405"

	// The UNTIL bound pins recurrence to the end of the period's last day.
	// The clock part is constant, so it is appended as a literal; its digits
	// would otherwise be eaten as time.Format tokens.
	untilClock = "T235959Z"
)

// Event is one weekly-repeating agenda entry derived from a single Horários
// row, bounded by the semester's period dates. Constructed transiently during
// export, never mutated afterwards.
type Event struct {
	Title       string
	Start       time.Time // first occurrence, wall clock
	End         time.Time
	ICSDay      string // BYDAY code
	Until       string // pre-rendered UNTIL bound, end of the period's last day
	Location    string
	Description string
	UID         string
}

// BuildEvent derives the recurring event for one weekly slot. It returns
// (nil, nil) when the slot carries no usable schedule — unknown weekday code
// or missing period dates — since the agenda tolerates partial data. A
// malformed date or time is returned as an error so the caller can log and
// skip that one event without aborting the export.
func BuildEvent(turmaID, title string, h domain.RawHorario, location, description string) (*Event, error) {
	wd, ok := domain.WeekdayFor(h.DiaSemana)
	if !ok {
		return nil, nil
	}
	if h.DataInicio == "" || h.DataFim == "" {
		return nil, nil
	}

	periodStart, err := time.Parse(dateLayout, h.DataInicio)
	if err != nil {
		return nil, fmt.Errorf("ics: turma %s: bad period start %q: %w", turmaID, h.DataInicio, err)
	}
	periodEnd, err := time.Parse(dateLayout, h.DataFim)
	if err != nil {
		return nil, fmt.Errorf("ics: turma %s: bad period end %q: %w", turmaID, h.DataFim, err)
	}

	// First date on/after the period start that lands on the target weekday.
	// A start date already on the target weekday shifts by zero days.
	daysAhead := (wd.Ordinal - mondayOrdinal(periodStart.Weekday()) + 7) % 7
	first := periodStart.AddDate(0, 0, daysAhead)

	startH, startM, err := parseClock(h.HoraInicio)
	if err != nil {
		return nil, fmt.Errorf("ics: turma %s: bad start time %q: %w", turmaID, h.HoraInicio, err)
	}
	endH, endM, err := parseClock(h.HoraFim)
	if err != nil {
		return nil, fmt.Errorf("ics: turma %s: bad end time %q: %w", turmaID, h.HoraFim, err)
	}

	start := time.Date(first.Year(), first.Month(), first.Day(), startH, startM, 0, 0, time.UTC)
	end := time.Date(first.Year(), first.Month(), first.Day(), endH, endM, 0, 0, time.UTC)

	return &Event{
		Title:       title,
		Start:       start,
		End:         end,
		ICSDay:      wd.ICS,
		Until:       periodEnd.Format("20060102") + untilClock,
		Location:    location,
		Description: description,
		// Deterministic composite so re-exports regenerate identical UIDs.
		UID: fmt.Sprintf("%s-%s-%s@aluno-sync", turmaID, wd.ICS, start.Format("1504")),
	}, nil
}

// mondayOrdinal converts Go's Sunday-based weekday to the Monday=0 ordinal
// used by the weekday table.
func mondayOrdinal(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// parseClock parses an "HH:MM" portal time. An empty field defaults to
// midnight, matching the page's blank-cell rendering.
func parseClock(s string) (hour, minute int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("missing separator")
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("out of range")
	}
	return hour, minute, nil
}
