package domain

// Weekday describes one entry of the portal's weekday numbering, where the
// first character of the "Dia da Semana" field is a digit from 1 (Sunday)
// to 7 (Saturday).
type Weekday struct {
	Label   string // Portuguese three-letter tag: DOM..SAB
	ICS     string // iCalendar BYDAY code: SU..SA
	Ordinal int    // Monday=0 .. Sunday=6
}

// Weekdays maps the portal's weekday digit to its labels. Shared by the
// course builder (Label) and the agenda generator (ICS, Ordinal).
var Weekdays = map[byte]Weekday{
	'1': {Label: "DOM", ICS: "SU", Ordinal: 6},
	'2': {Label: "SEG", ICS: "MO", Ordinal: 0},
	'3': {Label: "TER", ICS: "TU", Ordinal: 1},
	'4': {Label: "QUA", ICS: "WE", Ordinal: 2},
	'5': {Label: "QUI", ICS: "TH", Ordinal: 3},
	'6': {Label: "SEX", ICS: "FR", Ordinal: 4},
	'7': {Label: "SAB", ICS: "SA", Ordinal: 5},
}

// WeekdayFor resolves the weekday entry for a raw "Dia da Semana" value.
// The second return is false when the field is empty or its first character
// is not one of the seven recognized digits.
func WeekdayFor(diaSemana string) (Weekday, bool) {
	if diaSemana == "" {
		return Weekday{}, false
	}
	wd, ok := Weekdays[diaSemana[0]]
	return wd, ok
}
