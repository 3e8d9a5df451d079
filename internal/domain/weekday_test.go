package domain

import "testing"

func TestWeekdayFor(t *testing.T) {
	tests := []struct {
		in      string
		label   string
		ics     string
		ordinal int
	}{
		{"1 - Domingo", "DOM", "SU", 6},
		{"2 - Segunda-feira", "SEG", "MO", 0},
		{"3 - Terça-feira", "TER", "TU", 1},
		{"4 - Quarta-feira", "QUA", "WE", 2},
		{"5 - Quinta-feira", "QUI", "TH", 3},
		{"6 - Sexta-feira", "SEX", "FR", 4},
		{"7 - Sábado", "SAB", "SA", 5},
		{"2", "SEG", "MO", 0},
	}
	for _, tt := range tests {
		wd, ok := WeekdayFor(tt.in)
		if !ok {
			t.Errorf("WeekdayFor(%q) not found", tt.in)
			continue
		}
		if wd.Label != tt.label || wd.ICS != tt.ics || wd.Ordinal != tt.ordinal {
			t.Errorf("WeekdayFor(%q) = %+v, want %s/%s/%d", tt.in, wd, tt.label, tt.ics, tt.ordinal)
		}
	}
}

func TestWeekdayForUnknown(t *testing.T) {
	for _, in := range []string{"", "0 - ?", "8 - ?", "Segunda-feira"} {
		if _, ok := WeekdayFor(in); ok {
			t.Errorf("WeekdayFor(%q) = ok, want not found", in)
		}
	}
}
