package domain

// CanonicalCourse is the consolidated representation of one offered turma,
// independent of whether it came from the oferta listing or the student's
// quadro de horário. All raw portal records map into this model, and every
// artifact (snapshot, agenda) maps from it.
type CanonicalCourse struct {
	ID         string    `json:"id"`   // portal turma id, unique per snapshot
	Code       string    `json:"code"` // normalized discipline name
	Name       string    `json:"name"` // normalized section name
	Degree     string    `json:"degree"`
	Professors []string  `json:"professors"`
	Period     string    `json:"period"`
	Credits    int       `json:"credits"`
	Occupancy  Occupancy `json:"occupancy"`
	Slots      []Slot    `json:"slots"`
	PreReqs    []string  `json:"pre_requisits"`
}

// Occupancy mirrors the portal's seat counters verbatim. The portal renders
// them as text and the snapshot keeps them that way.
type Occupancy struct {
	Total     string `json:"total"`
	Occupied  string `json:"occupied"`
	Requested string `json:"requested"`
}

// Slot is one weekly meeting of a turma.
type Slot struct {
	Day   string `json:"day"` // three-letter Portuguese tag: SEG..DOM
	Start string `json:"start"`
	End   string `json:"end"`
}

// Snapshot is the consolidated artifact written to matricula_data.json.
type Snapshot struct {
	Version  string            `json:"version"`
	Metadata Metadata          `json:"metadata"`
	Courses  []CanonicalCourse `json:"courses"`
	User     UserState         `json:"user"`
}

type Metadata struct {
	Semester   string `json:"semester"`    // "{Ano}.{Semestre}", e.g. "2026.1"
	LastUpdate string `json:"last_update"` // ISO date
}

// UserState carries the student-specific view: which turmas are locked in,
// which are still pending requests, and the completed-discipline codes used
// for prerequisite checks downstream.
type UserState struct {
	ConfirmedCourseIDs    []string `json:"confirmed_course_ids"`
	PlannedCourseIDs      []string `json:"planned_course_ids"`
	CompletedCoursesCodes []string `json:"completed_courses_codes"`
}
