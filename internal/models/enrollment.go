package models

// Enrollment links one student to a set of courses for one academic term.
// Enrollments are immutable once created: the ledger only ever appends.
//
// Term is an opaque label such as "2025-01". It is never parsed or compared
// for ordering; recency is defined purely by append order in the ledger.
type Enrollment struct {
	ID        string   `json:"id_matricula"`
	StudentID string   `json:"id_estudiante"`
	CourseIDs []string `json:"id_cursos"`
	Term      string   `json:"periodo_academico"`
}
