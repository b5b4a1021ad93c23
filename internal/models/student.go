package models

// Student represents a learner registered in an academic program.
// MajorID is a foreign key into the major collection; it is validated at
// write time by the service layer, not continuously.
type Student struct {
	ID      string `json:"id_estudiante"`
	Name    string `json:"nombre"`
	MajorID string `json:"id_carrera"`
}

// StudentUpdate carries the mutable fields of a student. A nil field means
// "leave unchanged".
type StudentUpdate struct {
	Name    *string
	MajorID *string
}
