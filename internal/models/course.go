package models

// Course represents a credit-bearing academic offering.
type Course struct {
	ID      string `json:"id_curso"`
	Name    string `json:"nombre_curso"`
	Credits int    `json:"creditos"`
}

// CourseUpdate carries the mutable fields of a course. A nil field means
// "leave unchanged"; this replaces the legacy "-1 keeps the credits"
// sentinel, so a literal 0 is a valid new credit value.
type CourseUpdate struct {
	Name    *string
	Credits *int
}
