package models

// Major represents an academic program ("carrera") a student belongs to.
type Major struct {
	ID   string `json:"id_carrera"`
	Name string `json:"nombre_carrera"`
}

// MajorUpdate carries the mutable fields of a major. A nil field means
// "leave unchanged".
type MajorUpdate struct {
	Name *string
}
