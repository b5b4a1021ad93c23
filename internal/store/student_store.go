package store

import (
	"strings"

	"github.com/noah-isme/matricula-cli/internal/models"
)

const (
	studentIDPrefix = "E"
	studentIDWidth  = 3
)

// StudentStore holds the in-memory, insertion-ordered student collection.
type StudentStore struct {
	students []models.Student
}

// NewStudentStore wraps an already-loaded collection.
func NewStudentStore(students []models.Student) *StudentStore {
	return &StudentStore{students: students}
}

// All exposes the backing collection in insertion order.
func (s *StudentStore) All() []models.Student {
	return s.students
}

// Len reports the collection size.
func (s *StudentStore) Len() int {
	return len(s.students)
}

// FindByID returns the first student with the exact id, or nil.
func (s *StudentStore) FindByID(id string) *models.Student {
	for i := range s.students {
		if s.students[i].ID == id {
			return &s.students[i]
		}
	}
	return nil
}

// FindByName returns the first student whose name matches case-insensitively
// after trimming, or nil.
func (s *StudentStore) FindByName(name string) *models.Student {
	want := strings.ToLower(strings.TrimSpace(name))
	for i := range s.students {
		if strings.ToLower(strings.TrimSpace(s.students[i].Name)) == want {
			return &s.students[i]
		}
	}
	return nil
}

// AnyWithMajor reports whether some student references the major. Backs the
// delete-time integrity guard on majors.
func (s *StudentStore) AnyWithMajor(majorID string) bool {
	for i := range s.students {
		if s.students[i].MajorID == majorID {
			return true
		}
	}
	return false
}

// NextID generates the next Ennn identifier.
func (s *StudentStore) NextID() string {
	ids := make([]string, len(s.students))
	for i, st := range s.students {
		ids[i] = st.ID
	}
	return nextID(studentIDPrefix, studentIDWidth, ids)
}

// New constructs a student with a fresh id without inserting it.
func (s *StudentStore) New(name, majorID string) models.Student {
	return models.Student{ID: s.NextID(), Name: name, MajorID: majorID}
}

// Insert appends the record to the collection.
func (s *StudentStore) Insert(st models.Student) {
	s.students = append(s.students, st)
}

// Update mutates the record in place. Nil fields stay untouched.
func (s *StudentStore) Update(st *models.Student, upd models.StudentUpdate) {
	if upd.Name != nil && *upd.Name != "" {
		st.Name = *upd.Name
	}
	if upd.MajorID != nil && *upd.MajorID != "" {
		st.MajorID = *upd.MajorID
	}
}

// Delete removes the student by id and reports whether it was present.
func (s *StudentStore) Delete(id string) bool {
	for i := range s.students {
		if s.students[i].ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return true
		}
	}
	return false
}
