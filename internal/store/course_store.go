package store

import "github.com/noah-isme/matricula-cli/internal/models"

const (
	courseIDPrefix = "C"
	courseIDWidth  = 3
)

// CourseStore holds the in-memory, insertion-ordered course collection.
type CourseStore struct {
	courses []models.Course
}

// NewCourseStore wraps an already-loaded collection.
func NewCourseStore(courses []models.Course) *CourseStore {
	return &CourseStore{courses: courses}
}

// All exposes the backing collection in insertion order.
func (s *CourseStore) All() []models.Course {
	return s.courses
}

// Len reports the collection size.
func (s *CourseStore) Len() int {
	return len(s.courses)
}

// FindByID returns the first course with the exact id, or nil.
func (s *CourseStore) FindByID(id string) *models.Course {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return &s.courses[i]
		}
	}
	return nil
}

// NextID generates the next Cnnn identifier.
func (s *CourseStore) NextID() string {
	ids := make([]string, len(s.courses))
	for i, c := range s.courses {
		ids[i] = c.ID
	}
	return nextID(courseIDPrefix, courseIDWidth, ids)
}

// New constructs a course with a fresh id without inserting it.
func (s *CourseStore) New(name string, credits int) models.Course {
	return models.Course{ID: s.NextID(), Name: name, Credits: credits}
}

// Insert appends the record to the collection.
func (s *CourseStore) Insert(c models.Course) {
	s.courses = append(s.courses, c)
}

// Update mutates the record in place. Nil fields stay untouched; negative
// credits are rejected here as a last line of defence.
func (s *CourseStore) Update(c *models.Course, upd models.CourseUpdate) {
	if upd.Name != nil && *upd.Name != "" {
		c.Name = *upd.Name
	}
	if upd.Credits != nil && *upd.Credits >= 0 {
		c.Credits = *upd.Credits
	}
}

// Delete removes the course by id and reports whether it was present.
func (s *CourseStore) Delete(id string) bool {
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return true
		}
	}
	return false
}
