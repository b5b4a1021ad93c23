package store

import "github.com/noah-isme/matricula-cli/internal/models"

const (
	enrollmentIDPrefix = "M"
	enrollmentIDWidth  = 4
)

// CourseResolver resolves course ids for relational queries.
type CourseResolver interface {
	FindByID(id string) *models.Course
}

// StudentResolver resolves student ids for relational queries.
type StudentResolver interface {
	FindByID(id string) *models.Student
}

// Ledger holds the append-only, insertion-ordered enrollment collection.
//
// "Most recent" is defined purely by append order: the ledger assumes
// enrollments are appended chronologically and never reordered or backdated.
// Term strings are opaque and never compared. Known fragility: if a future
// change allows editing or reordering enrollments, the latest-term queries
// below will silently pick the wrong record.
type Ledger struct {
	enrollments []models.Enrollment
}

// NewLedger wraps an already-loaded collection.
func NewLedger(enrollments []models.Enrollment) *Ledger {
	return &Ledger{enrollments: enrollments}
}

// All exposes the backing collection in insertion order.
func (l *Ledger) All() []models.Enrollment {
	return l.enrollments
}

// Len reports the collection size.
func (l *Ledger) Len() int {
	return len(l.enrollments)
}

// NextID generates the next Mnnnn identifier.
func (l *Ledger) NextID() string {
	ids := make([]string, len(l.enrollments))
	for i, e := range l.enrollments {
		ids[i] = e.ID
	}
	return nextID(enrollmentIDPrefix, enrollmentIDWidth, ids)
}

// New constructs an enrollment with a fresh id and a copy of the course-id
// sequence. Pure construction: validation happens in the service layer and
// insertion is a separate step.
func (l *Ledger) New(studentID string, courseIDs []string, term string) models.Enrollment {
	ids := make([]string, len(courseIDs))
	copy(ids, courseIDs)
	return models.Enrollment{
		ID:        l.NextID(),
		StudentID: studentID,
		CourseIDs: ids,
		Term:      term,
	}
}

// Insert appends the enrollment. Enrollments are immutable afterwards.
func (l *Ledger) Insert(e models.Enrollment) {
	l.enrollments = append(l.enrollments, e)
}

// HasStudent reports whether any enrollment references the student. Backs
// the delete-time integrity guard on students.
func (l *Ledger) HasStudent(studentID string) bool {
	for i := range l.enrollments {
		if l.enrollments[i].StudentID == studentID {
			return true
		}
	}
	return false
}

// HasCourse reports whether any enrollment references the course. Backs the
// delete-time integrity guard on courses.
func (l *Ledger) HasCourse(courseID string) bool {
	for i := range l.enrollments {
		for _, id := range l.enrollments[i].CourseIDs {
			if id == courseID {
				return true
			}
		}
	}
	return false
}

// CoursesForStudent returns every distinct course the student is enrolled
// in across all terms. Course ids that no longer resolve are dropped
// silently: a course deleted after the enrollment was recorded is a
// tolerated inconsistency, not an error. Result order is unspecified.
func (l *Ledger) CoursesForStudent(studentID string, courses CourseResolver) []models.Course {
	seen := make(map[string]struct{})
	for i := range l.enrollments {
		if l.enrollments[i].StudentID != studentID {
			continue
		}
		for _, id := range l.enrollments[i].CourseIDs {
			seen[id] = struct{}{}
		}
	}

	found := make([]models.Course, 0, len(seen))
	for id := range seen {
		if c := courses.FindByID(id); c != nil {
			found = append(found, *c)
		}
	}
	return found
}

// StudentsForCourse returns every distinct student enrolled in the course.
// Unresolvable student ids are dropped. Result order is unspecified.
func (l *Ledger) StudentsForCourse(courseID string, students StudentResolver) []models.Student {
	seen := make(map[string]struct{})
	for i := range l.enrollments {
		for _, id := range l.enrollments[i].CourseIDs {
			if id == courseID {
				seen[l.enrollments[i].StudentID] = struct{}{}
				break
			}
		}
	}

	found := make([]models.Student, 0, len(seen))
	for id := range seen {
		if s := students.FindByID(id); s != nil {
			found = append(found, *s)
		}
	}
	return found
}

// CreditsLatestTerm sums the credits of the student's most recently
// appended enrollment. Courses that no longer resolve contribute 0. Returns
// 0 when the student has no enrollments.
func (l *Ledger) CreditsLatestTerm(studentID string, courses CourseResolver) int {
	var latest *models.Enrollment
	for i := len(l.enrollments) - 1; i >= 0; i-- {
		if l.enrollments[i].StudentID == studentID {
			latest = &l.enrollments[i]
			break
		}
	}
	if latest == nil {
		return 0
	}

	total := 0
	for _, id := range latest.CourseIDs {
		if c := courses.FindByID(id); c != nil {
			total += c.Credits
		}
	}
	return total
}
