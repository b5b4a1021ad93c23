package store

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-cli/internal/models"
)

func ledgerFixtures() (*Ledger, *StudentStore, *CourseStore) {
	ledger := NewLedger([]models.Enrollment{
		{ID: "M0001", StudentID: "E001", CourseIDs: []string{"C001", "C002"}, Term: "2024-02"},
		{ID: "M0002", StudentID: "E002", CourseIDs: []string{"C002", "C003"}, Term: "2025-01"},
	})
	students := NewStudentStore([]models.Student{
		{ID: "E001", Name: "Ana Rojas", MajorID: "CAR001"},
		{ID: "E002", Name: "Luis Vega", MajorID: "CAR001"},
	})
	courses := NewCourseStore([]models.Course{
		{ID: "C001", Name: "Algebra", Credits: 3},
		{ID: "C002", Name: "Physics", Credits: 4},
		{ID: "C003", Name: "Chemistry", Credits: 2},
	})
	return ledger, students, courses
}

func courseIDs(courses []models.Course) []string {
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	sort.Strings(ids)
	return ids
}

func studentIDs(students []models.Student) []string {
	ids := make([]string, len(students))
	for i, s := range students {
		ids[i] = s.ID
	}
	sort.Strings(ids)
	return ids
}

func TestCoursesForStudent(t *testing.T) {
	ledger, _, courses := ledgerFixtures()

	got := ledger.CoursesForStudent("E001", courses)
	assert.Equal(t, []string{"C001", "C002"}, courseIDs(got))

	assert.Empty(t, ledger.CoursesForStudent("E999", courses))
}

func TestCoursesForStudentDropsDeletedCourses(t *testing.T) {
	ledger, _, courses := ledgerFixtures()
	require.True(t, courses.Delete("C001"))

	got := ledger.CoursesForStudent("E001", courses)
	assert.Equal(t, []string{"C002"}, courseIDs(got))
}

func TestCoursesForStudentDeduplicatesAcrossTerms(t *testing.T) {
	ledger, _, courses := ledgerFixtures()
	ledger.Insert(ledger.New("E001", []string{"C002", "C003"}, "2025-02"))

	got := ledger.CoursesForStudent("E001", courses)
	assert.Equal(t, []string{"C001", "C002", "C003"}, courseIDs(got))
}

func TestStudentsForCourse(t *testing.T) {
	ledger, students, _ := ledgerFixtures()

	got := ledger.StudentsForCourse("C002", students)
	assert.Equal(t, []string{"E001", "E002"}, studentIDs(got))

	assert.Equal(t, []string{"E001"}, studentIDs(ledger.StudentsForCourse("C001", students)))
	assert.Empty(t, ledger.StudentsForCourse("C999", students))
}

func TestCreditsLatestTerm(t *testing.T) {
	ledger, _, courses := ledgerFixtures()

	assert.Equal(t, 7, ledger.CreditsLatestTerm("E001", courses))
	assert.Equal(t, 6, ledger.CreditsLatestTerm("E002", courses))
	assert.Equal(t, 0, ledger.CreditsLatestTerm("E999", courses))
}

func TestCreditsLatestTermUsesAppendOrderNotTermLabel(t *testing.T) {
	ledger, _, courses := ledgerFixtures()
	// appended later but labelled with an older term: append order wins
	ledger.Insert(ledger.New("E001", []string{"C003"}, "2020-01"))

	assert.Equal(t, 2, ledger.CreditsLatestTerm("E001", courses))
}

func TestCreditsLatestTermSkipsDeletedCourses(t *testing.T) {
	ledger, _, courses := ledgerFixtures()
	require.True(t, courses.Delete("C002"))

	assert.Equal(t, 3, ledger.CreditsLatestTerm("E001", courses))
}

func TestLedgerNewCopiesCourseIDs(t *testing.T) {
	ledger := NewLedger(nil)
	input := []string{"C001", "C002"}

	e := ledger.New("E001", input, "2025-01")
	input[0] = "mutated"

	assert.Equal(t, "M0001", e.ID)
	assert.Equal(t, []string{"C001", "C002"}, e.CourseIDs)
}

func TestLedgerReferenceProbes(t *testing.T) {
	ledger, _, _ := ledgerFixtures()

	assert.True(t, ledger.HasStudent("E001"))
	assert.False(t, ledger.HasStudent("E999"))
	assert.True(t, ledger.HasCourse("C003"))
	assert.False(t, ledger.HasCourse("C999"))
}
