package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/matricula-cli/pkg/errors"
)

func TestCoursesOfStudent(t *testing.T) {
	f := newFixtures()
	svc := f.reportService()

	r, err := svc.CoursesOfStudent("E001")
	require.Nil(t, err)

	require.Len(t, r.Courses, 2)
	assert.Equal(t, "C001", r.Courses[0].ID)
	assert.Equal(t, "C002", r.Courses[1].ID)

	d := r.Dataset()
	assert.Equal(t, []string{"id_curso", "nombre_curso", "creditos"}, d.Headers)
	assert.Equal(t, []string{"C001", "Algebra", "3"}, d.Rows[0])
}

func TestCoursesOfStudentUnknown(t *testing.T) {
	f := newFixtures()
	svc := f.reportService()

	_, err := svc.CoursesOfStudent("E999")
	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, err.Code)
}

func TestStudentsOfCourse(t *testing.T) {
	f := newFixtures()
	svc := f.reportService()

	r, err := svc.StudentsOfCourse("C002")
	require.Nil(t, err)

	require.Len(t, r.Students, 2)
	assert.Equal(t, "E001", r.Students[0].ID)
	assert.Equal(t, "E002", r.Students[1].ID)
}

func TestStudentsOfCourseUnknown(t *testing.T) {
	f := newFixtures()
	svc := f.reportService()

	_, err := svc.StudentsOfCourse("C999")
	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, err.Code)
}

func TestCreditLoad(t *testing.T) {
	f := newFixtures()
	svc := f.reportService()

	r, err := svc.CreditLoad("E001")
	require.Nil(t, err)
	assert.Equal(t, 7, r.TotalCredits)

	r, err = svc.CreditLoad("E002")
	require.Nil(t, err)
	assert.Equal(t, 6, r.TotalCredits)

	d := r.Dataset()
	assert.Equal(t, [][]string{{"E002", "Luis Vega", "6"}}, d.Rows)
}

func TestCreditLoadStudentWithoutEnrollments(t *testing.T) {
	f := newFixtures()
	svc := f.reportService()
	f.students.Insert(f.students.New("Fresh", "CAR001"))

	r, err := svc.CreditLoad("E003")
	require.Nil(t, err)
	assert.Equal(t, 0, r.TotalCredits)
}
