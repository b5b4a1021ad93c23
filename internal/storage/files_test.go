package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/internal/models"
	"github.com/noah-isme/matricula-cli/pkg/config"
)

func testFiles(t *testing.T) *Files {
	t.Helper()
	cfg := config.DataConfig{
		Dir:             t.TempDir(),
		MajorsFile:      "carreras.csv",
		StudentsFile:    "estudiantes.csv",
		CoursesFile:     "cursos.csv",
		EnrollmentsFile: "matriculas.json",
	}
	f, err := NewFiles(cfg, zap.NewNop())
	require.NoError(t, err)
	return f
}

func TestMissingFilesYieldEmptyCollections(t *testing.T) {
	f := testFiles(t)

	assert.Empty(t, f.LoadMajors())
	assert.Empty(t, f.LoadStudents())
	assert.Empty(t, f.LoadCourses())
	assert.Empty(t, f.LoadEnrollments())
}

func TestMajorsRoundTrip(t *testing.T) {
	f := testFiles(t)
	majors := []models.Major{
		{ID: "CAR001", Name: "Software Engineering"},
		{ID: "CAR002", Name: "Ingeniería, Industrial"},
	}

	require.NoError(t, f.SaveMajors(majors))
	assert.Equal(t, majors, f.LoadMajors())
}

func TestStudentsRoundTrip(t *testing.T) {
	f := testFiles(t)
	students := []models.Student{
		{ID: "E001", Name: "Ana Rojas", MajorID: "CAR001"},
		{ID: "E002", Name: "Luis Vega", MajorID: "CAR002"},
	}

	require.NoError(t, f.SaveStudents(students))
	assert.Equal(t, students, f.LoadStudents())
}

func TestCoursesRoundTripKeepsIntegerCredits(t *testing.T) {
	f := testFiles(t)
	courses := []models.Course{
		{ID: "C001", Name: "Algebra", Credits: 3},
		{ID: "C002", Name: "Seminar", Credits: 0},
	}

	require.NoError(t, f.SaveCourses(courses))
	assert.Equal(t, courses, f.LoadCourses())
}

func TestCoursesInvalidCreditsDefaultToZero(t *testing.T) {
	f := testFiles(t)
	raw := "id_curso,nombre_curso,creditos\nC001,Algebra,three\nC002,Physics,4\n"
	require.NoError(t, os.WriteFile(filepath.Join(f.cfg.Dir, f.cfg.CoursesFile), []byte(raw), 0o644))

	courses := f.LoadCourses()
	require.Len(t, courses, 2)
	assert.Equal(t, 0, courses[0].Credits)
	assert.Equal(t, 4, courses[1].Credits)
}

func TestCorruptCSVDegradesToEmpty(t *testing.T) {
	f := testFiles(t)
	raw := "id_carrera,nombre_carrera\n\"unterminated\n"
	require.NoError(t, os.WriteFile(filepath.Join(f.cfg.Dir, f.cfg.MajorsFile), []byte(raw), 0o644))

	assert.Empty(t, f.LoadMajors())
}

func TestEnrollmentsRoundTrip(t *testing.T) {
	f := testFiles(t)
	enrollments := []models.Enrollment{
		{ID: "M0001", StudentID: "E001", CourseIDs: []string{"C001", "C002"}, Term: "2024-02"},
		{ID: "M0002", StudentID: "E002", CourseIDs: []string{"C003"}, Term: "2025-01"},
	}

	require.NoError(t, f.SaveEnrollments(enrollments))
	assert.Equal(t, enrollments, f.LoadEnrollments())
}

func TestCorruptEnrollmentsDegradeToEmpty(t *testing.T) {
	f := testFiles(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.cfg.Dir, f.cfg.EnrollmentsFile), []byte("{not json"), 0o644))

	assert.Empty(t, f.LoadEnrollments())
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	f := testFiles(t)
	require.NoError(t, f.SaveMajors([]models.Major{{ID: "CAR001", Name: "X"}}))

	entries, err := os.ReadDir(f.cfg.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, f.cfg.MajorsFile, entries[0].Name())
}

func TestLockExcludesSecondRun(t *testing.T) {
	dir := t.TempDir()

	lock, err := AcquireLock(dir)
	require.NoError(t, err)

	_, err = AcquireLock(dir)
	assert.Error(t, err)

	require.NoError(t, lock.Release())
	lock, err = AcquireLock(dir)
	require.NoError(t, err)
	require.NoError(t, lock.Release())
}
