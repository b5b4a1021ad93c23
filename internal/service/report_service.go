package service

import (
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/internal/models"
	"github.com/noah-isme/matricula-cli/internal/store"
	appErrors "github.com/noah-isme/matricula-cli/pkg/errors"
	"github.com/noah-isme/matricula-cli/pkg/export"
)

type ledgerQueries interface {
	CoursesForStudent(studentID string, courses store.CourseResolver) []models.Course
	StudentsForCourse(courseID string, students store.StudentResolver) []models.Student
	CreditsLatestTerm(studentID string, courses store.CourseResolver) int
}

// StudentCoursesReport lists every distinct course a student is enrolled in.
type StudentCoursesReport struct {
	Student models.Student
	Courses []models.Course
}

// Dataset renders the report as an exportable table.
func (r StudentCoursesReport) Dataset() export.Dataset {
	d := export.Dataset{
		Title:   fmt.Sprintf("Courses of %s (%s)", r.Student.Name, r.Student.ID),
		Headers: []string{"id_curso", "nombre_curso", "creditos"},
	}
	for _, c := range r.Courses {
		d.Rows = append(d.Rows, []string{c.ID, c.Name, strconv.Itoa(c.Credits)})
	}
	return d
}

// CourseRosterReport lists every distinct student enrolled in a course.
type CourseRosterReport struct {
	Course   models.Course
	Students []models.Student
}

// Dataset renders the report as an exportable table.
func (r CourseRosterReport) Dataset() export.Dataset {
	d := export.Dataset{
		Title:   fmt.Sprintf("Students in %s (%s)", r.Course.Name, r.Course.ID),
		Headers: []string{"id_estudiante", "nombre", "id_carrera"},
	}
	for _, s := range r.Students {
		d.Rows = append(d.Rows, []string{s.ID, s.Name, s.MajorID})
	}
	return d
}

// CreditLoadReport carries the credit total of a student's most recent
// enrollment.
type CreditLoadReport struct {
	Student      models.Student
	TotalCredits int
}

// Dataset renders the report as an exportable table.
func (r CreditLoadReport) Dataset() export.Dataset {
	return export.Dataset{
		Title:   fmt.Sprintf("Credit load of %s (%s)", r.Student.Name, r.Student.ID),
		Headers: []string{"id_estudiante", "nombre", "total_creditos"},
		Rows:    [][]string{{r.Student.ID, r.Student.Name, strconv.Itoa(r.TotalCredits)}},
	}
}

// ReportService answers the relational queries over the ledger.
type ReportService struct {
	ledger   ledgerQueries
	students studentReader
	courses  courseReader
	logger   *zap.Logger
}

// NewReportService constructs ReportService.
func NewReportService(ledger ledgerQueries, students studentReader, courses courseReader, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{ledger: ledger, students: students, courses: courses, logger: logger}
}

// CoursesOfStudent reports which courses the student is enrolled in. The
// ledger leaves result order unspecified, so rows are sorted by course id
// for stable rendering.
func (s *ReportService) CoursesOfStudent(studentID string) (*StudentCoursesReport, *appErrors.Error) {
	student := s.students.FindByID(studentID)
	if student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("student %s not found", studentID))
	}
	courses := s.ledger.CoursesForStudent(studentID, s.courses)
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return &StudentCoursesReport{Student: *student, Courses: courses}, nil
}

// StudentsOfCourse reports which students are enrolled in the course,
// sorted by student id.
func (s *ReportService) StudentsOfCourse(courseID string) (*CourseRosterReport, *appErrors.Error) {
	course := s.courses.FindByID(courseID)
	if course == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("course %s not found", courseID))
	}
	students := s.ledger.StudentsForCourse(courseID, s.students)
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return &CourseRosterReport{Course: *course, Students: students}, nil
}

// CreditLoad reports the credit total of the student's most recent
// enrollment, 0 when none exists.
func (s *ReportService) CreditLoad(studentID string) (*CreditLoadReport, *appErrors.Error) {
	student := s.students.FindByID(studentID)
	if student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("student %s not found", studentID))
	}
	total := s.ledger.CreditsLatestTerm(studentID, s.courses)
	return &CreditLoadReport{Student: *student, TotalCredits: total}, nil
}
