package service

import (
	"github.com/noah-isme/matricula-cli/internal/models"
	"github.com/noah-isme/matricula-cli/internal/store"
)

type fixtures struct {
	majors   *store.MajorStore
	students *store.StudentStore
	courses  *store.CourseStore
	ledger   *store.Ledger
}

func newFixtures() *fixtures {
	return &fixtures{
		majors: store.NewMajorStore([]models.Major{
			{ID: "CAR001", Name: "Software Engineering"},
			{ID: "CAR002", Name: "Industrial Engineering"},
		}),
		students: store.NewStudentStore([]models.Student{
			{ID: "E001", Name: "Ana Rojas", MajorID: "CAR001"},
			{ID: "E002", Name: "Luis Vega", MajorID: "CAR001"},
		}),
		courses: store.NewCourseStore([]models.Course{
			{ID: "C001", Name: "Algebra", Credits: 3},
			{ID: "C002", Name: "Physics", Credits: 4},
			{ID: "C003", Name: "Chemistry", Credits: 2},
		}),
		ledger: store.NewLedger([]models.Enrollment{
			{ID: "M0001", StudentID: "E001", CourseIDs: []string{"C001", "C002"}, Term: "2024-02"},
			{ID: "M0002", StudentID: "E002", CourseIDs: []string{"C002", "C003"}, Term: "2025-01"},
		}),
	}
}

func (f *fixtures) majorService() *MajorService {
	return NewMajorService(f.majors, f.students, nil, nil)
}

func (f *fixtures) studentService() *StudentService {
	return NewStudentService(f.students, f.majors, f.ledger, nil, nil)
}

func (f *fixtures) courseService() *CourseService {
	return NewCourseService(f.courses, f.ledger, nil, nil)
}

func (f *fixtures) enrollmentService() *EnrollmentService {
	return NewEnrollmentService(f.ledger, f.students, f.courses, nil, nil)
}

func (f *fixtures) reportService() *ReportService {
	return NewReportService(f.ledger, f.students, f.courses, nil)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
