package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/internal/models"
	appErrors "github.com/noah-isme/matricula-cli/pkg/errors"
)

type enrollmentLedger interface {
	New(studentID string, courseIDs []string, term string) models.Enrollment
	Insert(e models.Enrollment)
}

type studentReader interface {
	FindByID(id string) *models.Student
}

type courseReader interface {
	FindByID(id string) *models.Course
}

// EnrollRequest describes enrollment creation input.
type EnrollRequest struct {
	StudentID string   `validate:"required"`
	CourseIDs []string `validate:"required,min=1,dive,required"`
	Term      string   `validate:"required"`
}

// EnrollmentService orchestrates enrollment creation. Enrollments are
// append-only; there is no update or delete path.
type EnrollmentService struct {
	ledger    enrollmentLedger
	students  studentReader
	courses   courseReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(ledger enrollmentLedger, students studentReader, courses courseReader, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{ledger: ledger, students: students, courses: courses, validator: validate, logger: logger}
}

// Enroll records a student into a set of courses for a term. Course ids
// that do not resolve are dropped rather than failing the whole request,
// but the success message enumerates them; an enrollment is never created
// with zero valid courses.
func (s *EnrollmentService) Enroll(req EnrollRequest) Outcome {
	if err := s.validator.Struct(req); err != nil {
		return Failure(appErrors.Clone(appErrors.ErrValidation, "student id, course ids and academic term are all required"))
	}

	student := s.students.FindByID(req.StudentID)
	if student == nil {
		return Failure(appErrors.Clone(appErrors.ErrReference, fmt.Sprintf("student id %q does not exist", req.StudentID)))
	}

	var valid, invalid []string
	for _, id := range req.CourseIDs {
		if s.courses.FindByID(id) != nil {
			valid = append(valid, id)
		} else {
			invalid = append(invalid, id)
		}
	}
	if len(valid) == 0 {
		return Failure(appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("no valid course ids supplied (unknown: %s)", strings.Join(invalid, ", "))))
	}

	enrollment := s.ledger.New(req.StudentID, valid, req.Term)
	s.ledger.Insert(enrollment)
	s.logger.Info("enrollment recorded",
		zap.String("id", enrollment.ID),
		zap.String("student_id", enrollment.StudentID),
		zap.Int("courses", len(valid)),
		zap.String("term", enrollment.Term))

	msg := fmt.Sprintf("student %s enrolled in %d course(s) for term %s with id %s",
		student.Name, len(valid), enrollment.Term, enrollment.ID)
	if len(invalid) > 0 {
		msg += fmt.Sprintf(" (ignored unknown course ids: %s)", strings.Join(invalid, ", "))
	}
	return Success(msg)
}
