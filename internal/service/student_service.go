package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/internal/models"
	appErrors "github.com/noah-isme/matricula-cli/pkg/errors"
)

type studentStore interface {
	FindByID(id string) *models.Student
	FindByName(name string) *models.Student
	New(name, majorID string) models.Student
	Insert(st models.Student)
	Update(st *models.Student, upd models.StudentUpdate)
	Delete(id string) bool
}

type majorReader interface {
	FindByID(id string) *models.Major
}

type studentReferenceGuard interface {
	HasStudent(studentID string) bool
}

// RegisterStudentRequest describes student creation input.
type RegisterStudentRequest struct {
	Name    string `validate:"required"`
	MajorID string `validate:"required"`
}

// UpdateStudentRequest describes a partial student update. Nil fields are
// left unchanged.
type UpdateStudentRequest struct {
	ID      string `validate:"required"`
	Name    *string
	MajorID *string
}

// StudentService orchestrates student mutations against the store.
type StudentService struct {
	students  studentStore
	majors    majorReader
	ledger    studentReferenceGuard
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(students studentStore, majors majorReader, ledger studentReferenceGuard, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, majors: majors, ledger: ledger, validator: validate, logger: logger}
}

// Register validates and creates a new student. The major must resolve and
// the name must be unique case-insensitively after trimming.
func (s *StudentService) Register(req RegisterStudentRequest) Outcome {
	if err := s.validator.Struct(req); err != nil {
		return Failure(appErrors.Clone(appErrors.ErrValidation, "student name and major id are required"))
	}
	if s.majors.FindByID(req.MajorID) == nil {
		return Failure(appErrors.Clone(appErrors.ErrReference, fmt.Sprintf("major id %q does not exist", req.MajorID)))
	}
	if existing := s.students.FindByName(req.Name); existing != nil {
		return Failure(appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("a student named %q already exists (%s)", req.Name, existing.ID)))
	}

	student := s.students.New(req.Name, req.MajorID)
	s.students.Insert(student)
	s.logger.Info("student registered", zap.String("id", student.ID), zap.String("major_id", student.MajorID))
	return Success(fmt.Sprintf("student %q registered with id %s", student.Name, student.ID))
}

// Update applies a partial update to an existing student. A supplied major
// id that does not resolve fails the whole call: no field mutates.
func (s *StudentService) Update(req UpdateStudentRequest) Outcome {
	if isEmpty(req.Name) && isEmpty(req.MajorID) {
		return Info("no fields supplied, nothing to update")
	}
	if err := s.validator.Struct(req); err != nil {
		return Failure(appErrors.Clone(appErrors.ErrValidation, "student id must not be empty"))
	}

	student := s.students.FindByID(req.ID)
	if student == nil {
		return Failure(appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("student %s not found", req.ID)))
	}
	if !isEmpty(req.MajorID) && s.majors.FindByID(*req.MajorID) == nil {
		return Failure(appErrors.Clone(appErrors.ErrReference, fmt.Sprintf("major id %q does not exist", *req.MajorID)))
	}

	s.students.Update(student, models.StudentUpdate{Name: req.Name, MajorID: req.MajorID})
	s.logger.Info("student updated", zap.String("id", student.ID))
	return Success(fmt.Sprintf("student %s updated", student.ID))
}

// Delete removes a student unless an enrollment still references them.
func (s *StudentService) Delete(id string) Outcome {
	if s.ledger.HasStudent(id) {
		return Failure(appErrors.Clone(appErrors.ErrIntegrity, fmt.Sprintf("student %s has enrollments on record", id)))
	}
	if !s.students.Delete(id) {
		return Failure(appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("student %s not found", id)))
	}
	s.logger.Info("student deleted", zap.String("id", id))
	return Success(fmt.Sprintf("student %s deleted", id))
}

func isEmpty(s *string) bool {
	return s == nil || *s == ""
}
