package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/internal/models"
	appErrors "github.com/noah-isme/matricula-cli/pkg/errors"
)

type courseStore interface {
	FindByID(id string) *models.Course
	New(name string, credits int) models.Course
	Insert(c models.Course)
	Update(c *models.Course, upd models.CourseUpdate)
	Delete(id string) bool
}

type courseReferenceGuard interface {
	HasCourse(courseID string) bool
}

// RegisterCourseRequest describes course creation input.
type RegisterCourseRequest struct {
	Name    string `validate:"required"`
	Credits int    `validate:"min=0"`
}

// UpdateCourseRequest describes a partial course update. Nil fields are
// left unchanged; a non-nil 0 is a legitimate new credit value.
type UpdateCourseRequest struct {
	ID      string `validate:"required"`
	Name    *string
	Credits *int
}

// CourseService orchestrates course mutations against the store.
type CourseService struct {
	courses   courseStore
	ledger    courseReferenceGuard
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs CourseService.
func NewCourseService(courses courseStore, ledger courseReferenceGuard, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, ledger: ledger, validator: validate, logger: logger}
}

// Register validates and creates a new course. Credits must be zero or
// positive.
func (s *CourseService) Register(req RegisterCourseRequest) Outcome {
	if err := s.validator.Struct(req); err != nil {
		return Failure(appErrors.Clone(appErrors.ErrValidation, "course name is required and credits must not be negative"))
	}

	course := s.courses.New(req.Name, req.Credits)
	s.courses.Insert(course)
	s.logger.Info("course registered", zap.String("id", course.ID), zap.Int("credits", course.Credits))
	return Success(fmt.Sprintf("course %q registered with id %s", course.Name, course.ID))
}

// Update applies a partial update to an existing course.
func (s *CourseService) Update(req UpdateCourseRequest) Outcome {
	if isEmpty(req.Name) && req.Credits == nil {
		return Info("no fields supplied, nothing to update")
	}
	if err := s.validator.Struct(req); err != nil {
		return Failure(appErrors.Clone(appErrors.ErrValidation, "course id must not be empty"))
	}
	if req.Credits != nil && *req.Credits < 0 {
		return Failure(appErrors.Clone(appErrors.ErrValidation, "credits must not be negative"))
	}

	course := s.courses.FindByID(req.ID)
	if course == nil {
		return Failure(appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("course %s not found", req.ID)))
	}

	s.courses.Update(course, models.CourseUpdate{Name: req.Name, Credits: req.Credits})
	s.logger.Info("course updated", zap.String("id", course.ID))
	return Success(fmt.Sprintf("course %s updated", course.ID))
}

// Delete removes a course unless an enrollment still references it.
func (s *CourseService) Delete(id string) Outcome {
	if s.ledger.HasCourse(id) {
		return Failure(appErrors.Clone(appErrors.ErrIntegrity, fmt.Sprintf("course %s appears in recorded enrollments", id)))
	}
	if !s.courses.Delete(id) {
		return Failure(appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("course %s not found", id)))
	}
	s.logger.Info("course deleted", zap.String("id", id))
	return Success(fmt.Sprintf("course %s deleted", id))
}
