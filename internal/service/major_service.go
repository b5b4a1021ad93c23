package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/internal/models"
	appErrors "github.com/noah-isme/matricula-cli/pkg/errors"
)

type majorStore interface {
	FindByID(id string) *models.Major
	FindByName(name string) *models.Major
	New(name string) models.Major
	Insert(m models.Major)
	Update(m *models.Major, upd models.MajorUpdate)
	Delete(id string) bool
}

type majorReferenceGuard interface {
	AnyWithMajor(majorID string) bool
}

// RegisterMajorRequest describes major creation input.
type RegisterMajorRequest struct {
	Name string `validate:"required"`
}

// UpdateMajorRequest describes a partial major update. Nil fields are left
// unchanged.
type UpdateMajorRequest struct {
	ID   string `validate:"required"`
	Name *string
}

// MajorService orchestrates major mutations against the store.
type MajorService struct {
	majors    majorStore
	students  majorReferenceGuard
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMajorService constructs MajorService.
func NewMajorService(majors majorStore, students majorReferenceGuard, validate *validator.Validate, logger *zap.Logger) *MajorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MajorService{majors: majors, students: students, validator: validate, logger: logger}
}

// Register validates and creates a new major. Names must be unique
// case-insensitively after trimming.
func (s *MajorService) Register(req RegisterMajorRequest) Outcome {
	if err := s.validator.Struct(req); err != nil {
		return Failure(appErrors.Clone(appErrors.ErrValidation, "major name must not be empty"))
	}
	if existing := s.majors.FindByName(req.Name); existing != nil {
		return Failure(appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("a major named %q already exists (%s)", req.Name, existing.ID)))
	}

	major := s.majors.New(req.Name)
	s.majors.Insert(major)
	s.logger.Info("major registered", zap.String("id", major.ID), zap.String("name", major.Name))
	return Success(fmt.Sprintf("major %q registered with id %s", major.Name, major.ID))
}

// Update applies a partial update to an existing major.
func (s *MajorService) Update(req UpdateMajorRequest) Outcome {
	if req.Name == nil || *req.Name == "" {
		return Info("no fields supplied, nothing to update")
	}
	if err := s.validator.Struct(req); err != nil {
		return Failure(appErrors.Clone(appErrors.ErrValidation, "major id must not be empty"))
	}

	major := s.majors.FindByID(req.ID)
	if major == nil {
		return Failure(appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("major %s not found", req.ID)))
	}

	s.majors.Update(major, models.MajorUpdate{Name: req.Name})
	s.logger.Info("major updated", zap.String("id", major.ID))
	return Success(fmt.Sprintf("major %s updated", major.ID))
}

// Delete removes a major unless a student still references it.
func (s *MajorService) Delete(id string) Outcome {
	if s.students.AnyWithMajor(id) {
		return Failure(appErrors.Clone(appErrors.ErrIntegrity, fmt.Sprintf("major %s still has students assigned", id)))
	}
	if !s.majors.Delete(id) {
		return Failure(appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("major %s not found", id)))
	}
	s.logger.Info("major deleted", zap.String("id", id))
	return Success(fmt.Sprintf("major %s deleted", id))
}
