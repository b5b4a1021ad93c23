// Package app wires configuration, logging, persistence, stores and
// services into one explicit application state, constructed once per run
// and passed by reference. There is no package-level mutable state.
package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/internal/service"
	"github.com/noah-isme/matricula-cli/internal/storage"
	"github.com/noah-isme/matricula-cli/internal/store"
	"github.com/noah-isme/matricula-cli/pkg/config"
	"github.com/noah-isme/matricula-cli/pkg/logger"
)

// App owns the four collections and every service operating on them for
// the lifetime of one run.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Files  *storage.Files

	Majors   *store.MajorStore
	Students *store.StudentStore
	Courses  *store.CourseStore
	Ledger   *store.Ledger

	MajorService      *service.MajorService
	StudentService    *service.StudentService
	CourseService     *service.CourseService
	EnrollmentService *service.EnrollmentService
	ReportService     *service.ReportService

	lock *storage.Lock
}

// New loads configuration and all collections and wires the services.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	files, err := storage.NewFiles(cfg.Data, logr)
	if err != nil {
		return nil, err
	}

	var lock *storage.Lock
	if cfg.Data.EnableFileLock {
		lock, err = storage.AcquireLock(cfg.Data.Dir)
		if err != nil {
			return nil, err
		}
	}

	a := &App{
		Config:   cfg,
		Logger:   logr,
		Files:    files,
		Majors:   store.NewMajorStore(files.LoadMajors()),
		Students: store.NewStudentStore(files.LoadStudents()),
		Courses:  store.NewCourseStore(files.LoadCourses()),
		Ledger:   store.NewLedger(files.LoadEnrollments()),
		lock:     lock,
	}

	validate := validator.New()
	a.MajorService = service.NewMajorService(a.Majors, a.Students, validate, logr)
	a.StudentService = service.NewStudentService(a.Students, a.Majors, a.Ledger, validate, logr)
	a.CourseService = service.NewCourseService(a.Courses, a.Ledger, validate, logr)
	a.EnrollmentService = service.NewEnrollmentService(a.Ledger, a.Students, a.Courses, validate, logr)
	a.ReportService = service.NewReportService(a.Ledger, a.Students, a.Courses, logr)

	return a, nil
}

// Close releases the data directory lock and flushes the logger.
func (a *App) Close() {
	if a.lock != nil {
		if err := a.lock.Release(); err != nil {
			a.Logger.Warn("release lock", zap.Error(err))
		}
	}
	_ = a.Logger.Sync()
}

// SaveMajors persists the major collection.
func (a *App) SaveMajors() error { return a.Files.SaveMajors(a.Majors.All()) }

// SaveStudents persists the student collection.
func (a *App) SaveStudents() error { return a.Files.SaveStudents(a.Students.All()) }

// SaveCourses persists the course collection.
func (a *App) SaveCourses() error { return a.Files.SaveCourses(a.Courses.All()) }

// SaveEnrollments persists the enrollment ledger.
func (a *App) SaveEnrollments() error { return a.Files.SaveEnrollments(a.Ledger.All()) }
