package storage

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/internal/models"
)

// LoadEnrollments reads the enrollment ledger. A corrupt file degrades to
// an empty ledger with a warning.
func (f *Files) LoadEnrollments() []models.Enrollment {
	raw, ok := f.readFile(f.cfg.EnrollmentsFile)
	if !ok {
		return nil
	}
	var enrollments []models.Enrollment
	if err := json.Unmarshal(raw, &enrollments); err != nil {
		f.logger.Warn("enrollment file corrupt, using empty ledger",
			zap.String("file", f.cfg.EnrollmentsFile), zap.Error(err))
		return nil
	}
	for i := range enrollments {
		if enrollments[i].CourseIDs == nil {
			enrollments[i].CourseIDs = []string{}
		}
	}
	return enrollments
}

// SaveEnrollments overwrites the enrollment ledger file.
func (f *Files) SaveEnrollments(enrollments []models.Enrollment) error {
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	raw, err := json.MarshalIndent(enrollments, "", "    ")
	if err != nil {
		return err
	}
	return f.writeAtomic(f.cfg.EnrollmentsFile, bytes.NewBuffer(raw))
}
