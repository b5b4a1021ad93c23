package store

import (
	"strings"

	"github.com/noah-isme/matricula-cli/internal/models"
)

const (
	majorIDPrefix = "CAR"
	majorIDWidth  = 3
)

// MajorStore holds the in-memory, insertion-ordered major collection.
type MajorStore struct {
	majors []models.Major
}

// NewMajorStore wraps an already-loaded collection.
func NewMajorStore(majors []models.Major) *MajorStore {
	return &MajorStore{majors: majors}
}

// All exposes the backing collection in insertion order.
func (s *MajorStore) All() []models.Major {
	return s.majors
}

// Len reports the collection size.
func (s *MajorStore) Len() int {
	return len(s.majors)
}

// FindByID returns the first major with the exact id, or nil. Ids are
// matched as stored; callers normalise case and whitespace beforehand.
func (s *MajorStore) FindByID(id string) *models.Major {
	for i := range s.majors {
		if s.majors[i].ID == id {
			return &s.majors[i]
		}
	}
	return nil
}

// FindByName returns the first major whose name matches case-insensitively
// after trimming, or nil. Backs the uniqueness check on registration.
func (s *MajorStore) FindByName(name string) *models.Major {
	want := strings.ToLower(strings.TrimSpace(name))
	for i := range s.majors {
		if strings.ToLower(strings.TrimSpace(s.majors[i].Name)) == want {
			return &s.majors[i]
		}
	}
	return nil
}

// NextID generates the next CARnnn identifier.
func (s *MajorStore) NextID() string {
	ids := make([]string, len(s.majors))
	for i, m := range s.majors {
		ids[i] = m.ID
	}
	return nextID(majorIDPrefix, majorIDWidth, ids)
}

// New constructs a major with a fresh id. It does not insert the record;
// the caller validates first and commits with Insert.
func (s *MajorStore) New(name string) models.Major {
	return models.Major{ID: s.NextID(), Name: name}
}

// Insert appends the record to the collection.
func (s *MajorStore) Insert(m models.Major) {
	s.majors = append(s.majors, m)
}

// Update mutates the record in place. Nil fields stay untouched.
func (s *MajorStore) Update(m *models.Major, upd models.MajorUpdate) {
	if upd.Name != nil && *upd.Name != "" {
		m.Name = *upd.Name
	}
}

// Delete removes the major by id and reports whether it was present.
// Referential integrity is the service layer's job before calling this.
func (s *MajorStore) Delete(id string) bool {
	for i := range s.majors {
		if s.majors[i].ID == id {
			s.majors = append(s.majors[:i], s.majors[i+1:]...)
			return true
		}
	}
	return false
}
