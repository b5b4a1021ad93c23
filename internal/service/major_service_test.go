package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/matricula-cli/pkg/errors"
)

func TestRegisterMajorSuccess(t *testing.T) {
	f := newFixtures()
	svc := f.majorService()

	o := svc.Register(RegisterMajorRequest{Name: "Mathematics"})

	require.Equal(t, KindSuccess, o.Kind)
	assert.Contains(t, o.Message, "CAR003")
	assert.Equal(t, 3, f.majors.Len())
}

func TestRegisterMajorEmptyName(t *testing.T) {
	f := newFixtures()
	svc := f.majorService()

	o := svc.Register(RegisterMajorRequest{})

	assert.Equal(t, KindError, o.Kind)
	assert.Equal(t, appErrors.ErrValidation.Code, o.Code)
	assert.Equal(t, 2, f.majors.Len())
}

func TestRegisterMajorDuplicateName(t *testing.T) {
	f := newFixtures()
	svc := f.majorService()

	o := svc.Register(RegisterMajorRequest{Name: " software engineering "})

	assert.Equal(t, KindError, o.Kind)
	assert.Equal(t, appErrors.ErrDuplicate.Code, o.Code)
	assert.Equal(t, 2, f.majors.Len())
}

func TestUpdateMajorSuccess(t *testing.T) {
	f := newFixtures()
	svc := f.majorService()

	o := svc.Update(UpdateMajorRequest{ID: "CAR001", Name: strPtr("Software Eng.")})

	assert.Equal(t, KindSuccess, o.Kind)
	assert.Equal(t, "Software Eng.", f.majors.FindByID("CAR001").Name)
}

func TestUpdateMajorNothingSupplied(t *testing.T) {
	f := newFixtures()
	svc := f.majorService()

	o := svc.Update(UpdateMajorRequest{ID: "CAR001"})

	assert.Equal(t, KindInfo, o.Kind)
}

func TestUpdateMajorNotFound(t *testing.T) {
	f := newFixtures()
	svc := f.majorService()

	o := svc.Update(UpdateMajorRequest{ID: "CAR999", Name: strPtr("X")})

	assert.Equal(t, KindError, o.Kind)
	assert.Equal(t, appErrors.ErrNotFound.Code, o.Code)
}

func TestDeleteMajorWithStudentsBlocked(t *testing.T) {
	f := newFixtures()
	svc := f.majorService()

	o := svc.Delete("CAR001")

	assert.Equal(t, KindError, o.Kind)
	assert.Equal(t, appErrors.ErrIntegrity.Code, o.Code)
	assert.Equal(t, 2, f.majors.Len())
}

func TestDeleteMajorSuccess(t *testing.T) {
	f := newFixtures()
	svc := f.majorService()

	o := svc.Delete("CAR002")

	assert.Equal(t, KindSuccess, o.Kind)
	assert.Equal(t, 1, f.majors.Len())
}

func TestDeleteMajorNotFound(t *testing.T) {
	f := newFixtures()
	svc := f.majorService()

	o := svc.Delete("CAR999")

	assert.Equal(t, KindError, o.Kind)
	assert.Equal(t, appErrors.ErrNotFound.Code, o.Code)
}
