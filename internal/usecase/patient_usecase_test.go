package usecase

import (
	"context"
	"testing"

	"hospital-management-api/pkg/query"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestPatientListRejectsNonStaffRoles(t *testing.T) {
	// The role gate fires before any repository access, so no
	// database is needed here.
	u := NewPatientUsecase(nil, logrus.New(), nil, nil)

	for _, role := range []string{"patient", "PATIENT", "pharmacist", ""} {
		_, _, err := u.List(context.Background(), role, false, query.Params{})
		assert.ErrorIs(t, err, ErrForbidden, role)
	}
}
