package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoleMatches(t *testing.T) {
	assert.True(t, RoleMatches("admin", RoleAdmin))
	assert.True(t, RoleMatches("Admin", RoleAdmin))
	assert.True(t, RoleMatches("DOCTOR", RoleAdmin, RoleDoctor))
	assert.False(t, RoleMatches("patient", RoleAdmin, RoleDoctor))
	assert.False(t, RoleMatches("", RoleAdmin))
}

func TestIsStaffRole(t *testing.T) {
	assert.True(t, IsStaffRole(RoleNurse))
	assert.True(t, IsStaffRole("Receptionist"))
	assert.True(t, IsStaffRole(RolePharmacist))
	assert.False(t, IsStaffRole(RoleDoctor))
	assert.False(t, IsStaffRole(RolePatient))
	assert.False(t, IsStaffRole(RoleAdmin))
}

func TestUserAge(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	u := &User{DateOfBirth: &dob}
	assert.Equal(t, 36, u.Age(now))

	dayBefore := time.Date(1990, 6, 16, 0, 0, 0, 0, time.UTC)
	u = &User{DateOfBirth: &dayBefore}
	assert.Equal(t, 35, u.Age(now))

	u = &User{}
	assert.Equal(t, -1, u.Age(now))
}
