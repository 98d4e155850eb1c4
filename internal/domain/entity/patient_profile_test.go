package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientBMI(t *testing.T) {
	height := 1.80
	weight := 81.0
	p := &PatientProfile{HeightMeters: &height, WeightKg: &weight}
	assert.Equal(t, 25.0, p.BMI())

	p = &PatientProfile{}
	assert.Equal(t, 0.0, p.BMI())

	zero := 0.0
	p = &PatientProfile{HeightMeters: &zero, WeightKg: &weight}
	assert.Equal(t, 0.0, p.BMI())
}

func TestPatientBMICategory(t *testing.T) {
	tests := []struct {
		weight   float64
		category string
	}{
		{50.0, "underweight"},
		{70.0, "normal"},
		{85.0, "overweight"},
		{100.0, "obese"},
	}

	height := 1.75
	for _, tt := range tests {
		w := tt.weight
		p := &PatientProfile{HeightMeters: &height, WeightKg: &w}
		assert.Equal(t, tt.category, p.BMICategory(), "weight %.1f", tt.weight)
	}

	assert.Equal(t, "", (&PatientProfile{}).BMICategory())
}

func TestIsValidBloodType(t *testing.T) {
	assert.True(t, IsValidBloodType("A+"))
	assert.True(t, IsValidBloodType("O-"))
	assert.True(t, IsValidBloodType("UNK"))
	assert.False(t, IsValidBloodType("a+"))
	assert.False(t, IsValidBloodType("X"))
	assert.False(t, IsValidBloodType(""))
}
