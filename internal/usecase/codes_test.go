package usecase

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEntityCode(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	code := generateEntityCode("APT", date)
	assert.Regexp(t, regexp.MustCompile(`^APT-20260115-[0-9A-F]{6}$`), code)

	// Two draws should practically never collide
	assert.NotEqual(t, code, generateEntityCode("APT", date))
}
