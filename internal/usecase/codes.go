package usecase

import (
	"crypto/rand"
	"fmt"
	"time"
)

// generateEntityCode builds a human-readable unique code like
// APT-20260115-3F9A2C. Collisions are caught by the unique index.
func generateEntityCode(prefix string, date time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("%s-%s-%06X", prefix, date.Format("20060102"), randomBytes)
}
