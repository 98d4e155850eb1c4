package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Logout deletes these keys directly, so they must match the format
// issueTokens stores and the auth middleware looks up.
func TestTokenKeyFormat(t *testing.T) {
	userID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	assert.Equal(t, "access_token:6ba7b810-9dad-11d1-80b4-00c04fd430c8:tid-1", accessTokenKey(userID, "tid-1"))
	assert.Equal(t, "refresh_token:6ba7b810-9dad-11d1-80b4-00c04fd430c8:tid-2", refreshTokenKey(userID, "tid-2"))
}
