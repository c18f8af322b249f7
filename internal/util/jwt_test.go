package util

import (
	"testing"
	"time"

	"bible_challenge_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	user := &model.User{
		LoginID:  "chulsoo",
		Nickname: "철수",
		GroupID:  "g1",
	}
	user.ID = "u1"
	return user
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser(), "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "chulsoo", claims.LoginID)
	assert.Equal(t, "철수", claims.Nickname)
	assert.Equal(t, "g1", claims.GroupID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "another-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT(testUser(), "test-secret", -time.Minute)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
