package token

import (
	"testing"

	"github.com/gymdesk/gymdesk-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "ivan@example.com",
		Role:  models.RoleAdmin,
	}
}

func TestGeneratePair_RoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	pair, err := m.GeneratePair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := m.ParseAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ivan@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)

	refreshClaims, err := m.ParseRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), refreshClaims.UserID)
	assert.NotEmpty(t, refreshClaims.ID, "refresh token carries a jti")
}

func TestParse_RejectsWrongType(t *testing.T) {
	m := NewManager("test-secret")
	pair, err := m.GeneratePair(testUser())
	require.NoError(t, err)

	_, err = m.ParseAccess(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken, "refresh token is not an access token")

	_, err = m.ParseRefresh(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken, "access token is not a refresh token")
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	pair, err := NewManager("secret-a").GeneratePair(testUser())
	require.NoError(t, err)

	_, err = NewManager("secret-b").ParseAccess(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")

	_, err := m.ParseAccess("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
