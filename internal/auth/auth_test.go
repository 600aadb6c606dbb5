package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "s3cre"))
	assert.False(t, VerifyPassword(hash, "S3cret"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashPassword_DefaultCost(t *testing.T) {
	// 0 selects the library default instead of failing.
	hash, err := HashPassword("pw", 0)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "pw"))
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	tok, err := issuer.Issue(Identity{UserID: "user-1", Role: "manager"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := issuer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "manager", id.Role)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", 60)
	other := NewTokenIssuer("secret-b", 60)

	tok, err := issuer.Issue(Identity{UserID: "user-1", Role: "common"})
	require.NoError(t, err)

	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -1)

	tok, err := issuer.Issue(Identity{UserID: "user-1", Role: "common"})
	require.NoError(t, err)

	_, err = issuer.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	_, err := issuer.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateSecret(t *testing.T) {
	a, err := GenerateSecret()
	require.NoError(t, err)
	b, err := GenerateSecret()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
