package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_RoundTrip(t *testing.T) {
	s := NewSigner([]byte("secret-1"), 72*time.Hour)

	tok, err := s.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	uid, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-42", uid)
}

func TestSigner_RejectsForeignSecret(t *testing.T) {
	issuer := NewSigner([]byte("secret-1"), 72*time.Hour)
	verifier := NewSigner([]byte("secret-2"), 72*time.Hour)

	tok, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSigner_RejectsExpired(t *testing.T) {
	s := NewSigner([]byte("secret-1"), -time.Minute)

	tok, err := s.Issue("user-42")
	require.NoError(t, err)

	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSigner_RejectsGarbage(t *testing.T) {
	s := NewSigner([]byte("secret-1"), 72*time.Hour)

	_, err := s.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	_, err := ExtractBearerToken(r)
	assert.Error(t, err)

	r.Header.Set("Authorization", "Basic abc")
	_, err = ExtractBearerToken(r)
	assert.Error(t, err)

	r.Header.Set("Authorization", "Bearer abc.def.ghi")
	tok, err := ExtractBearerToken(r)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)
}

func TestHashPassword_VerifyAndMismatch(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "secret2"))
}
