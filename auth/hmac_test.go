package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACVerifierRoundTrip(t *testing.T) {
	v := NewHMACVerifier("test-secret")

	tok, err := SignToken("uid-1", "buyer@campus.edu", "test-secret", time.Hour)
	require.NoError(t, err)

	id, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id.UID)
	assert.Equal(t, "buyer@campus.edu", id.Email)
}

func TestHMACVerifierRejectsWrongSecret(t *testing.T) {
	tok, err := SignToken("uid-1", "buyer@campus.edu", "other-secret", time.Hour)
	require.NoError(t, err)

	_, err = NewHMACVerifier("test-secret").Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHMACVerifierRejectsExpired(t *testing.T) {
	tok, err := SignToken("uid-1", "buyer@campus.edu", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = NewHMACVerifier("test-secret").Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHMACVerifierRejectsGarbage(t *testing.T) {
	_, err := NewHMACVerifier("test-secret").Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
