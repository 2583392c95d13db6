package linking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAuthenticator(t *testing.T) {
	auth, err := NewStaticAuthenticator("  player-token-1  ")
	require.NoError(t, err)

	token, err := auth.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "player-token-1", token)
}

func TestStaticAuthenticatorRejectsEmpty(t *testing.T) {
	_, err := NewStaticAuthenticator("   ")
	assert.ErrorContains(t, err, ErrMsgEmptyToken)
}

func TestAnonymousAuthenticatorIsStable(t *testing.T) {
	auth, err := NewAnonymousAuthenticator()
	require.NoError(t, err)

	first, err := auth.Authenticate(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := auth.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnonymousTokensDiffer(t *testing.T) {
	a, err := NewAnonymousAuthenticator()
	require.NoError(t, err)
	b, err := NewAnonymousAuthenticator()
	require.NoError(t, err)

	ta, _ := a.Authenticate(context.Background())
	tb, _ := b.Authenticate(context.Background())
	assert.NotEqual(t, ta, tb)
}
