package github

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveUsernameConfiguredWins(t *testing.T) {
	provider := &fakeProvider{user: "from-api"}

	user, err := ResolveUsername(context.Background(), "from-config", provider, nil)
	require.NoError(t, err)
	require.Equal(t, "from-config", user)
}

func TestResolveUsernameFallsBackToProvider(t *testing.T) {
	provider := &fakeProvider{user: "from-api"}

	user, err := ResolveUsername(context.Background(), "", provider, nil)
	require.NoError(t, err)
	require.Equal(t, "from-api", user)
}

func TestResolveUsernamePromptsLast(t *testing.T) {
	provider := &fakeProvider{userErr: errors.New("bad credentials")}
	prompt := func() (string, error) { return "typed-in", nil }

	user, err := ResolveUsername(context.Background(), "", provider, prompt)
	require.NoError(t, err)
	require.Equal(t, "typed-in", user)
}

func TestResolveUsernameNothingAvailable(t *testing.T) {
	provider := &fakeProvider{userErr: errors.New("bad credentials")}

	_, err := ResolveUsername(context.Background(), "", provider, nil)
	require.Error(t, err)
}
