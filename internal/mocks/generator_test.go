package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lexiblog/lexiblog-api/internal/generation"
	"github.com/lexiblog/lexiblog-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient(t *testing.T) {
	t.Parallel()

	t.Run("default response", func(t *testing.T) {
		t.Parallel()

		client := &mocks.MockClient{Response: "ok"}
		cfg := generation.Config{Model: "m", Output: generation.OutputText}

		out, err := client.Generate(context.Background(), "prompt", cfg)

		require.NoError(t, err)
		assert.Equal(t, "ok", out)
		assert.Equal(t, 1, client.Calls())
		assert.Equal(t, "prompt", client.LastPrompt())
		assert.Equal(t, cfg, client.LastConfig())
		assert.NotNil(t, client.LastContext())
	})

	t.Run("custom function", func(t *testing.T) {
		t.Parallel()

		client := &mocks.MockClient{
			GenerateFn: func(_ context.Context, prompt string, _ generation.Config) (string, error) {
				return "", errors.New("failed: " + prompt)
			},
		}

		_, err := client.Generate(context.Background(), "x", generation.Config{})

		assert.EqualError(t, err, "failed: x")
	})

	t.Run("no calls", func(t *testing.T) {
		t.Parallel()

		client := &mocks.MockClient{}
		assert.Zero(t, client.Calls())
		assert.Empty(t, client.LastPrompt())
		assert.Nil(t, client.LastContext())
	})
}

func TestMockClientFactory(t *testing.T) {
	t.Parallel()

	client := &mocks.MockClient{}
	f := mocks.NewMockClientFactory(client)

	got, err := f.NewClient(context.Background())
	require.NoError(t, err)
	assert.Same(t, client, got)
	assert.Equal(t, "mock", f.Provider())
	assert.Equal(t, 1, f.Calls())

	noKey := mocks.NewMockClientFactoryWithoutCredential()
	_, err = noKey.NewClient(context.Background())
	assert.ErrorIs(t, err, generation.ErrAuthentication)
}
