package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		for _, key := range []string{"GITHUB_USERNAME", "GITHUB_REPOSITORY_OWNER", "GITHUB_TOKEN", "OUTPUT_PATH"} {
			t.Setenv(key, "placeholder") // register restore, then clear
			os.Unsetenv(key)
		}

		cfg, err := Load()
		require.NoError(t, err)

		assert.Empty(t, cfg.Username)
		assert.Empty(t, cfg.Token)
		assert.Equal(t, "docs/stats.svg", cfg.OutputPath)
	})

	t.Run("reads every variable", func(t *testing.T) {
		t.Setenv("GITHUB_USERNAME", "octocat")
		t.Setenv("GITHUB_REPOSITORY_OWNER", "octo-org")
		t.Setenv("GITHUB_TOKEN", "ghp_secret")
		t.Setenv("OUTPUT_PATH", "out/card.svg")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "octocat", cfg.Username)
		assert.Equal(t, "octo-org", cfg.RepoOwner)
		assert.Equal(t, "ghp_secret", cfg.Token)
		assert.Equal(t, "out/card.svg", cfg.OutputPath)
	})
}

// TestConfig_ResolveUsername pins down the fallback order: explicit argument,
// then GITHUB_USERNAME, then GITHUB_REPOSITORY_OWNER.
func TestConfig_ResolveUsername(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      Config
		arg      string
		expected string
		wantErr  bool
	}{
		{
			name:     "argument wins over everything",
			cfg:      Config{Username: "env-user", RepoOwner: "owner"},
			arg:      "arg-user",
			expected: "arg-user",
		},
		{
			name:     "GITHUB_USERNAME wins over the repository owner",
			cfg:      Config{Username: "env-user", RepoOwner: "owner"},
			expected: "env-user",
		},
		{
			name:     "repository owner is the last fallback",
			cfg:      Config{RepoOwner: "owner"},
			expected: "owner",
		},
		{
			name:    "nothing set is an error",
			cfg:     Config{},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			username, err := tc.cfg.ResolveUsername(tc.arg)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrNoUsername)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, username)
			}
		})
	}
}
