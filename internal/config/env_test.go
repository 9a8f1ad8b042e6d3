package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeys(t *testing.T) {
	testCases := []struct {
		name          string
		openaiKey     string
		groqKey       string
		falKey        string
		expectError   bool
		errorContains string
	}{
		{
			name:      "valid OpenAI key",
			openaiKey: "sk-1234567890abcdef1234567890abcdef",
		},
		{
			name:    "valid Groq key",
			groqKey: "gsk_1234567890abcdef1234567890abcdef",
		},
		{
			name:   "valid Fal key",
			falKey: "abcdef12-3456-7890-abcd-ef1234567890:secret",
		},
		{
			name:      "all keys set",
			openaiKey: "sk-1234567890abcdef1234567890abcdef",
			groqKey:   "gsk_1234567890abcdef1234567890abcdef",
			falKey:    "abcdef12-3456-7890-abcd-ef1234567890:secret",
		},
		{
			name: "no keys set",
		},
		{
			name:          "invalid OpenAI key format",
			openaiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid OPENAI_API_KEY format",
		},
		{
			name:          "OpenAI key too short",
			openaiKey:     "sk-short",
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:          "invalid Groq key format",
			groqKey:       "sk-1234567890abcdef1234567890abcdef",
			expectError:   true,
			errorContains: "invalid GROQ_API_KEY format",
		},
		{
			name:          "Fal key too short",
			falKey:        "short",
			expectError:   true,
			errorContains: "invalid FAL_KEY format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tc.openaiKey)
			t.Setenv("GROQ_API_KEY", tc.groqKey)
			t.Setenv("FAL_KEY", tc.falKey)

			keys, err := GetAPIKeys()
			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.openaiKey, keys.OpenAI)
			assert.Equal(t, tc.groqKey, keys.Groq)
			assert.Equal(t, tc.falKey, keys.Fal)
		})
	}
}

func TestAPIKeysTrimWhitespace(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "  sk-1234567890abcdef1234567890abcdef  ")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("FAL_KEY", "")

	keys, err := GetAPIKeys()
	require.NoError(t, err)
	assert.Equal(t, "sk-1234567890abcdef1234567890abcdef", keys.OpenAI)
}

func TestKeyForAndAvailable(t *testing.T) {
	keys := &APIKeys{
		OpenAI: "sk-1234567890abcdef1234567890abcdef",
		Fal:    "abcdef12:secret",
	}

	assert.Equal(t, keys.OpenAI, keys.KeyFor("openai"))
	assert.Equal(t, "", keys.KeyFor("groq"))
	assert.Equal(t, "", keys.KeyFor("nonexistent"))
	assert.Equal(t, []string{"openai", "fal"}, keys.Available())
}

func TestRequireKey(t *testing.T) {
	keys := &APIKeys{Groq: "gsk_1234567890abcdef1234567890abcdef"}

	assert.NoError(t, keys.RequireKey("groq"))

	err := keys.RequireKey("openai")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	err = keys.RequireKey("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestLoadEnvMissingFileIsFine(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	assert.NoError(t, LoadEnv())
}
