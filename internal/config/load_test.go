package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadWithEnv(t *testing.T, env map[string]string) *Settings {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	for k, v := range env {
		t.Setenv(k, v)
	}
	Load("")
	s, err := FromViper()
	require.NoError(t, err)
	return s
}

func TestLoad_ActionInputs(t *testing.T) {
	s := loadWithEnv(t, map[string]string{
		"INPUT_TOKEN":           "ghs_abc",
		"INPUT_BRANCHNAME":      "main",
		"INPUT_CWD":             "crates/core",
		"INPUT_BENCHNAME":       "parsing",
		"INPUT_FEATURES":        "simd, unstable",
		"INPUT_DEFAULTFEATURES": "false",
		"GITHUB_REPOSITORY":     "octocat/perf",
		"GITHUB_SHA":            "0123456789abcdef0123456789abcdef01234567",
		"GITHUB_REF":            "refs/pull/42/merge",
	})

	assert.Equal(t, "ghs_abc", s.Token)
	assert.Equal(t, "main", s.BranchName)
	assert.Equal(t, "crates/core", s.Cwd)
	assert.Equal(t, "parsing", s.BenchName)
	assert.Equal(t, []string{"simd", "unstable"}, s.Features)
	assert.False(t, s.DefaultFeatures)
	assert.Equal(t, "octocat", s.Owner)
	assert.Equal(t, "perf", s.Repo)
	assert.Equal(t, 42, s.PRNumber)
}

func TestLoad_Defaults(t *testing.T) {
	s := loadWithEnv(t, map[string]string{
		"GITHUB_TOKEN":      "ghs_fallback",
		"GITHUB_REPOSITORY": "octocat/perf",
	})

	assert.Equal(t, "ghs_fallback", s.Token, "GITHUB_TOKEN is the token fallback")
	assert.Equal(t, "master", s.BranchName)
	assert.Equal(t, ".", s.Cwd)
	assert.True(t, s.DefaultFeatures)
	assert.Empty(t, s.Features)
	assert.False(t, s.SlackEnabled)
}

func TestLoad_PRNumberFromEventPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"action":"synchronize","pull_request":{"number":1337}}`), 0o644))

	s := loadWithEnv(t, map[string]string{
		"GITHUB_EVENT_PATH": path,
		"GITHUB_REF":        "refs/pull/1/merge",
	})

	assert.Equal(t, 1337, s.PRNumber, "event payload beats the ref")
}

func TestLoad_PRFlagBeatsEverything(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("GITHUB_REF", "refs/pull/7/merge")
	Load("")
	viper.Set("pr", 99)

	s, err := FromViper()
	require.NoError(t, err)
	assert.Equal(t, 99, s.PRNumber)
}

func TestFromViper_MalformedRepository(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("GITHUB_REPOSITORY", "not-a-repo")
	Load("")

	_, err := FromViper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner/name")
}

func TestLoad_SlackEnabledByToken(t *testing.T) {
	s := loadWithEnv(t, map[string]string{
		"SLACK_BOT_USER_TOKEN": "xoxb-1",
	})

	assert.True(t, s.SlackEnabled)
	assert.Equal(t, "xoxb-1", s.SlackToken)
	assert.Equal(t, "#benchmarks", s.SlackChannel)
}
