package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	return &Settings{
		Token:      "ghs_abc",
		BranchName: "master",
		Cwd:        ".",
		Owner:      "octocat",
		Repo:       "perf",
		SHA:        "0123456789abcdef0123456789abcdef01234567",
		PRNumber:   42,
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validSettings().Validate())
}

func TestValidate_ReportsAllProblemsAtOnce(t *testing.T) {
	s := validSettings()
	s.Token = ""
	s.SHA = ""
	s.PRNumber = 0

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token is required")
	assert.Contains(t, err.Error(), "commit SHA is required")
	assert.Contains(t, err.Error(), "pull request number")
}

func TestValidate_MissingRepository(t *testing.T) {
	s := validSettings()
	s.Repo = ""

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_REPOSITORY")
}
