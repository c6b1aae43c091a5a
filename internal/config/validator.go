package config

import (
	"fmt"
	"strings"
)

// Validate checks that everything a run needs is present. All problems
// are reported at once so a misconfigured workflow is fixed in one
// round trip.
func (s *Settings) Validate() error {
	var problems []string

	if s.Token == "" {
		problems = append(problems, "token is required (INPUT_TOKEN or GITHUB_TOKEN)")
	}
	if s.Owner == "" || s.Repo == "" {
		problems = append(problems, "repository is required (GITHUB_REPOSITORY, owner/name)")
	}
	if s.SHA == "" {
		problems = append(problems, "commit SHA is required (GITHUB_SHA)")
	}
	if s.PRNumber <= 0 {
		problems = append(problems, "pull request number could not be determined (--pr, event payload, or refs/pull ref)")
	}
	if s.BranchName == "" {
		problems = append(problems, "base branch name must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
