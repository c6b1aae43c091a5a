package cargo

import (
	"bufio"
	"context"
	"regexp"
	"strings"

	"github.com/alexkirsz/criterion-compare-action/internal/proc"
)

// Criterion's list mode prints one line per case: "<name>: bench".
var caseRe = regexp.MustCompile(`^(.+): bench$`)

// ListCases runs the executable in list-only mode and returns the
// benchmark case names it exposes.
func (c *Cargo) ListCases(ctx context.Context, executable string) ([]string, error) {
	res, err := c.Runner.Run(ctx, executable, []string{"--bench", "--list"}, proc.Options{Dir: c.Dir})
	if err != nil {
		return nil, &RunError{Executable: executable, Stderr: res.Stderr, Err: err}
	}

	var names []string
	sc := bufio.NewScanner(strings.NewReader(res.Stdout))
	for sc.Scan() {
		if m := caseRe.FindStringSubmatch(sc.Text()); m != nil {
			names = append(names, m[1])
		}
	}
	return names, nil
}

// Catalog maps every exposed case name to the executable providing it.
// When two executables expose the same name, the later one in the input
// slice wins.
func (c *Cargo) Catalog(ctx context.Context, executables []string) (map[string]string, error) {
	catalog := make(map[string]string)
	for _, exe := range executables {
		names, err := c.ListCases(ctx, exe)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			catalog[name] = exe
		}
	}
	return catalog, nil
}

// RunCase executes one benchmark case and persists its measurements
// under the given baseline label.
func (c *Cargo) RunCase(ctx context.Context, executable, name, baseline string) error {
	c.Logger.Info("running benchmark case", "case", name, "baseline", baseline)
	args := []string{"--bench", name, "--exact", "--save-baseline", baseline}
	res, err := c.Runner.Run(ctx, executable, args, proc.Options{Dir: c.Dir})
	if err != nil {
		return &RunError{Executable: executable, Case: name, Stderr: res.Stderr, Err: err}
	}
	return nil
}
