package cargo

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/alexkirsz/criterion-compare-action/internal/proc"
)

// Cargo drives the cargo build tool and the Criterion executables it
// produces, all inside one crate directory.
type Cargo struct {
	Dir    string
	Runner proc.Runner
	Logger *slog.Logger

	// BenchName restricts the build and run to a single bench target.
	BenchName string
	// Features are extra cargo features to enable.
	Features []string
	// DefaultFeatures toggles the crate's default feature set.
	DefaultFeatures bool
}

// Executable lines look like:
//
//	Executable benches/parse.rs (target/release/deps/parse-0a1b2c3d4e5f)
var executableRe = regexp.MustCompile(`Executable\b.*\((.*[/\\]release[/\\].*)\)`)

// Compile builds the benchmark executables without running them and
// returns the paths cargo reports on its diagnostic stream, in
// first-seen order with duplicates discarded.
func (c *Cargo) Compile(ctx context.Context) ([]string, error) {
	args := []string{"bench"}
	if c.BenchName != "" {
		args = append(args, "--bench", c.BenchName)
	}
	if !c.DefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if len(c.Features) > 0 {
		args = append(args, "--features", strings.Join(c.Features, ","))
	}
	args = append(args, "--no-run")

	c.Logger.Info("compiling benchmarks", "args", strings.Join(args, " "))
	res, err := c.Runner.Run(ctx, "cargo", args, proc.Options{Dir: c.Dir})
	if err != nil {
		return nil, &BuildError{Stderr: res.Stderr, Err: err}
	}

	// Cargo writes diagnostics to stderr, but scan stdout too in case a
	// wrapper redirects them.
	executables := extractExecutables(res.Stderr + "\n" + res.Stdout)
	if len(executables) == 0 {
		return nil, &BuildError{Stderr: res.Stderr, Err: errors.New("cargo reported no benchmark executables")}
	}
	c.Logger.Debug("benchmark executables built", "count", len(executables))
	return executables, nil
}

func extractExecutables(out string) []string {
	seen := make(map[string]struct{})
	var executables []string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		m := executableRe.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		executables = append(executables, m[1])
	}
	return executables
}
