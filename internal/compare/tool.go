package compare

import (
	"context"
	"fmt"

	"github.com/alexkirsz/criterion-compare-action/internal/proc"
)

// Critcmp invokes the critcmp tool on two saved baselines and returns
// its captured output verbatim.
func Critcmp(ctx context.Context, runner proc.Runner, dir, baseLabel, changesLabel string) (proc.Result, error) {
	res, err := runner.Run(ctx, "critcmp", []string{baseLabel, changesLabel}, proc.Options{Dir: dir})
	if err != nil {
		return res, fmt.Errorf("critcmp %s %s: %w", baseLabel, changesLabel, err)
	}
	return res, nil
}
