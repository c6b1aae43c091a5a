package bench

import (
	"context"
	"log/slog"
	"sort"

	"github.com/alexkirsz/criterion-compare-action/internal/cargo"
	"github.com/alexkirsz/criterion-compare-action/internal/compare"
	"github.com/alexkirsz/criterion-compare-action/internal/git"
	"github.com/alexkirsz/criterion-compare-action/internal/proc"
)

// Baseline labels the benchmark executables save measurements under;
// critcmp is later pointed at the same pair.
const (
	BaselineChanges = "changes"
	BaselineBase    = "base"
)

// branchState tracks which branch the working tree currently has
// checked out. It must match the branch owning an executable before
// that executable runs.
type branchState int

const (
	onChanges branchState = iota
	onBase
)

// Comparer runs the full two-branch comparison pipeline. It assumes
// the changes branch is checked out when Run is called, and restores
// that checkout before returning successfully. Everything is strictly
// sequential; the working tree is the one shared mutable resource and
// no step overlaps a checkout.
type Comparer struct {
	Git    *git.Client
	Cargo  *cargo.Cargo
	Runner proc.Runner
	Logger *slog.Logger

	BaseBranch string
	WorkDir    string

	// relocate is swappable for tests; nil means cargo.Relocate.
	relocate func([]string) ([]string, error)

	state branchState
}

// Run builds and catalogs both branches, runs every benchmark case
// under its branch's baseline label, and returns the captured critcmp
// output. Any build, checkout, copy, or run failure aborts the whole
// run; no partial comparison is produced.
func (c *Comparer) Run(ctx context.Context) (proc.Result, error) {
	changesCatalog, err := c.prepare(ctx)
	if err != nil {
		return proc.Result{}, err
	}

	c.Logger.Info("switching to base branch", "branch", c.BaseBranch)
	if err := c.Git.Checkout(ctx, c.BaseBranch); err != nil {
		return proc.Result{}, err
	}
	baseCatalog, err := c.prepare(ctx)
	if err != nil {
		return proc.Result{}, err
	}
	if err := c.Git.CheckoutPrevious(ctx); err != nil {
		return proc.Result{}, err
	}
	c.state = onChanges

	if err := c.runCases(ctx, changesCatalog, baseCatalog); err != nil {
		return proc.Result{}, err
	}

	return compare.Critcmp(ctx, c.Runner, c.WorkDir, BaselineBase, BaselineChanges)
}

// prepare compiles the currently checked-out branch, relocates the
// executables out of the build tree, and catalogs their cases.
func (c *Comparer) prepare(ctx context.Context) (map[string]string, error) {
	executables, err := c.Cargo.Compile(ctx)
	if err != nil {
		return nil, err
	}
	relocate := c.relocate
	if relocate == nil {
		relocate = cargo.Relocate
	}
	relocated, err := relocate(executables)
	if err != nil {
		return nil, err
	}
	return c.Cargo.Catalog(ctx, relocated)
}

func (c *Comparer) runCases(ctx context.Context, changesCatalog, baseCatalog map[string]string) error {
	for _, name := range unionNames(changesCatalog, baseCatalog) {
		if exe, ok := changesCatalog[name]; ok {
			if err := c.ensure(ctx, onChanges); err != nil {
				return err
			}
			if err := c.Cargo.RunCase(ctx, exe, name, BaselineChanges); err != nil {
				return err
			}
		}
		if exe, ok := baseCatalog[name]; ok {
			if err := c.ensure(ctx, onBase); err != nil {
				return err
			}
			if err := c.Cargo.RunCase(ctx, exe, name, BaselineBase); err != nil {
				return err
			}
		}
	}
	// Leave the tree the way we found it.
	return c.ensure(ctx, onChanges)
}

// ensure performs a checkout only on an actual state transition, so a
// run of consecutive same-branch cases costs one checkout, not one per
// case.
func (c *Comparer) ensure(ctx context.Context, target branchState) error {
	if c.state == target {
		return nil
	}
	var err error
	if target == onBase {
		err = c.Git.Checkout(ctx, c.BaseBranch)
	} else {
		err = c.Git.CheckoutPrevious(ctx)
	}
	if err != nil {
		return err
	}
	c.state = target
	return nil
}

func unionNames(a, b map[string]string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for name := range a {
		set[name] = struct{}{}
	}
	for name := range b {
		set[name] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
