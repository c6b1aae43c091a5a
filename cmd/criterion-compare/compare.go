package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexkirsz/criterion-compare-action/internal/bench"
	"github.com/alexkirsz/criterion-compare-action/internal/cargo"
	"github.com/alexkirsz/criterion-compare-action/internal/compare"
	"github.com/alexkirsz/criterion-compare-action/internal/config"
	"github.com/alexkirsz/criterion-compare-action/internal/gh"
	"github.com/alexkirsz/criterion-compare-action/internal/git"
	"github.com/alexkirsz/criterion-compare-action/internal/notify"
	"github.com/alexkirsz/criterion-compare-action/internal/proc"
)

var noticeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("11"))

func runCompare(cmd *cobra.Command, args []string) error {
	settings, err := config.FromViper()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger := slog.Default()
	runner := &proc.ExecRunner{}

	builder := &cargo.Cargo{
		Dir:             settings.Cwd,
		Runner:          runner,
		Logger:          logger,
		BenchName:       settings.BenchName,
		Features:        settings.Features,
		DefaultFeatures: settings.DefaultFeatures,
	}

	comparer := &bench.Comparer{
		Git:        git.NewClient(settings.Cwd, runner),
		Cargo:      builder,
		Runner:     runner,
		Logger:     logger,
		BaseBranch: settings.BranchName,
		WorkDir:    settings.Cwd,
	}

	ctx := cmd.Context()
	res, err := comparer.Run(ctx)
	if err != nil {
		return err
	}

	// The raw critcmp table always goes to the job log.
	fmt.Fprint(cmd.OutOrStdout(), res.Stdout)

	rows := compare.Parse(res.Stdout, logger)
	report := compare.Report(rows, settings.SHA)

	client := gh.NewClient(settings.Token, settings.Owner, settings.Repo)
	commentID, postErr := client.CreateComment(ctx, settings.PRNumber, report)
	if postErr != nil {
		// Posting is the one recoverable stage; the results were already
		// measured, so they go to the job log instead.
		var apiErr *gh.APIError
		if errors.As(postErr, &apiErr) && apiErr.Restricted() {
			logger.Warn("could not post comment, the token may be read-only (fork pull requests run with one)",
				"pr", settings.PRNumber, "status", apiErr.StatusCode)
		} else {
			logger.Warn("could not post comment", "pr", settings.PRNumber, "error", postErr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), noticeStyle.Render("Posting the comment failed; benchmark results follow."))
		fmt.Fprint(cmd.OutOrStdout(), compare.RenderLocal(compare.FallbackTable(rows)))
	} else {
		logger.Info("posted benchmark comment", "pr", settings.PRNumber, "comment_id", commentID)
	}

	notifier := notify.NewSlackNotifier(settings.SlackToken, settings.SlackChannel, logger)
	if settings.SlackEnabled {
		notifier.Notify(ctx, fmt.Sprintf(
			"Benchmark comparison for %s/%s#%d finished: %d of %d cases significantly different.",
			settings.Owner, settings.Repo, settings.PRNumber,
			compare.SignificantCount(rows), len(rows)))
	}

	return nil
}
