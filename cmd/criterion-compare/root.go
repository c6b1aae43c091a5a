package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexkirsz/criterion-compare-action/internal/config"
	"github.com/alexkirsz/criterion-compare-action/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "criterion-compare",
	Short: "Compare Criterion benchmarks between a pull request and its base branch",
	Long: `criterion-compare builds the Criterion benchmarks of the checked-out
pull request branch and of the base branch, runs every benchmark case
under both, and posts the comparison as a pull request comment.

It is designed to run inside a GitHub Actions workflow, where it reads
its inputs from the INPUT_* and GITHUB_* environment, but it can also
run locally against any git working tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCompare,
}

// Execute runs the root command and maps any failure to a non-zero
// exit code. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.Flags().String("token", "", "GitHub token used to post the comment")
	rootCmd.Flags().String("branch", "", "Base branch to compare against (default master)")
	rootCmd.Flags().String("cwd", "", "Crate directory to benchmark in")
	rootCmd.Flags().String("bench", "", "Restrict the run to a single bench target")
	rootCmd.Flags().String("features", "", "Comma-separated cargo features to enable")
	rootCmd.Flags().Bool("default-features", true, "Build with the crate's default features")
	rootCmd.Flags().Int("pr", 0, "Pull request number to comment on")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("token", rootCmd.Flags().Lookup("token"))
	viper.BindPFlag("branch_name", rootCmd.Flags().Lookup("branch"))
	viper.BindPFlag("cwd", rootCmd.Flags().Lookup("cwd"))
	viper.BindPFlag("bench_name", rootCmd.Flags().Lookup("bench"))
	viper.BindPFlag("features", rootCmd.Flags().Lookup("features"))
	viper.BindPFlag("default_features", rootCmd.Flags().Lookup("default-features"))
	viper.BindPFlag("pr", rootCmd.Flags().Lookup("pr"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"))
}
