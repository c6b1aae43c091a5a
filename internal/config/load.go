package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings is the fully resolved runtime configuration of a comparison
// run. Inside GitHub Actions everything comes from the INPUT_* and
// GITHUB_* environment; locally a .env file or flags fill the gaps.
type Settings struct {
	Token           string
	BranchName      string
	Cwd             string
	BenchName       string
	Features        []string
	DefaultFeatures bool

	Owner    string
	Repo     string
	SHA      string
	PRNumber int

	Debug bool

	SlackEnabled bool
	SlackChannel string
	SlackToken   string
}

// Load initializes viper from the environment and an optional config
// file. Action inputs arrive as INPUT_<NAME> variables, so each key is
// bound to its action spelling first and any conventional fallback
// second.
func Load(cfgFile string) {
	// explicit .env loading; missing files are fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read config file %s: %v\n", cfgFile, err)
		}
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("token", "INPUT_TOKEN", "GITHUB_TOKEN")
	viper.BindEnv("branch_name", "INPUT_BRANCHNAME")
	viper.BindEnv("cwd", "INPUT_CWD")
	viper.BindEnv("bench_name", "INPUT_BENCHNAME")
	viper.BindEnv("features", "INPUT_FEATURES")
	viper.BindEnv("default_features", "INPUT_DEFAULTFEATURES")
	viper.BindEnv("repository", "GITHUB_REPOSITORY")
	viper.BindEnv("sha", "GITHUB_SHA")
	viper.BindEnv("ref", "GITHUB_REF")
	viper.BindEnv("event_path", "GITHUB_EVENT_PATH")
	viper.BindEnv("notifications.slack.token", "SLACK_BOT_USER_TOKEN")

	viper.SetDefault("branch_name", "master")
	viper.SetDefault("cwd", ".")
	viper.SetDefault("default_features", true)
	viper.SetDefault("verbose", false)

	slackEnabled := os.Getenv("SLACK_BOT_USER_TOKEN") != ""
	viper.SetDefault("notifications.slack.enabled", slackEnabled)
	viper.SetDefault("notifications.slack.channel", "#benchmarks")
}

// FromViper materializes Settings from the loaded viper state.
func FromViper() (*Settings, error) {
	s := &Settings{
		Token:           viper.GetString("token"),
		BranchName:      viper.GetString("branch_name"),
		Cwd:             viper.GetString("cwd"),
		BenchName:       viper.GetString("bench_name"),
		DefaultFeatures: viper.GetBool("default_features"),
		SHA:             viper.GetString("sha"),
		Debug:           viper.GetBool("verbose"),
		SlackEnabled:    viper.GetBool("notifications.slack.enabled"),
		SlackChannel:    viper.GetString("notifications.slack.channel"),
		SlackToken:      viper.GetString("notifications.slack.token"),
	}

	if features := strings.TrimSpace(viper.GetString("features")); features != "" {
		for _, f := range strings.Split(features, ",") {
			if f = strings.TrimSpace(f); f != "" {
				s.Features = append(s.Features, f)
			}
		}
	}

	if repository := viper.GetString("repository"); repository != "" {
		owner, repo, ok := strings.Cut(repository, "/")
		if !ok {
			return nil, fmt.Errorf("malformed repository %q, want owner/name", repository)
		}
		s.Owner, s.Repo = owner, repo
	}

	number, err := resolvePRNumber()
	if err != nil {
		return nil, err
	}
	s.PRNumber = number

	return s, nil
}

var pullRefRe = regexp.MustCompile(`^refs/pull/(\d+)/`)

// resolvePRNumber finds the pull request under comparison. An explicit
// flag wins, then the pull_request number in the workflow event
// payload, then the refs/pull/N/merge ref the runner checks out.
func resolvePRNumber() (int, error) {
	if n := viper.GetInt("pr"); n != 0 {
		return n, nil
	}

	if path := viper.GetString("event_path"); path != "" {
		n, err := prNumberFromEvent(path)
		if err != nil {
			return 0, err
		}
		if n != 0 {
			return n, nil
		}
	}

	if m := pullRefRe.FindStringSubmatch(viper.GetString("ref")); m != nil {
		var n int
		fmt.Sscanf(m[1], "%d", &n)
		return n, nil
	}

	return 0, nil
}

func prNumberFromEvent(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading event payload: %w", err)
	}
	var event struct {
		PullRequest struct {
			Number int `json:"number"`
		} `json:"pull_request"`
	}
	if err := json.Unmarshal(data, &event); err != nil {
		return 0, fmt.Errorf("parsing event payload %s: %w", path, err)
	}
	return event.PullRequest.Number, nil
}
