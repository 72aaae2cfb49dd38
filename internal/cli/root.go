// Package cli wires the cobra command tree.
package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ryo246912/coderabbit-github-parser/internal/config"
	"github.com/ryo246912/coderabbit-github-parser/internal/github"
	"github.com/ryo246912/coderabbit-github-parser/internal/logging"
	"github.com/ryo246912/coderabbit-github-parser/internal/ui"
)

// Version is reported by --version
const Version = "0.1.0"

// Deps holds everything the commands need. main builds it once.
type Deps struct {
	Logger    *log.Logger
	// NewClient runs after flags are parsed so loggers derived from Logger
	// see the final level.
	NewClient func(logger *log.Logger) github.GitHubClient
	Prompter  ui.Prompter
	Config    *config.Config
	Output    ui.Output
}

// app is shared by every command of one root
type app struct {
	Deps
	client github.GitHubClient
}

// NewRootCommand builds the command tree
func NewRootCommand(deps Deps) *cobra.Command {
	var debug bool
	a := &app{Deps: deps}

	root := &cobra.Command{
		Use:           "cgp",
		Short:         "Fetch GitHub PR comments and parse CodeRabbit reviews for AI agents",
		Long:          "coderabbit-github-parser fetches GitHub PR comments through the gh CLI and parses them to markdown for AI agent consumption.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logging.EnableDebug(deps.Logger)
			}
			a.client = deps.NewClient(deps.Logger)
		},
	}
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "output extra debugging information")

	if deps.Output.Out != nil {
		root.SetOut(deps.Output.Out)
	}

	root.AddCommand(
		newHelloCommand(a),
		newPRListCommand(a),
		newPRCommentsCommand(a),
		newPRCodeRabbitCommand(a),
		newReviewCurrentCommand(a),
		newInstallTemplateCommand(a),
	)
	return root
}

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context, deps Deps, args []string) int {
	root := NewRootCommand(deps)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		deps.Logger.Error("❌ CLI Error", "err", err)
		return 1
	}
	return 0
}

// oneOf validates an enum flag value
func oneOf(flag, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid --%s %q: must be one of %s", flag, value, strings.Join(allowed, ", "))
}

// resolveFormat prefers an explicit flag, then the configured format when the
// command supports it, then table.
func resolveFormat(cmd *cobra.Command, flagValue, configured string, allowed []string) (string, error) {
	if cmd.Flags().Changed("format") {
		if err := oneOf("format", flagValue, allowed); err != nil {
			return "", err
		}
		return flagValue, nil
	}
	if slices.Contains(allowed, configured) {
		return configured, nil
	}
	return formatTable, nil
}
