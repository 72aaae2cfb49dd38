package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ryo246912/coderabbit-github-parser/internal/cli"
	"github.com/ryo246912/coderabbit-github-parser/internal/config"
	"github.com/ryo246912/coderabbit-github-parser/internal/github"
	"github.com/ryo246912/coderabbit-github-parser/internal/logging"
	"github.com/ryo246912/coderabbit-github-parser/internal/shell"
	"github.com/ryo246912/coderabbit-github-parser/internal/ui"
)

func run() int {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Build dependencies explicitly
	deps := cli.Deps{
		Logger: logger,
		NewClient: func(logger *log.Logger) github.GitHubClient {
			return github.NewClient(shell.NewGhRunner(logger), logger)
		},
		Prompter: &ui.DefaultPrompter{},
		Config:   cfg,
		Output:   ui.NewTerminalOutput(),
	}

	return cli.Execute(context.Background(), deps, os.Args[1:])
}

func main() {
	os.Exit(run())
}
