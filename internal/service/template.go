package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ryo246912/coderabbit-github-parser/internal/assets"
	"github.com/ryo246912/coderabbit-github-parser/internal/ui"
)

// Scope selects where the review template is installed
type Scope string

const (
	ScopeProject Scope = "project"
	ScopeGlobal  Scope = "global"
)

// ProjectCommandsDir is relative to the working directory
const ProjectCommandsDir = ".claude/commands"

// ErrFileExists is returned in non-interactive mode when the target is taken
var ErrFileExists = errors.New("file already exists, use --force to overwrite the existing file")

var scopeChoices = []string{
	"Global Claude commands (~/.claude/commands) - Available in all projects",
	"Project Claude commands (./.claude/commands) - This project only",
}

// InstallOptions controls install:template
type InstallOptions struct {
	Force       bool
	Target      string
	Filename    string
	Scope       Scope
	Interactive bool
}

// InstallResult reports where the template went
type InstallResult struct {
	Path      string
	Scope     Scope
	Cancelled bool
}

// TemplateInstaller copies the embedded review template into a Claude commands directory
type TemplateInstaller struct {
	prompter ui.Prompter
	logger   *log.Logger
	homeDir  func() (string, error)
	content  string
}

// NewTemplateInstaller creates a new installer instance
func NewTemplateInstaller(prompter ui.Prompter, logger *log.Logger) *TemplateInstaller {
	return &TemplateInstaller{
		prompter: prompter,
		logger:   logger.With("module", "template"),
		homeDir:  os.UserHomeDir,
		content:  assets.ReviewTemplate(),
	}
}

// Install handles the complete workflow
func (i *TemplateInstaller) Install(opts InstallOptions) (*InstallResult, error) {
	i.logger.Debug("Starting template installation", "options", opts)

	scope, targetDir, filename, err := i.resolve(opts)
	if err != nil {
		return nil, err
	}
	targetFile := filepath.Join(targetDir, filename)
	i.logger.Debug("Installation paths resolved", "scope", scope, "targetDir", targetDir, "filename", filename, "targetFile", targetFile)

	if _, err := os.Stat(targetDir); os.IsNotExist(err) {
		i.logger.Info("Creating target directory", "targetDir", targetDir)
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", targetDir, err)
		}
	}

	if _, err := os.Stat(targetFile); err == nil && !opts.Force {
		if !opts.Interactive {
			i.logger.Warn("Target file already exists", "targetFile", targetFile)
			return nil, fmt.Errorf("%s: %w", targetFile, ErrFileExists)
		}
		overwrite, err := i.prompter.Confirm(fmt.Sprintf("File already exists at %s. Overwrite?", targetFile), false)
		if err != nil {
			return nil, fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !overwrite {
			i.logger.Info("Installation cancelled by user")
			return &InstallResult{Path: targetFile, Scope: scope, Cancelled: true}, nil
		}
	}

	i.logger.Info("Writing template file", "targetFile", targetFile)
	if err := os.WriteFile(targetFile, []byte(i.content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}

	i.logger.Info("Template installed successfully!")
	i.logger.Info("📄 Location: " + targetFile)
	i.logger.Info("📖 Usage:")
	i.logger.Info("1. Generate CodeRabbit comments:")
	i.logger.Info("   cgp pr:coderabbit <PR_NUMBER> --format markdown > review-comments/pr<PR_NUMBER>.md")
	i.logger.Info("2. Use the template from your Claude commands directory")
	i.logger.Info("3. Follow the examples in the template for different analysis types")
	if scope == ScopeGlobal {
		i.logger.Info("🌐 Template installed globally - available in all projects")
	} else {
		i.logger.Info("📁 Template installed locally - available in this project only")
	}

	return &InstallResult{Path: targetFile, Scope: scope}, nil
}

// resolve fills in scope, directory and filename from options or prompts
func (i *TemplateInstaller) resolve(opts InstallOptions) (Scope, string, string, error) {
	scope := opts.Scope
	switch scope {
	case ScopeProject, ScopeGlobal:
	case "":
		if opts.Interactive {
			idx, err := i.prompter.Select("Where would you like to install the CodeRabbit review template?", scopeChoices, 0)
			if err != nil {
				return "", "", "", fmt.Errorf("failed to select scope: %w", err)
			}
			scope = ScopeGlobal
			if idx == 1 {
				scope = ScopeProject
			}
		} else {
			scope = ScopeGlobal
		}
	default:
		return "", "", "", fmt.Errorf("invalid scope %q: must be project or global", scope)
	}

	defaultDir, err := i.commandsDir(scope)
	if err != nil {
		return "", "", "", err
	}

	targetDir := opts.Target
	if targetDir == "" {
		targetDir = defaultDir
		if opts.Interactive {
			ok, err := i.prompter.Confirm(fmt.Sprintf("Install to %s?", targetDir), true)
			if err != nil {
				return "", "", "", fmt.Errorf("failed to confirm target directory: %w", err)
			}
			if !ok {
				targetDir, err = i.prompter.Input("Enter custom target directory", defaultDir)
				if err != nil {
					return "", "", "", fmt.Errorf("failed to read target directory: %w", err)
				}
			}
		}
	}

	filename := opts.Filename
	if filename == "" {
		filename = assets.ReviewTemplateName
		if opts.Interactive {
			filename, err = i.prompter.Input("Template filename", assets.ReviewTemplateName)
			if err != nil {
				return "", "", "", fmt.Errorf("failed to read filename: %w", err)
			}
		}
	}

	return scope, targetDir, filename, nil
}

func (i *TemplateInstaller) commandsDir(scope Scope) (string, error) {
	if scope == ScopeProject {
		return ProjectCommandsDir, nil
	}
	home, err := i.homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "commands"), nil
}
