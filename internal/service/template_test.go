package service

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ryo246912/coderabbit-github-parser/internal/ui"
)

func newTestInstaller(prompter ui.Prompter, home string) *TemplateInstaller {
	installer := NewTemplateInstaller(prompter, log.New(io.Discard))
	installer.homeDir = func() (string, error) { return home, nil }
	installer.content = "template body\n"
	return installer
}

// TestTemplateInstaller_resolve tests scope, directory and filename resolution
func TestTemplateInstaller_resolve(t *testing.T) {
	home := "/home/tester"
	globalDir := filepath.Join(home, ".claude", "commands")

	tests := []struct {
		name             string
		opts             InstallOptions
		prompter         *ui.MockPrompter
		expectedScope    Scope
		expectedDir      string
		expectedFilename string
		expectedPrompts  int
		expectError      bool
	}{
		{
			name:             "non-interactive defaults",
			opts:             InstallOptions{},
			prompter:         &ui.MockPrompter{},
			expectedScope:    ScopeGlobal,
			expectedDir:      globalDir,
			expectedFilename: "coderabbit-review-template.md",
		},
		{
			name:             "non-interactive project",
			opts:             InstallOptions{Scope: ScopeProject, Filename: "review.md"},
			prompter:         &ui.MockPrompter{},
			expectedScope:    ScopeProject,
			expectedDir:      ".claude/commands",
			expectedFilename: "review.md",
		},
		{
			name:             "interactive accepts defaults",
			opts:             InstallOptions{Interactive: true},
			prompter:         &ui.MockPrompter{SelectedIndex: 0, DefaultConfirm: true},
			expectedScope:    ScopeGlobal,
			expectedDir:      globalDir,
			expectedFilename: "coderabbit-review-template.md",
			expectedPrompts:  3,
		},
		{
			name:             "interactive project with custom directory",
			opts:             InstallOptions{Interactive: true},
			prompter:         &ui.MockPrompter{SelectedIndex: 1, Confirmations: []bool{false}, Inputs: []string{"/tmp/cmds", "mine.md"}},
			expectedScope:    ScopeProject,
			expectedDir:      "/tmp/cmds",
			expectedFilename: "mine.md",
			expectedPrompts:  4,
		},
		{
			name:             "interactive skips prompts for given options",
			opts:             InstallOptions{Interactive: true, Scope: ScopeGlobal, Target: "/opt/cmds", Filename: "x.md"},
			prompter:         &ui.MockPrompter{},
			expectedScope:    ScopeGlobal,
			expectedDir:      "/opt/cmds",
			expectedFilename: "x.md",
		},
		{
			name:        "invalid scope",
			opts:        InstallOptions{Scope: "system"},
			prompter:    &ui.MockPrompter{},
			expectError: true,
		},
		{
			name:        "selection error",
			opts:        InstallOptions{Interactive: true},
			prompter:    &ui.MockPrompter{SelectionError: errors.New("interrupt")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installer := newTestInstaller(tt.prompter, home)

			scope, dir, filename, err := installer.resolve(tt.opts)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if scope != tt.expectedScope {
				t.Errorf("scope = %q, want %q", scope, tt.expectedScope)
			}
			if dir != tt.expectedDir {
				t.Errorf("dir = %q, want %q", dir, tt.expectedDir)
			}
			if filename != tt.expectedFilename {
				t.Errorf("filename = %q, want %q", filename, tt.expectedFilename)
			}
			prompts := tt.prompter.SelectCalled + tt.prompter.ConfirmCalled + tt.prompter.InputCalled
			if prompts != tt.expectedPrompts {
				t.Errorf("prompted %d times (%v), want %d", prompts, tt.prompter.Labels, tt.expectedPrompts)
			}
		})
	}
}

func TestTemplateInstaller_Install(t *testing.T) {
	t.Run("creates directory and writes template", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "nested", "commands")
		installer := newTestInstaller(&ui.MockPrompter{}, t.TempDir())

		result, err := installer.Install(InstallOptions{Target: target})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		assertFileContent(t, result.Path, "template body\n")
		if result.Path != filepath.Join(target, "coderabbit-review-template.md") || result.Scope != ScopeGlobal || result.Cancelled {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("global scope uses home directory", func(t *testing.T) {
		home := t.TempDir()
		installer := newTestInstaller(&ui.MockPrompter{}, home)

		result, err := installer.Install(InstallOptions{Scope: ScopeGlobal})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		assertFileContent(t, filepath.Join(home, ".claude", "commands", "coderabbit-review-template.md"), "template body\n")
		if result.Scope != ScopeGlobal {
			t.Errorf("Scope = %q", result.Scope)
		}
	})

	t.Run("existing file non-interactive fails", func(t *testing.T) {
		target := t.TempDir()
		existing := writeExisting(t, target)
		installer := newTestInstaller(&ui.MockPrompter{}, t.TempDir())

		_, err := installer.Install(InstallOptions{Target: target})
		if !errors.Is(err, ErrFileExists) {
			t.Fatalf("Expected ErrFileExists, got %v", err)
		}
		assertFileContent(t, existing, "old\n")
	})

	t.Run("existing file with force is overwritten", func(t *testing.T) {
		target := t.TempDir()
		existing := writeExisting(t, target)
		prompter := &ui.MockPrompter{}
		installer := newTestInstaller(prompter, t.TempDir())

		if _, err := installer.Install(InstallOptions{Target: target, Force: true, Interactive: true, Filename: "coderabbit-review-template.md"}); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		assertFileContent(t, existing, "template body\n")
		if prompter.ConfirmCalled != 0 {
			t.Errorf("force should not prompt, got %d confirmations", prompter.ConfirmCalled)
		}
	})

	t.Run("existing file interactive declined", func(t *testing.T) {
		target := t.TempDir()
		existing := writeExisting(t, target)
		prompter := &ui.MockPrompter{Confirmations: []bool{false}}
		installer := newTestInstaller(prompter, t.TempDir())

		result, err := installer.Install(InstallOptions{Target: target, Interactive: true, Scope: ScopeProject, Filename: "coderabbit-review-template.md"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !result.Cancelled {
			t.Error("Expected installation to be cancelled")
		}
		assertFileContent(t, existing, "old\n")
	})

	t.Run("existing file interactive accepted", func(t *testing.T) {
		target := t.TempDir()
		existing := writeExisting(t, target)
		prompter := &ui.MockPrompter{Confirmations: []bool{true}}
		installer := newTestInstaller(prompter, t.TempDir())

		result, err := installer.Install(InstallOptions{Target: target, Interactive: true, Scope: ScopeProject, Filename: "coderabbit-review-template.md"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.Cancelled {
			t.Error("Expected installation to proceed")
		}
		assertFileContent(t, existing, "template body\n")
	})
}

func writeExisting(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "coderabbit-review-template.md")
	if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
		t.Fatalf("Failed to write existing file: %v", err)
	}
	return path
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, string(data), want)
	}
}
