package cli

import (
	"github.com/spf13/cobra"

	"github.com/ryo246912/coderabbit-github-parser/internal/assets"
	"github.com/ryo246912/coderabbit-github-parser/internal/service"
)

func newInstallTemplateCommand(a *app) *cobra.Command {
	var opts service.InstallOptions
	var scope string
	var noInteractive bool

	cmd := &cobra.Command{
		Use:   "install:template",
		Short: "Install CodeRabbit review template to Claude commands directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scope != "" {
				if err := oneOf("scope", scope, []string{string(service.ScopeProject), string(service.ScopeGlobal)}); err != nil {
					return err
				}
			}
			opts.Scope = service.Scope(scope)
			opts.Interactive = !noInteractive

			installer := service.NewTemplateInstaller(a.Prompter, a.Logger)
			_, err := installer.Install(opts)
			return err
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Force, "force", false, "Overwrite existing template file if it exists")
	f.StringVar(&opts.Target, "target", a.Config.Template.Target, "Custom target directory")
	f.StringVar(&opts.Filename, "filename", a.Config.Template.Filename, "Custom filename (default: "+assets.ReviewTemplateName+")")
	f.StringVar(&scope, "scope", a.Config.Template.Scope, "Installation scope: project or global (default: interactive prompt)")
	f.BoolVar(&noInteractive, "no-interactive", false, "Run in non-interactive mode with defaults")
	return cmd
}
