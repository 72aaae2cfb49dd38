package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHelloCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hello [name]",
		Short: "says hello",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "World"
			if len(args) == 1 {
				name = args[0]
			}
			a.Logger.Debug("arguments received", "name", name)
			a.Logger.Info(fmt.Sprintf("Hello %s!", name))
			return nil
		},
	}
}
