package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "siliconprairie",
		Short:        "Silicon Prairie website",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd(), themeCmd())
	return root
}
