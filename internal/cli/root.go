package cli

import (
	"netmotive-switcher/internal/infrastructure/container"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the switcher command tree
func NewRootCommand(c *container.Container, logger *logrus.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "switcher",
		Short:         "Manage static network profiles and apply them to an adapter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newListCommand(c),
		newAddCommand(c),
		newEditCommand(c),
		newDeleteCommand(c),
		newApplyCommand(c, logger),
		newImportCommand(c),
		newExportCommand(c),
		newExampleCommand(c),
		newAdaptersCommand(c),
		newVersionCommand(),
	)

	return rootCmd
}
