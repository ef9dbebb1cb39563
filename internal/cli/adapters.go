package cli

import (
	"fmt"

	"netmotive-switcher/internal/infrastructure/container"

	"github.com/spf13/cobra"
)

func newAdaptersCommand(c *container.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "adapters",
		Short: "List network adapter names on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapters, err := c.GetAdapterLister().ListAdapters(cmd.Context())
			if err != nil {
				return err
			}
			if len(adapters) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No network adapters found.")
				return nil
			}
			for _, name := range adapters {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
