package cli

import (
	"fmt"

	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/infrastructure/container"
	"netmotive-switcher/internal/infrastructure/metrics"

	"github.com/spf13/cobra"
)

func newListCommand(c *container.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := c.GetProfileStore().List()
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles stored.")
				return nil
			}

			for i, p := range profiles {
				line := fmt.Sprintf("%d: %s  %s/%s  gw %s", i, p.Name, p.IP, p.Subnet, p.Gateway)
				if p.HasDNS() {
					line += "  dns"
					for _, dns := range p.DNSServers() {
						line += " " + dns
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			metrics.SetProfileCount(len(profiles))
			return nil
		},
	}
}

func newAddCommand(c *container.Container) *cobra.Command {
	var profile entities.Profile

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new profile (interactive form when --name is not given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profile.Name == "" && !cmd.Flags().Changed("name") {
				filled, err := runProfileForm(profile)
				if err != nil {
					return err
				}
				profile = filled
			}

			if err := c.GetProfileStore().Add(cmd.Context(), profile); err != nil {
				return err
			}

			metrics.SetProfileCount(c.GetProfileStore().Count())
			fmt.Fprintf(cmd.OutOrStdout(), "Added profile %q (index %d).\n", profile.Name, c.GetProfileStore().Count()-1)
			return nil
		},
	}

	addProfileFlags(cmd, &profile)
	return cmd
}

func newEditCommand(c *container.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [index]",
		Short: "Edit a profile by index (interactive selection when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection := c.GetSelectionController()

			index, err := pickProfile(args, c.GetProfileStore(), selection, "Select profile to edit")
			if err != nil {
				return err
			}

			current, err := c.GetProfileStore().Get(index)
			if err != nil {
				return err
			}

			updated, err := runProfileForm(current)
			if err != nil {
				return err
			}

			if err := c.GetProfileStore().Update(cmd.Context(), index, updated); err != nil {
				return err
			}

			// The edited entry keeps its index, so the selection stays valid.
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile %q (index %d).\n", updated.Name, index)
			return nil
		},
	}

	return cmd
}

func newDeleteCommand(c *container.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete [index]",
		Short: "Delete a profile by index (interactive selection when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection := c.GetSelectionController()

			index, err := pickProfile(args, c.GetProfileStore(), selection, "Select profile to delete")
			if err != nil {
				return err
			}

			profile, err := c.GetProfileStore().Get(index)
			if err != nil {
				return err
			}

			if !force {
				confirmed, err := confirmDelete(profile.Name)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := c.GetProfileStore().Remove(cmd.Context(), index); err != nil {
				return err
			}

			selection.HandleRemoval(index)
			metrics.SetProfileCount(c.GetProfileStore().Count())
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %q.\n", profile.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")
	return cmd
}

func addProfileFlags(cmd *cobra.Command, profile *entities.Profile) {
	cmd.Flags().StringVar(&profile.Name, "name", "", "profile name")
	cmd.Flags().StringVar(&profile.IP, "ip", "", "IP address")
	cmd.Flags().StringVar(&profile.Subnet, "subnet", "", "subnet mask")
	cmd.Flags().StringVar(&profile.Gateway, "gateway", "", "default gateway")
	cmd.Flags().StringVar(&profile.DNS1, "dns1", "", "primary DNS server")
	cmd.Flags().StringVar(&profile.DNS2, "dns2", "", "secondary DNS server")
}
