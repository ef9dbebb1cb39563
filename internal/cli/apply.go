package cli

import (
	"fmt"

	"netmotive-switcher/internal/application/usecases"
	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/infrastructure/container"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newApplyCommand(c *container.Container, logger *logrus.Logger) *cobra.Command {
	var (
		adapterFlag string
		elevate     bool
	)

	cmd := &cobra.Command{
		Use:   "apply [index]",
		Short: "Apply a profile to a network adapter",
		Long: `Apply a stored profile to a network adapter by running the
platform's network configuration commands in order. Execution stops at
the first command that exits non-zero; commands that already succeeded
are not rolled back.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			privilege := c.GetPrivilegeManager()
			if !privilege.IsElevated() {
				if elevate {
					logger.Info("관리자 권한으로 재실행")
					return privilege.ElevateAndRelaunch()
				}
				logger.Warn("관리자 권한이 아니므로 네트워크 설정 명령이 실패할 수 있음")
			}

			index, err := pickProfile(args, c.GetProfileStore(), c.GetSelectionController(), "Select profile to apply")
			if err != nil {
				return err
			}

			profile, err := c.GetProfileStore().Get(index)
			if err != nil {
				return err
			}

			adapters, err := c.GetAdapterLister().ListAdapters(cmd.Context())
			if err != nil && adapterFlag == "" {
				return err
			}

			adapter, err := pickAdapter(adapterFlag, adapters)
			if err != nil {
				return err
			}

			output, err := c.GetApplyProfileUseCase().Execute(cmd.Context(), usecases.ApplyProfileInput{
				AdapterName: adapter,
				Profile:     profile,
			})
			if err != nil {
				if failure, ok := errors.AsCommandFailure(err); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "Command failed (exit %d): %s\n", failure.ExitCode, failure.Command)
					if failure.Stderr != "" {
						fmt.Fprintln(cmd.OutOrStdout(), failure.Stderr)
					}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Applied profile %q to %q (%s, %d commands).\n",
				profile.Name, adapter, output.OSFamily, output.Executed)
			return nil
		},
	}

	cmd.Flags().StringVar(&adapterFlag, "adapter", "", "network adapter name (interactive selection when omitted)")
	cmd.Flags().BoolVar(&elevate, "elevate", false, "relaunch with administrator privileges when not elevated")
	return cmd
}
