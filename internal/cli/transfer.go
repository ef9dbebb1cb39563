package cli

import (
	"fmt"

	"netmotive-switcher/internal/application/usecases"
	"netmotive-switcher/internal/infrastructure/container"

	"github.com/spf13/cobra"
)

func newImportCommand(c *container.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import profiles from a CSV file, appending to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.GetImportProfilesUseCase().Execute(cmd.Context(), usecases.ImportProfilesInput{
				Path: args[0],
			})
			if err != nil {
				return err
			}

			// 가져온 뒤에는 인덱스 의미가 달라지므로 선택을 초기화
			c.GetSelectionController().Clear()

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d profiles.\n", output.Imported)
			for _, rowErr := range output.RowErrors {
				fmt.Fprintf(cmd.OutOrStdout(), "  skipped line %d: %v\n", rowErr.Line, rowErr.Err)
			}
			return nil
		},
	}
}

func newExportCommand(c *container.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <csv-file>",
		Short: "Export all stored profiles to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.GetExportProfilesUseCase().Execute(cmd.Context(), usecases.ExportProfilesInput{
				Path: args[0],
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d profiles to %s.\n", output.Exported, args[0])
			return nil
		},
	}
}

func newExampleCommand(c *container.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "example <csv-file>",
		Short: "Write an example CSV file showing the expected columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.GetExportProfilesUseCase().ExecuteExample(cmd.Context(), usecases.ExportProfilesInput{
				Path: args[0],
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example CSV to %s.\n", args[0])
			return nil
		},
	}
}
