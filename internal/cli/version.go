package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version은 빌드 시 ldflags로 주입됩니다
var Version = "0.1.0"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "switcher %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
