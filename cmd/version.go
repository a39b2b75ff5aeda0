package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/degokisss/CS5709/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", resolveVersion())
			return err
		},
	}
}

// resolveVersion prefers the release stamp and falls back to the module
// version Go embeds in `go install` builds.
func resolveVersion() string {
	if version.Version != "dev" || version.Commit != "" {
		return version.String()
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return version.String()
}
