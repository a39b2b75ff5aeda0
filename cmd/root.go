package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/degokisss/CS5709/internal/adapters/tui"
)

// ExecuteContext runs the CLI under ctx so an interrupt reaches every
// in-flight command.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "folio: Deniz Gokay's portfolio, in your terminal",
		Long:          "folio renders a personal portfolio as a scrollable terminal page. Run it bare for the interactive view, or use export for plain output and contact to send a message without opening the interface.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runInteractive(cmd, app)
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.log.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newExportCmd(app),
		newContactCmd(app),
		newRelayKeyCmd(app),
	)

	return rootCmd
}

func runInteractive(cmd *cobra.Command, app *app) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("interactive mode needs a terminal; use 'folio export' for plain output")
	}

	model, err := tui.NewModel(tui.Config{
		Site:     app.site,
		Sections: app.sections,
		Theme:    app.themes.Resolve(cmd.Context()),
		Nav:      app.navCfg,
	}, app.themes, app.contact, app.log.Named("tui"))
	if err != nil {
		return fmt.Errorf("build interface: %w", err)
	}

	return tui.Run(model)
}
