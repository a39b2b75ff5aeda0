package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degokisss/CS5709/internal/adapters/render/page"
	"github.com/degokisss/CS5709/internal/domain"
)

func newExportCmd(app *app) *cobra.Command {
	var (
		themeFlag string
		width     int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the page to stdout",
		Long:  "Render the whole page as styled text, for pagers, scripts, or terminals where the interactive view is unavailable.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme := domain.Theme(themeFlag)
			switch {
			case themeFlag == "":
				theme = app.themes.Resolve(cmd.Context())
			case !theme.Valid():
				return fmt.Errorf("unknown theme %q, expected %q or %q", themeFlag, domain.ThemeDark, domain.ThemeLight)
			}

			output, err := page.Render(app.site, app.sections, page.Options{Theme: theme, Width: width})
			if err != nil {
				return fmt.Errorf("render page: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&themeFlag, "theme", "", "color theme, dark or light (default: saved preference)")
	cmd.Flags().IntVar(&width, "width", page.DefaultWidth, "wrap width in columns")

	return cmd
}
