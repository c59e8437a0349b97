package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/recipedeck/internal/buildinfo"
	"github.com/aalvaropc/recipedeck/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	apiURL string
	debug  bool
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	cmd := &cobra.Command{
		Use:          "recipedeck",
		Short:        "Browse and add recipes from the terminal",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notices := tui.NewNotices()
			s, err := loadSession(gf, notices, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			return tui.Run(tui.Deps{
				Client:  s.client,
				Notices: notices,
				APIURL:  s.cfg.API.BaseURL,
				Logger:  s.log,
				Debug:   s.cfg.Log.Debug,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&gf.apiURL, "api-url", "", "Recipe backend base URL (overrides recipedeck.yaml and RECIPEDECK_API_URL)")
	cmd.PersistentFlags().BoolVar(&gf.debug, "debug", false, "enable verbose logging to .recipedeck/logs/recipedeck.log")

	cmd.AddCommand(
		listCmd(&gf),
		addCmd(&gf),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
