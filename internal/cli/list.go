package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/recipedeck/internal/app/render"
)

func listCmd(gf *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "Print the current user's recipes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(*gf, writerNotifier{w: cmd.ErrOrStderr()}, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.client.InitializeAndLoad(cmd.Context()); err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), s.client.Recipes(), format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
