package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/recipedeck/internal/infra/config"
)

func initCmd() *cobra.Command {
	var path string
	var apiURL string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter recipedeck.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = wd
			}
			root, _ = filepath.Abs(root)

			written, err := config.Init(root, apiURL, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n", written)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Directory to write recipedeck.yaml in (default: current directory)")
	c.Flags().StringVar(&apiURL, "base-url", "http://localhost:5000", "Backend base URL to put in the config")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing recipedeck.yaml")
	return c
}
