package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var (
		flags widgetFlags
		set   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a widget as HTML",
		Long: `Initialize a widget and print the resulting HTML.

Without --input a container matching --selector is created in an empty
document and only the container is printed.

Examples:
  progressus render --selector .abc --max 2 --value 1 --text "Installing..."
  progressus render --input page.html --selector "#upload" --set 3
  progressus render --config progressus.json --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}

			s, err := newSession(cfg)
			if err != nil {
				return err
			}
			if set != "" {
				if err := s.widget.SetValue(set); err != nil {
					return err
				}
			}

			html, err := s.html(cfg.Pretty)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&set, "set", "", "Apply one SetValue delta before rendering")

	return cmd
}
