package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/progressus/internal/config"
	"github.com/vango-dev/progressus/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a progressus.json with default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.ConfigFileName)

			if _, err := os.Stat(path); err == nil && !force {
				return errors.New("P020").
					WithDetail(path + " already exists").
					WithSuggestion("Pass --force to overwrite it")
			}

			cfg := config.Default()
			cfg.Max = 100
			cfg.Text = "Working..."
			cfg.Steps = []float64{25, 50, 75, 100}
			if err := cfg.SaveTo(path); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			success(out, "Created %s", path)
			info(out, "Run 'progressus run' to step through it")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
