package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/salesdesk/internal/config"
)

// RunInit writes the default config unless one exists and force is false.
func RunInit(out io.Writer, force bool) error {
	if _, err := os.Stat(config.Path()); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", config.Path())
	}

	cfg := config.Default()
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	fmt.Fprintf(out, "database: %s\n", cfg.DBPath)
	return nil
}

// InitCmd returns the `salesdesk init` command.
func InitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to ~/.salesdesk/config",
		RunE: func(c *cobra.Command, _ []string) error {
			return RunInit(c.OutOrStdout(), force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config")
	return cmd
}
