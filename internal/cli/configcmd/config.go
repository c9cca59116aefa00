// Package configcmd implements "keks config", which locates, prints and
// writes the YAML configuration file
package configcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/config"
	"gopkg.in/yaml.v3"
)

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
		Long: `Inspect or create the configuration file.

Environment variables override the file:
  KEKS_DB          database path
  KEKS_LANGUAGE    language shown at startup
  KEKS_THEME_FILE  YAML file with a theme section
  KEKS_LOG_LEVEL   debug, info, warn or error`,
	}

	cmd.AddCommand(pathCmd())
	cmd.AddCommand(showCmd())
	cmd.AddCommand(initCmd())

	return cmd
}

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return cli.NewExitError(err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return cli.NewExitError(err)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return cli.NewExitError(err)
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := &cli.OutputFormatter{}

	path, err := config.Path()
	if err != nil {
		return cli.Fail(formatter, err)
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return cli.Fail(formatter, errConfigExists)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cli.Fail(formatter, err)
	}

	if err := config.Default().Save(); err != nil {
		return cli.Fail(formatter, err)
	}

	formatter.Done("Wrote %s", path)
	return nil
}
