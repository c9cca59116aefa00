package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/cli/configcmd"
	"github.com/thenoetrevino/keks/internal/cli/imports"
	"github.com/thenoetrevino/keks/internal/cli/quote"
	"github.com/thenoetrevino/keks/internal/cli/settings"
	"github.com/thenoetrevino/keks/internal/cli/tutorial"
	"github.com/thenoetrevino/keks/internal/config"
	"github.com/thenoetrevino/keks/internal/launcher"
	"github.com/thenoetrevino/keks/internal/logging"
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "keks",
	Short: "keks - fortune cookies for your terminal",
	Long: `keks shows random fortunes in German or English, presented by a
mascot whose name and color you can change. Run it without a subcommand to
open the interactive screen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.AddCommand(imports.ImportCmd())
	rootCmd.AddCommand(quote.QuoteCmd())
	rootCmd.AddCommand(quote.AddCmd())
	rootCmd.AddCommand(quote.LanguagesCmd())
	rootCmd.AddCommand(settings.SettingsCmd())
	rootCmd.AddCommand(settings.MascotCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
}

// initLogging opens the log file. A logging failure never stops a command.
func initLogging() {
	if logCloser != nil {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	closer, err := logging.Init(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return
	}
	logCloser = closer
}

// runTUI opens the store and runs the interactive screen until the user quits
func runTUI(cmd *cobra.Command, args []string) error {
	return launcher.Launch(cmd.Context())
}

// Execute runs the keks command tree and returns the process exit code
func Execute(ctx context.Context) int {
	return Run(ctx, rootCmd)
}

// Run executes c and maps its error to an exit code. Errors already reported
// by a command are not printed again.
func Run(ctx context.Context, c *cobra.Command) int {
	initLogging()
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
			logCloser = nil
		}
	}()

	err := c.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var statusErr *cli.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if isUsageError(err) {
		return cli.ExitUsage
	}
	return cli.ExitCodeFor(err)
}

// isUsageError recognizes the argument and flag errors cobra returns as plain errors
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"required flag", "unknown command", "unknown flag", "unknown shorthand flag", "accepts ", "invalid argument", "flag needs an argument"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
