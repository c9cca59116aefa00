package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/keks/internal/models"
)

// ResolveLanguage returns flagValue when set, otherwise the configured default
// language and finally German
func ResolveLanguage(c *CLI, flagValue string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	if c != nil && c.Config != nil && c.Config.DefaultLanguage != "" {
		return c.Config.DefaultLanguage
	}
	return models.LanguageGerman
}

// ChangedString returns a pointer to the flag value when the user passed the
// flag, nil otherwise
func ChangedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &value
}

// Formatter builds an OutputFormatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers the --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().BoolP("quiet", "q", false, "Minimal output")
}
