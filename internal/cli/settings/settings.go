// Package settings implements the commands that read and change the stored
// display name and mascot
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/cli/handler"
	"github.com/thenoetrevino/keks/internal/cli/styles"
	"github.com/thenoetrevino/keks/internal/models"
)

// SettingsCmd returns the settings parent command
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and change application settings",
		Long: `Read and change application settings.

Fields:
  display-name   Title shown in the window title and header

Examples:
  keks settings get
  keks settings get display-name
  keks settings set display-name "Glueckskekse"`,
	}

	cmd.AddCommand(getCmd())
	cmd.AddCommand(setCmd())

	return cmd
}

// settingValue is a single field and its value
type settingValue struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (v settingValue) String() string {
	return v.Value
}

// settingsView renders the whole settings row
type settingsView struct {
	*models.Settings
}

func (v settingsView) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Settings)
}

func (v settingsView) String() string {
	return styles.RenderField(models.SettingDisplayName.String(), v.DisplayName)
}

func getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [field]",
		Short: "Print one setting, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(getSetting)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func getSetting(ctx context.Context, args *handler.Arguments) (any, error) {
	svc := args.CLI.App.FortuneService
	if len(args.Args) == 0 {
		s, err := svc.Settings(ctx)
		if err != nil {
			return nil, err
		}
		return settingsView{s}, nil
	}

	field, err := models.ParseSettingField(args.Args[0])
	if err != nil {
		return nil, fmt.Errorf("%w (fields: %s)", err, settingFieldNames())
	}
	value, _, err := args.CLI.App.Repo().GetSetting(ctx, field)
	if err != nil {
		return nil, err
	}
	return settingValue{Field: field.String(), Value: value}, nil
}

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(setSetting)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func setSetting(ctx context.Context, args *handler.Arguments) (any, error) {
	field, err := models.ParseSettingField(args.Args[0])
	if err != nil {
		return nil, err
	}
	value := args.Args[1]

	switch field {
	case models.SettingDisplayName:
		err = args.CLI.App.FortuneService.RenameApp(ctx, value)
	default:
		err = fmt.Errorf("%w: %s", models.ErrUnknownField, field)
	}
	if err != nil {
		return nil, err
	}

	return settingValue{Field: field.String(), Value: value}, nil
}

func settingFieldNames() string {
	names := make([]string, 0, len(models.SettingFields()))
	for _, f := range models.SettingFields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
