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
	"github.com/thenoetrevino/keks/internal/services/fortune"
)

// MascotCmd returns the mascot parent command
func MascotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mascot",
		Short: "Show or change the mascot",
		Long: `Show or change the mascot that presents German and English fortunes.

Colors may be hex values (#RGB or #RRGGBB), ANSI indices (0-255) or
color names such as "black", "red" or "dark green".

Fields:
  name    Mascot name shown before German and English fortunes
  color   Color of the fortune text

Examples:
  keks mascot show
  keks mascot get color
  keks mascot set --name "Gopher" --color "#00add8"`,
	}

	cmd.AddCommand(showCmd())
	cmd.AddCommand(mascotGetCmd())
	cmd.AddCommand(mascotSetCmd())

	return cmd
}

// mascotView renders the mascot row as a card
type mascotView struct {
	*models.MascotSettings
}

func (v mascotView) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.MascotSettings)
}

func (v mascotView) String() string {
	lines := []string{
		styles.TitleStyle.Render(v.Name),
		styles.RenderField("Color", styles.FortuneStyle(v.Color).Render(v.Color)),
	}
	return styles.CardStyle.Render(strings.Join(lines, "\n"))
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the mascot name and color",
		Args:  cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			m, err := args.CLI.App.FortuneService.Mascot(ctx)
			if err != nil {
				return nil, err
			}
			return mascotView{m}, nil
		})),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func mascotGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <field>",
		Short: "Print a single mascot field",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(getMascotField)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func getMascotField(ctx context.Context, args *handler.Arguments) (any, error) {
	field, err := models.ParseMascotField(args.Args[0])
	if err != nil {
		return nil, fmt.Errorf("%w (fields: %s)", err, mascotFieldNames())
	}
	value, _, err := args.CLI.App.Repo().GetMascotSetting(ctx, field)
	if err != nil {
		return nil, err
	}
	return settingValue{Field: field.String(), Value: value}, nil
}

func mascotFieldNames() string {
	names := make([]string, 0, len(models.MascotFields()))
	for _, f := range models.MascotFields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func mascotSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the mascot name and/or color",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(setMascot), requireMascotFlag),
	}
	cmd.Flags().String("name", "", "New mascot name")
	cmd.Flags().String("color", "", "New mascot color")
	cli.AddOutputFlags(cmd)
	return cmd
}

func requireMascotFlag(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("color") {
		return &cli.StatusError{Code: cli.ExitUsage, Err: errNothingToSet}
	}
	return nil
}

func setMascot(ctx context.Context, args *handler.Arguments) (any, error) {
	cmd := args.GetCmd()
	req := fortune.UpdateMascotRequest{
		Name:  cli.ChangedString(cmd, "name"),
		Color: cli.ChangedString(cmd, "color"),
	}
	// An explicitly passed flag must carry a value
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fortune.ErrEmptyName
	}
	if req.Color != nil && strings.TrimSpace(*req.Color) == "" {
		return nil, fortune.ErrInvalidColor
	}

	m, err := args.CLI.App.FortuneService.UpdateMascot(ctx, req)
	if err != nil {
		return nil, err
	}
	return mascotView{m}, nil
}
