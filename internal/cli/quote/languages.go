package quote

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/cli/handler"
	"github.com/thenoetrevino/keks/internal/cli/styles"
	"github.com/thenoetrevino/keks/internal/models"
)

// LanguagesCmd returns the languages command
func LanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List stored languages and their quote counts",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(listLanguages)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// languageList renders as an aligned table in human-readable mode
type languageList []models.LanguageCount

func (l languageList) String() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No quotes stored yet. Try: keks import -f FILE")
	}

	width := 0
	for _, lc := range l {
		width = max(width, len(lc.Language))
	}

	var b strings.Builder
	for i, lc := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		name := fmt.Sprintf("%-*s", width, lc.Language)
		b.WriteString(styles.LabelStyle.Render(name) + "  " + styles.ValueStyle.Render(fmt.Sprint(lc.Count)))
	}
	return b.String()
}

func listLanguages(ctx context.Context, args *handler.Arguments) (any, error) {
	langs, err := args.CLI.App.FortuneService.Languages(ctx)
	if err != nil {
		return nil, err
	}
	if langs == nil {
		langs = []models.LanguageCount{}
	}
	return languageList(langs), nil
}
