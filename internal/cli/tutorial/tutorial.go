package tutorial

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print a short guide to keks",
		Long: `Print a short markdown guide covering the quote file format, the
interactive key bindings and the most common commands. The guide is rendered
when stdout is a terminal and printed as raw markdown otherwise.`,
		Run: func(cmd *cobra.Command, args []string) {
			raw, _ := cmd.Flags().GetBool("raw")
			outputTutorial(raw || !isatty.IsTerminal(os.Stdout.Fd()))
		},
	}
	cmd.Flags().Bool("raw", false, "Print the markdown source")
	return cmd
}

func outputTutorial(raw bool) {
	if raw {
		fmt.Print(tutorialContent)
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err == nil {
		var out string
		if out, err = renderer.Render(tutorialContent); err == nil {
			fmt.Print(out)
			return
		}
	}

	slog.Warn("failed to render tutorial", "error", err)
	fmt.Print(tutorialContent)
}
