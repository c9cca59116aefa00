package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/tui"
)

// Launch opens the store and runs the TUI until the user quits or the
// process receives SIGINT or SIGTERM. The store is closed on return.
func Launch(parent context.Context) error {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	// database cleanup
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	model := tui.InitialModel(ctx, cliInstance.App.FortuneService, cliInstance.Config)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// The program observes ctx as well; wait for it to restore the terminal
		<-errChan
	}

	return nil
}
