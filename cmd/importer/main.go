// Command keks-import bulk-loads a %-delimited quote file into the keks
// database. It behaves like "keks import".
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/thenoetrevino/keks/cmd"
	"github.com/thenoetrevino/keks/internal/cli/imports"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	importCmd := imports.ImportCmd()
	importCmd.Use = "keks-import"
	importCmd.SilenceUsage = true
	importCmd.SilenceErrors = true

	code := cmd.Run(ctx, importCmd)
	stop()
	os.Exit(code)
}
