// Package main is the entry point for the artex CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/artex/internal/app"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "artex: %v\n", err)
		return 1
	}
	return 0
}

// rootFlags are shared by every command.
type rootFlags struct {
	configPath string
	prefsPath  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "artex [query]",
		Short: "artex - browse the Met Museum collection from the terminal",
		Long: `artex searches the Metropolitan Museum of Art open-access collection and
shows the matching artworks as a card grid.

Type in the search field to query; results refresh as you type. Mark
favourites, filter to them, and sort by artist or title. Any arguments are
used as the first search.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:   flags.configPath,
				PrefsPath:    flags.prefsPath,
				InitialQuery: strings.Join(args, " "),
			})
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("artex version {{.Version}}\n")

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "override config path (optional)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "override prefs path (optional)")

	root.AddCommand(newSearchCmd(flags))
	return root
}
