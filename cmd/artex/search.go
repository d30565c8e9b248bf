package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/artex/internal/app"
	"github.com/five82/artex/internal/config"
	"github.com/five82/artex/internal/gallery"
	"github.com/five82/artex/internal/report"
)

type searchFlags struct {
	filter    string
	sort      string
	format    string
	favorites []int64
}

func newSearchCmd(root *rootFlags) *cobra.Command {
	flags := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search once and print the results",
		Long: `Run a single search and print the artworks without starting the UI.

Flags:
  --filter     all or favorites
  --sort       none, artist or title
  --favorite   object id to mark as favourite (can be repeated)
  --format     table, json or yaml

Results keep the collection's search order unless --sort is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), root, flags)
		},
	}
	cmd.Flags().StringVar(&flags.filter, "filter", "all", "all or favorites")
	cmd.Flags().StringVar(&flags.sort, "sort", "none", "none, artist or title")
	cmd.Flags().StringVarP(&flags.format, "format", "o", "table", "output format: table, json or yaml")
	cmd.Flags().Int64SliceVar(&flags.favorites, "favorite", nil, "mark object id as favourite (can be repeated)")
	return cmd
}

func runSearch(cmd *cobra.Command, query string, root *rootFlags, flags *searchFlags) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fetcher, err := app.NewFetcher(cfg)
	if err != nil {
		return err
	}

	// Fetch logging is meant for the UI log file.
	log.SetOutput(io.Discard)

	items, err := fetcher.Fetch(cmd.Context(), query)
	if err != nil {
		var fe *gallery.FetchError
		if errors.As(err, &fe) && fe.Err != nil {
			return fmt.Errorf("%w: %v", err, fe.Err)
		}
		return err
	}

	c := gallery.NewController(false)
	c.SetFilter(gallery.ParseFilter(flags.filter))
	c.SetSort(gallery.ParseSort(flags.sort))
	c.Observe(items)
	marked := make(map[int64]bool, len(flags.favorites))
	for _, id := range flags.favorites {
		if !marked[id] {
			marked[id] = true
			c.ToggleFavorite(id)
		}
	}

	out := cmd.OutOrStdout()
	return report.Write(out, format, c.Visible(items), report.ForWriter(out, c.Favorites()))
}
