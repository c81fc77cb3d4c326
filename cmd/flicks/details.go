package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/flicks/internal/omdb"
	"github.com/vmunix/flicks/internal/render"
)

var detailsCmd = &cobra.Command{
	Use:   "details <imdbID>",
	Short: "Show full details for a title",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetailsCmd,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}

type detailsOutput struct {
	*omdb.Movie
	PosterURL string `json:"poster_url"`
	Favorite  bool   `json:"favorite"`
	FromCache bool   `json:"from_cache"`
}

func runDetailsCmd(cmd *cobra.Command, args []string) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	d, err := a.Searcher.Details(cmd.Context(), args[0])
	if err != nil {
		if d.Message != "" {
			return fmt.Errorf("details %s: %s", args[0], d.Message)
		}
		return fmt.Errorf("details %s: %w", args[0], err)
	}

	fav := a.Searcher.IsFavorite(d.Movie.ID)
	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, detailsOutput{
			Movie:     d.Movie,
			PosterURL: render.PosterURL(d.Movie.Poster),
			Favorite:  fav,
			FromCache: d.FromCache,
		})
	}

	fmt.Fprintln(out, themeFor(out).Details(d.Movie, fav, outputWidth))
	return nil
}
