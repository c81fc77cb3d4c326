package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/flicks/internal/app"
	"github.com/vmunix/flicks/internal/favorites"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav", "favs"},
	Short:   "Manage favorite movies",
	Args:    cobra.NoArgs,
	RunE:    runFavoritesList,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <imdbID>",
	Short: "Add a title to favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:     "remove <imdbID>",
	Aliases: []string{"rm"},
	Short:   "Remove a title from favorites",
	Args:    cobra.ExactArgs(1),
	RunE:    runFavoritesRemove,
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <imdbID>",
	Short: "Add or remove a title",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesToggle,
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every favorite",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesClear,
}

var favoritesFindCmd = &cobra.Command{
	Use:   "find <title>...",
	Short: "Find favorites by approximate title",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesFind,
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd,
		favoritesToggleCmd, favoritesClearCmd, favoritesFindCmd)

	favoritesClearCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
	favoritesFindCmd.Flags().IntP("limit", "n", 5, "Maximum matches")
}

func runFavoritesList(cmd *cobra.Command, _ []string) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	st := a.Searcher.ShowFavorites()
	out := cmd.OutOrStdout()
	if jsonOutput {
		records := st.Favorites
		if records == nil {
			records = []favorites.Record{}
		}
		return printJSON(out, records)
	}

	theme := themeFor(out)
	fmt.Fprintln(out, theme.Message(st.Message, st.IsError))
	if len(st.Favorites) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.FavoritesGrid(st.Favorites, -1, outputWidth))
	}
	return nil
}

// addFavorite stores id using its full OMDb record.
func addFavorite(cmd *cobra.Command, a *app.App, id string) (favorites.Record, error) {
	d, err := a.Searcher.Details(cmd.Context(), id)
	if err != nil {
		if d.Message != "" {
			return favorites.Record{}, fmt.Errorf("look up %s: %s", id, d.Message)
		}
		return favorites.Record{}, fmt.Errorf("look up %s: %w", id, err)
	}

	rec := favorites.FromItem(d.Movie.Item())
	if err := a.Favorites.Add(rec); err != nil {
		return rec, fmt.Errorf("add favorite: %w", err)
	}
	return rec, nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	id := strings.TrimSpace(args[0])
	if rec, ok := a.Favorites.Get(id); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is already a favorite\n", rec.Title)
		return nil
	}

	rec, err := addFavorite(cmd, a, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) to favorites\n", rec.Title, rec.Year)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	id := strings.TrimSpace(args[0])
	rec, ok := a.Favorites.Get(id)
	if !ok {
		return fmt.Errorf("%s is not a favorite", id)
	}
	if err := a.Favorites.Remove(id); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", rec.Title)
	return nil
}

func runFavoritesToggle(cmd *cobra.Command, args []string) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	id := strings.TrimSpace(args[0])
	if rec, ok := a.Favorites.Get(id); ok {
		if err := a.Favorites.Remove(id); err != nil {
			return fmt.Errorf("remove favorite: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", rec.Title)
		return nil
	}

	rec, err := addFavorite(cmd, a, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) to favorites\n", rec.Title, rec.Year)
	return nil
}

func runFavoritesClear(cmd *cobra.Command, _ []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	n := a.Favorites.Count()
	if n > 0 && !yes && !confirm(cmd, fmt.Sprintf("Remove all %d favorite(s)?", n)) {
		fmt.Fprintln(out, "Cancelled")
		return nil
	}

	st, err := a.Searcher.ClearFavorites()
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(out, st.Message)
		return nil
	}
	fmt.Fprintf(out, "Removed %d favorite(s)\n", n)
	return nil
}

type findRow struct {
	favorites.Record
	Score float64 `json:"score"`
}

func runFavoritesFind(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	matches := a.Favorites.Find(query, limit)
	out := cmd.OutOrStdout()
	if jsonOutput {
		rows := make([]findRow, len(matches))
		for i, m := range matches {
			rows[i] = findRow{Record: m.Record, Score: m.Score}
		}
		return printJSON(out, rows)
	}

	if len(matches) == 0 {
		fmt.Fprintf(out, "No favorites match %q\n", query)
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(out, "%3.0f%%  %-10s %s (%s)\n", m.Score*100, m.ID, m.Title, m.Year)
	}
	return nil
}
