package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/flicks/internal/omdb"
	"github.com/vmunix/flicks/internal/render"
	"github.com/vmunix/flicks/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search OMDb by title",
	Long: `Search OMDb by title. Results come from the local cache when fresh.

Examples:
  flicks search alien
  flicks search "the matrix" --page 2
  flicks search batman --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntP("page", "p", 1, "Result page")
}

// searchOutput is the JSON shape of a result page.
type searchOutput struct {
	Query        string      `json:"query"`
	Page         int         `json:"page"`
	TotalResults int         `json:"total_results"`
	TotalPages   int         `json:"total_pages"`
	FromCache    bool        `json:"from_cache"`
	Results      []resultRow `json:"results"`
}

type resultRow struct {
	omdb.Item
	PosterURL string `json:"poster_url"`
	Favorite  bool   `json:"favorite"`
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	page, _ := cmd.Flags().GetInt("page")

	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	st, err := a.Searcher.Search(cmd.Context(), query, page)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		rows := make([]resultRow, len(st.Items))
		for i, it := range st.Items {
			rows[i] = resultRow{Item: it, PosterURL: render.PosterURL(it.Poster), Favorite: a.Searcher.IsFavorite(it.ID)}
		}
		return printJSON(out, searchOutput{
			Query:        st.Query,
			Page:         st.Page,
			TotalResults: st.TotalResults,
			TotalPages:   st.TotalPages,
			FromCache:    st.FromCache,
			Results:      rows,
		})
	}

	theme := themeFor(out)
	fmt.Fprintln(out, theme.Message(st.Message, st.IsError))
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Grid(st.Items, a.Searcher.IsFavorite, -1, outputWidth))
	if bar := theme.Pagination(search.Paginate(st.Page, st.TotalPages), -1); bar != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, bar)
	}
	return nil
}
