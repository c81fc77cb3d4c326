package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vmunix/flicks/internal/render"
)

// outputWidth is the layout width for grids printed by commands.
const outputWidth = 100

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// themeFor styles output only when w is a terminal.
func themeFor(w io.Writer) render.Theme {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return render.DefaultTheme()
	}
	return render.PlainTheme()
}
