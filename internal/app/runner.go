package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/flicks/internal/events"
	"github.com/vmunix/flicks/internal/tui"
)

// RunTUI runs the interactive UI until the user quits or ctx is canceled.
// Store changes are logged alongside the program.
func (a *App) RunTUI(ctx context.Context, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub := a.Bus.SubscribeAll(32)
	defer a.Bus.Unsubscribe(sub)

	model := tui.New(tui.Deps{
		Context:  ctx,
		Searcher: a.Searcher,
		Recent:   a.Recent,
		Bus:      a.Bus,
		Timeout:  a.Config.OMDb.Timeout + tui.DefaultTimeout,
	})

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(model, opts...)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run tui: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.logEvents(ctx, sub)
		return nil
	})

	return g.Wait()
}

// logEvents records store changes until ctx ends or sub closes.
func (a *App) logEvents(ctx context.Context, sub <-chan events.Event) {
	log := a.Logger.With("component", "events")
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-sub:
			if !ok {
				return
			}
			log.Debug("store changed",
				"type", e.EventType(),
				"entity_type", e.EntityType(),
				"entity_id", e.EntityID())
		}
	}
}
