package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JonaEnz/fffish/internal/config"
	"github.com/JonaEnz/fffish/internal/coord"
	"github.com/JonaEnz/fffish/internal/gamedata"
	"github.com/JonaEnz/fffish/internal/logging"
	"github.com/JonaEnz/fffish/internal/store"
	"github.com/JonaEnz/fffish/internal/ui"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	catalog, err := gamedata.Load()
	if err != nil {
		logging.Fatal("failed to load fish data", "error", err)
	}
	logging.Info("catalog loaded", "fish", catalog.Len())

	st, err := store.Open(cfg.DatabaseFile())
	if err != nil {
		logging.Fatal("failed to open journal database", "error", err)
	}
	defer st.Close()

	coordinator := coord.NewCoordinator(catalog, cfg)

	// The UI never touches the store or the coordinator directly; it
	// gets these command factories and receives results as messages.
	loadStates := func() tea.Cmd {
		return func() tea.Msg {
			states, err := st.GetStates()
			return ui.StatesLoaded{States: states, Err: err}
		}
	}
	markCaught := func(id uint32, caught bool) tea.Cmd {
		return func() tea.Msg {
			err := st.MarkCaught(id, caught)
			return ui.CaughtToggled{FishID: id, Caught: caught, Err: err}
		}
	}
	markPinned := func(id uint32, pinned bool) tea.Cmd {
		return func() tea.Msg {
			err := st.MarkPinned(id, pinned)
			return ui.PinToggled{FishID: id, Pinned: pinned, Err: err}
		}
	}
	requestRefresh := func() tea.Cmd {
		return func() tea.Msg {
			return ui.RefreshRequested{Accepted: coordinator.Refresh()}
		}
	}

	app := ui.NewApp(catalog, cfg, loadStates, markCaught, markPinned, requestRefresh)
	program := tea.NewProgram(app, tea.WithAltScreen())

	coordinator.Start(ctx, program)

	if _, err := program.Run(); err != nil {
		logging.Error("program exited with error", "error", err)
	}

	cancel()
	coordinator.Wait()
}
