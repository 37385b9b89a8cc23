package ui

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/JonaEnz/fffish/internal/config"
	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
	"github.com/JonaEnz/fffish/internal/store"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
// IMPORTANT: App does NOT hold *store.Store or the coordinator. It
// receives windows and journal states via messages and persists
// through the injected command functions.
type App struct {
	catalog *fish.Catalog

	loadStates     func() tea.Cmd
	markCaught     func(id uint32, caught bool) tea.Cmd
	markPinned     func(id uint32, pinned bool) tea.Cmd
	requestRefresh func() tea.Cmd

	windows    map[uint32][]eorzea.Span
	states     map[uint32]store.State
	rows       []Row
	selectedID uint32

	now        time.Time
	computedAt time.Time

	cursor        int
	showCaught    bool
	showOngoing   bool
	hiddenPatches []float64

	filtering bool
	filter    textinput.Model
	spinner   spinner.Model

	// Detail pane slide, spring-animated between 0 (closed) and 1.
	detailSpring harmonica.Spring
	detailPos    float64
	detailVel    float64
	detailTarget float64

	err     error
	width   int
	height  int
	ready   bool
	loading bool
}

// NewApp creates the root model over an immutable catalog.
// loadStates: returns a Cmd that fetches journal states from the store
// markCaught/markPinned: return Cmds that persist one flag
// requestRefresh: returns a Cmd that asks the coordinator to recompute
func NewApp(catalog *fish.Catalog, cfg *config.Config, loadStates func() tea.Cmd, markCaught func(id uint32, caught bool) tea.Cmd, markPinned func(id uint32, pinned bool) tea.Cmd, requestRefresh func() tea.Cmd) App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ti := textinput.New()
	ti.Placeholder = "fish name"
	ti.Prompt = "/"
	ti.CharLimit = 40
	ti.Width = 28

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	a := App{
		catalog:        catalog,
		loadStates:     loadStates,
		markCaught:     markCaught,
		markPinned:     markPinned,
		requestRefresh: requestRefresh,
		states:         make(map[uint32]store.State),
		now:            time.Now(),
		showCaught:     cfg.UI.ShowCaught,
		showOngoing:    cfg.Prediction.IncludeOngoing,
		hiddenPatches:  cfg.UI.HiddenPatches,
		filter:         ti,
		spinner:        sp,
		detailSpring:   harmonica.NewSpring(harmonica.FPS(30), 6.0, 0.8),
		loading:        true,
	}
	a.rebuildRows()
	return a
}

// clockTick schedules the once-per-second countdown redraw.
func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTick{At: t}
	})
}

// animTickMsg drives the detail pane spring between frames.
type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Init starts the clock, the spinner and the journal load. Window
// predictions arrive on their own from the coordinator.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTick(), a.spinner.Tick}
	if a.loadStates != nil {
		cmds = append(cmds, a.loadStates())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any
// commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		if a.loading {
			return a, cmd
		}
		return a, nil

	case ClockTick:
		a.now = msg.At
		a.rebuildRows()
		return a, clockTick()

	case animTickMsg:
		a.detailPos, a.detailVel = a.detailSpring.Update(a.detailPos, a.detailVel, a.detailTarget)
		if math.Abs(a.detailPos-a.detailTarget) < 0.005 && math.Abs(a.detailVel) < 0.005 {
			a.detailPos = a.detailTarget
			a.detailVel = 0
			return a, nil
		}
		return a, animTick()

	case WindowsComputed:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
		} else {
			a.windows = msg.Windows
			a.computedAt = msg.At
			a.err = nil
			a.rebuildRows()
		}
		return a, nil

	case StatesLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		} else {
			a.states = msg.States
			if a.states == nil {
				a.states = make(map[uint32]store.State)
			}
			a.rebuildRows()
		}
		return a, nil

	case CaughtToggled:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		st := a.states[msg.FishID]
		st.FishID = msg.FishID
		st.Caught = msg.Caught
		a.states[msg.FishID] = st
		a.rebuildRows()
		return a, nil

	case PinToggled:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		st := a.states[msg.FishID]
		st.FishID = msg.FishID
		st.Pinned = msg.Pinned
		a.states[msg.FishID] = st
		a.rebuildRows()
		return a, nil

	case RefreshRequested:
		// Dropped by the rate limit; the coordinator will get there on
		// its own schedule.
		if !msg.Accepted {
			a.loading = false
		}
		return a, nil
	}

	return a, nil
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.filtering {
		switch msg.String() {
		case "esc":
			a.filtering = false
			a.filter.Reset()
			a.filter.Blur()
			a.rebuildRows()
			return a, nil
		case "enter":
			a.filtering = false
			a.filter.Blur()
			return a, nil
		case "up":
			if a.cursor > 0 {
				a.cursor--
			}
			return a, nil
		case "down":
			if a.cursor < len(a.rows)-1 {
				a.cursor++
			}
			return a, nil
		case "ctrl+c":
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.filter, cmd = a.filter.Update(msg)
		// Typing reorders by match rank, so the cursor restarts at the
		// best match instead of chasing the old selection.
		a.selectedID = 0
		a.cursor = -1
		a.rebuildRows()
		return a, cmd
	}

	// Clear any existing error on key press.
	if a.err != nil {
		a.err = nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "j", "down":
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}
		return a, nil

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "g", "home":
		a.cursor = 0
		return a, nil

	case "G", "end":
		if len(a.rows) > 0 {
			a.cursor = len(a.rows) - 1
		}
		return a, nil

	case "/":
		a.filtering = true
		return a, a.filter.Focus()

	case "esc":
		if a.filter.Value() != "" {
			a.filter.Reset()
			a.rebuildRows()
			return a, nil
		}
		if a.detailTarget > 0.5 {
			a.detailTarget = 0
			return a, animTick()
		}
		return a, nil

	case "enter":
		if a.detailTarget > 0.5 {
			a.detailTarget = 0
		} else {
			a.detailTarget = 1
		}
		return a, animTick()

	case "c":
		if r, ok := a.selectedRow(); ok && a.markCaught != nil {
			return a, a.markCaught(r.Fish.ID, !r.State.Caught)
		}
		return a, nil

	case "p":
		if r, ok := a.selectedRow(); ok && a.markPinned != nil {
			return a, a.markPinned(r.Fish.ID, !r.State.Pinned)
		}
		return a, nil

	case "o":
		a.showOngoing = !a.showOngoing
		a.rebuildRows()
		return a, nil

	case "C":
		a.showCaught = !a.showCaught
		a.rebuildRows()
		return a, nil

	case "r":
		if a.requestRefresh != nil {
			a.loading = true
			return a, tea.Batch(a.requestRefresh(), a.spinner.Tick)
		}
		return a, nil
	}

	return a, nil
}

// rebuildRows derives the visible rows from the catalog, the latest
// windows and journal states, and the active filter. The cursor
// follows the previously selected fish when it survives the rebuild.
func (a *App) rebuildRows() {
	if a.catalog == nil {
		a.rows = nil
		return
	}

	if a.cursor >= 0 && a.cursor < len(a.rows) {
		a.selectedID = a.rows[a.cursor].Fish.ID
	}

	query := a.filter.Value()
	filterActive := query != ""

	rows := make([]Row, 0, a.catalog.Len())
	for _, f := range a.catalog.Fish() {
		st := a.states[f.ID]
		if st.Caught && !a.showCaught {
			continue
		}
		if a.patchHidden(f.Patch) {
			continue
		}
		rank := 0
		if filterActive {
			rank = fuzzyRank(f.Name, query)
			if rank < 0 {
				continue
			}
		}
		r := Row{Fish: f, State: st, Rank: rank}
		if spans, ok := a.windows[f.ID]; ok {
			if s, open, ok := pickWindow(spans, a.now, a.showOngoing); ok {
				r.Span = s
				r.HasWindow = true
				r.Open = open
				if open {
					r.Until = s.End().RealTime().Sub(a.now)
				} else {
					r.Until = s.Start().RealTime().Sub(a.now)
				}
			}
		}
		rows = append(rows, r)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		x, y := rows[i], rows[j]
		if filterActive && x.Rank != y.Rank {
			return x.Rank < y.Rank
		}
		if x.State.Pinned != y.State.Pinned {
			return x.State.Pinned
		}
		if x.HasWindow != y.HasWindow {
			return x.HasWindow
		}
		if x.Open != y.Open {
			return x.Open
		}
		if x.HasWindow && x.Until != y.Until {
			return x.Until < y.Until
		}
		return x.Fish.Name < y.Fish.Name
	})

	a.rows = rows

	// Keep the cursor on the same fish across rebuilds.
	if a.selectedID != 0 {
		for i, r := range rows {
			if r.Fish.ID == a.selectedID {
				a.cursor = i
				return
			}
		}
	}
	if a.cursor >= len(rows) {
		a.cursor = len(rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) patchHidden(patch float64) bool {
	for _, p := range a.hiddenPatches {
		if p == patch {
			return true
		}
	}
	return false
}

func (a App) selectedRow() (Row, bool) {
	if a.cursor >= 0 && a.cursor < len(a.rows) {
		return a.rows[a.cursor], true
	}
	return Row{}, false
}

func (a App) catalogLen() int {
	if a.catalog == nil {
		return 0
	}
	return a.catalog.Len()
}

// View renders the UI: the banded list, the sliding detail pane, and
// the filter, error and status bars.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	contentHeight := a.height - 1
	filterActive := a.filtering || a.filter.Value() != ""
	if filterActive {
		contentHeight--
	}
	if a.err != nil {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	listWidth := a.width
	detail := ""
	paneW := int(math.Round(float64(DetailPaneWidth) * a.detailPos))
	if paneW >= 10 && a.width-paneW >= 40 {
		if r, ok := a.selectedRow(); ok {
			listWidth = a.width - paneW
			detail = lipgloss.NewStyle().MaxWidth(paneW).Render(
				RenderDetail(a.catalog, r, a.windows[r.Fish.ID], a.now, paneW, contentHeight))
		}
	}

	var body string
	if a.loading && len(a.rows) == 0 {
		body = lipgloss.Place(listWidth, contentHeight, lipgloss.Center, lipgloss.Center,
			a.spinner.View()+" computing catch windows...")
	} else {
		body = strings.TrimRight(RenderList(a.rows, a.cursor, listWidth, contentHeight, !filterActive), "\n")
	}
	if detail != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, detail)
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if a.err != nil {
		b.WriteString(ErrorStyle.Width(a.width).Render("Error: " + a.err.Error() + " (press any key to dismiss)"))
		b.WriteString("\n")
	}
	if filterActive {
		b.WriteString(RenderFilterBar(a.filter.View(), len(a.rows), a.catalogLen(), a.width))
		b.WriteString("\n")
	}
	b.WriteString(RenderStatusBar(a.cursor, len(a.rows), a.catalogLen(), a.width, a.loading, a.computedAt))
	return b.String()
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// Rows returns the derived display rows (for testing).
func (a App) Rows() []Row {
	return a.rows
}
