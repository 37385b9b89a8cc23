package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
	"github.com/JonaEnz/fffish/internal/store"
	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Row is one display line of the fish list: a fish joined with its
// next shown window and its journal state. Rows are derived state,
// rebuilt whenever windows, states or the filter change.
type Row struct {
	Fish      *fish.Fish
	Span      eorzea.Span
	HasWindow bool
	Open      bool
	// Until is real time to the window start, or to its end when the
	// window is already open.
	Until time.Duration
	State store.State
	Rank  int
}

// pickWindow chooses which of a fish's predicted windows to surface:
// the first one still open or yet to come. With showOngoing off, a
// window already in progress is skipped in favor of the next future
// one.
func pickWindow(spans []eorzea.Span, now time.Time, showOngoing bool) (eorzea.Span, bool, bool) {
	for _, s := range spans {
		end := s.End().RealTime()
		if !end.After(now) {
			continue
		}
		open := !s.Start().RealTime().After(now)
		if open && !showOngoing {
			continue
		}
		return s, open, true
	}
	return eorzea.Span{}, false, false
}

// bandFor groups a row by how soon its window arrives. Pinned fish
// form their own band at the top; rows sort in band order, so each
// label appears at most once.
func bandFor(r Row) string {
	switch {
	case r.State.Pinned:
		return "Pinned"
	case !r.HasWindow:
		return "No Window"
	case r.Open:
		return "Open Now"
	case r.Until < time.Hour:
		return "Next Hour"
	case r.Until < 24*time.Hour:
		return "Today"
	case r.Until < 7*24*time.Hour:
		return "This Week"
	default:
		return "Later"
	}
}

// countdownFor renders the right-hand countdown column.
func countdownFor(r Row) string {
	if !r.HasWindow {
		return "--"
	}
	if r.Open {
		return "open " + durShort(r.Until)
	}
	return "in " + durShort(r.Until)
}

// durShort formats a real duration compactly for the countdown column.
func durShort(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "<1m"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		days := int(d.Hours()) / 24
		return fmt.Sprintf("%dd%dh", days, int(d.Hours())%24)
	}
}

// fuzzyRank scores how well a fish name matches the filter query.
// 0 is a substring hit; higher ranks are edit-distance matches on a
// single word of the name; -1 is no match.
func fuzzyRank(name, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	n := strings.ToLower(name)
	if strings.Contains(n, q) {
		return 0
	}
	allowed := len(q) / 3
	if allowed < 1 {
		allowed = 1
	}
	best := -1
	for _, word := range strings.Fields(n) {
		d := levenshtein.ComputeDistance(q, word)
		if d <= allowed && (best == -1 || d < best) {
			best = d
		}
	}
	if best == -1 {
		return -1
	}
	return best
}

// RenderList renders the fish list with proximity bands. When
// showBands is false (during filtering) band headers are suppressed.
func RenderList(rows []Row, cursor int, width, height int, showBands bool) string {
	if len(rows) == 0 {
		return HelpStyle.Render("No fish to display. Press 'r' to refresh.") + "\n"
	}

	var b strings.Builder
	currentBand := ""
	renderedLines := 0

	availableHeight := height
	if availableHeight < 1 {
		availableHeight = 1
	}

	// Scroll offset keeps the cursor visible, accounting for band
	// headers that consume viewport space.
	scrollOffset := calcScrollOffset(rows, cursor, availableHeight, showBands)

	for i, r := range rows {
		if renderedLines >= availableHeight {
			break
		}

		// Track band state for all rows (including skipped) so headers
		// render correctly when we reach the visible region.
		if showBands {
			band := bandFor(r)
			if band != currentBand {
				currentBand = band
				if i >= scrollOffset && renderedLines < availableHeight {
					b.WriteString(BandHeader.Render(band))
					b.WriteString("\n")
					renderedLines++
				}
			}
		}

		if i < scrollOffset {
			continue
		}

		if renderedLines >= availableHeight {
			break
		}

		b.WriteString(renderRow(r, i == cursor, width))
		b.WriteString("\n")
		renderedLines++
	}

	return b.String()
}

// calcScrollOffset finds the smallest row index such that all visible
// lines from that index through the cursor (including band headers)
// fit within availableHeight. Without bands this is a simple
// subtraction; with bands we iterate to account for header lines.
func calcScrollOffset(rows []Row, cursor, availableHeight int, showBands bool) int {
	if len(rows) == 0 || cursor < 0 {
		return 0
	}
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}

	if !showBands {
		if cursor >= availableHeight {
			return cursor - availableHeight + 1
		}
		return 0
	}

	// Start with an optimistic offset (ignoring headers), then adjust
	// upward until the cursor fits. Converges in at most one step per
	// band.
	offset := 0
	if cursor >= availableHeight {
		offset = cursor - availableHeight + 1
	}

	for offset <= cursor {
		lines := visibleLineCount(rows, offset, cursor)
		if lines <= availableHeight {
			return offset
		}
		offset++
	}

	return cursor
}

// visibleLineCount counts how many rendered lines rows[from..to]
// would produce, including any band headers within that range.
func visibleLineCount(rows []Row, from, to int) int {
	lines := 0
	currentBand := ""
	// Initialize band from the predecessor so we know whether
	// rows[from] starts a new band.
	if from > 0 {
		currentBand = bandFor(rows[from-1])
	}
	for i := from; i <= to && i < len(rows); i++ {
		band := bandFor(rows[i])
		if band != currentBand {
			currentBand = band
			lines++
		}
		lines++
	}
	return lines
}

const (
	zoneColWidth      = 16
	countdownColWidth = 12
)

// renderRow renders a single fish line: marker, zone column, name,
// dot leader, right-aligned countdown.
func renderRow(r Row, selected bool, width int) string {
	marker := "  "
	switch {
	case r.State.Pinned:
		marker = PinnedMarker.Render("★") + " "
	case r.State.Caught:
		marker = CaughtMarker.Render("✓") + " "
	}

	zone := ""
	if r.Fish.Spot != nil && r.Fish.Spot.Region != nil {
		zone = r.Fish.Spot.Region.Name
	}
	zone = runewidth.Truncate(zone, zoneColWidth-1, "…")
	zonePad := zoneColWidth - runewidth.StringWidth(zone)
	if zonePad < 0 {
		zonePad = 0
	}
	zoneStyle := lipgloss.NewStyle().Foreground(zonePaletteColor(zone))
	zoneField := zoneStyle.Render(zone) + MetaItem.Render(fadeDots(zonePad)) + " "

	maxName := width - 2 - zoneColWidth - 1 - countdownColWidth - 3
	if maxName < 20 {
		maxName = 20
	}
	name := runewidth.Truncate(r.Fish.Name, maxName, "…")

	var nameStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = SelectedItem
		if r.State.Caught {
			// Dim the text for caught fish even when selected.
			nameStyle = nameStyle.Foreground(lipgloss.Color("250")).Bold(false)
		}
	case r.State.Caught:
		nameStyle = CaughtItem
	default:
		nameStyle = NormalItem
	}

	countdown := countdownFor(r)
	cdPad := countdownColWidth - runewidth.StringWidth(countdown)
	if cdPad < 0 {
		cdPad = 0
	}
	cdText := strings.Repeat(" ", cdPad) + countdown
	cdStyle := MetaItem
	if r.Open {
		cdStyle = OpenCountdown
	}

	left := marker + zoneField + nameStyle.Render(name)
	leftWidth := lipgloss.Width(left)
	dotCount := width - leftWidth - countdownColWidth - 1
	if dotCount < 0 {
		dotCount = 0
	}
	return left + MetaItem.Render(fadeDots(dotCount)) + " " + cdStyle.Render(cdText)
}

// fadeDots builds a dot leader with a one-space gap at the end.
func fadeDots(count int) string {
	if count <= 0 {
		return ""
	}
	dotCount := count - 1
	if dotCount < 0 {
		dotCount = 0
	}

	var b strings.Builder
	b.Grow(count)
	for i := 0; i < dotCount; i++ {
		b.WriteString(".")
	}
	for i := 0; i < count-dotCount; i++ {
		b.WriteString(" ")
	}
	return b.String()
}

// zonePaletteColor picks a stable color for a zone name.
func zonePaletteColor(name string) lipgloss.Color {
	palette := []lipgloss.Color{
		lipgloss.Color("62"),
		lipgloss.Color("69"),
		lipgloss.Color("39"),
		lipgloss.Color("141"),
		lipgloss.Color("208"),
		lipgloss.Color("75"),
		lipgloss.Color("99"),
		lipgloss.Color("212"),
	}
	sum := 0
	for i := 0; i < len(name); i++ {
		sum += int(name[i])
	}
	return palette[sum%len(palette)]
}

// RenderStatusBar renders the bottom status bar with position info
// and key hints.
func RenderStatusBar(cursor, shown, total int, width int, loading bool, updated time.Time) string {
	var position string
	if loading {
		position = " computing... "
	} else {
		position = fmt.Sprintf(" %d/%d ", cursor+1, shown)
		if shown != total {
			position += StatusBarText.Render(fmt.Sprintf("of %d ", total))
		}
		if !updated.IsZero() {
			position += StatusBarText.Render("updated " + updated.Format("15:04:05") + " ")
		}
	}

	keys := []string{
		StatusBarKey.Render("j/k") + StatusBarText.Render(":nav"),
		StatusBarKey.Render("/") + StatusBarText.Render(":find"),
		StatusBarKey.Render("Enter") + StatusBarText.Render(":detail"),
		StatusBarKey.Render("c") + StatusBarText.Render(":caught"),
		StatusBarKey.Render("p") + StatusBarText.Render(":pin"),
		StatusBarKey.Render("o") + StatusBarText.Render(":ongoing"),
		StatusBarKey.Render("r") + StatusBarText.Render(":refresh"),
		StatusBarKey.Render("q") + StatusBarText.Render(":quit"),
	}
	keyHints := strings.Join(keys, " ")

	leftWidth := lipgloss.Width(position)
	rightWidth := lipgloss.Width(keyHints)
	padding := width - leftWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	bar := position + strings.Repeat(" ", padding) + keyHints
	return StatusBar.Width(width).Render(bar)
}

// RenderFilterBar renders the filter input line with the filtered
// count. input is the textinput's current view (prompt included).
func RenderFilterBar(input string, shown, total int, width int) string {
	count := FilterBarCount.Render(fmt.Sprintf(" %d/%d", shown, total))

	content := input + count
	contentWidth := lipgloss.Width(content)
	padding := width - contentWidth - 2
	if padding < 0 {
		padding = 0
	}

	return FilterBar.Width(width).Render(content + strings.Repeat(" ", padding))
}
