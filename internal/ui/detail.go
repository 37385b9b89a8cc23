package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
	"github.com/JonaEnz/fffish/internal/weather"
	"github.com/mattn/go-runewidth"
)

// DetailPaneWidth is the column budget of the detail pane when fully
// open.
const DetailPaneWidth = 44

// RenderDetail renders the detail pane for one fish: location, catch
// requirements and the predicted windows in real local time.
func RenderDetail(c *fish.Catalog, r Row, spans []eorzea.Span, now time.Time, width, height int) string {
	f := r.Fish
	inner := width - 2
	if inner < 12 {
		inner = 12
	}

	var lines []string
	lines = append(lines, DetailTitle.Render(runewidth.Truncate(f.Name, inner, "…")))
	lines = append(lines, "")

	add := func(label, value string) {
		if value == "" {
			return
		}
		value = runewidth.Truncate(value, inner-10, "…")
		lines = append(lines, DetailLabel.Render(fmt.Sprintf("%-9s", label))+DetailValue.Render(value))
	}

	if f.Spot != nil {
		if f.Spot.Region != nil {
			add("Zone", f.Spot.Region.Name)
		}
		spot := f.Spot.Name
		if f.Spot.MapX != 0 || f.Spot.MapY != 0 {
			spot = fmt.Sprintf("%s (%.1f, %.1f)", f.Spot.Name, f.Spot.MapX, f.Spot.MapY)
		}
		add("Spot", spot)
	}
	if f.Patch != 0 {
		add("Patch", strconv.FormatFloat(f.Patch, 'f', -1, 64))
	}
	add("Hours", windowHours(f))
	add("Weather", weatherNames(f.Weather))
	add("Before", weatherNames(f.PrevWeather))
	if c != nil {
		add("Bait", c.BaitName(f))
		if chain := c.BaitChain(f); len(chain) > 1 {
			add("Path", strings.Join(chain, " → "))
		}
	}
	if f.Tug != fish.TugUnknown {
		add("Tug", f.Tug.String())
	}
	if f.Hookset != fish.HooksetUnknown {
		add("Hookset", f.Hookset.String())
	}
	if f.Lure != fish.LureNone {
		add("Lure", f.Lure.String())
	}
	if f.Intuition != nil {
		add("Intuition", intuitionLine(c, f.Intuition))
	}
	if flags := flagNames(f); flags != "" {
		add("Flags", flags)
	}
	if journal := journalLine(r.State.Caught, r.State.Pinned); journal != "" {
		add("Journal", journal)
	}

	if len(spans) > 0 {
		lines = append(lines, "")
		lines = append(lines, DetailLabel.Render("Windows"))
		for _, s := range spans {
			lines = append(lines, windowLine(s, now, inner))
		}
	}

	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return DetailPane.Render(strings.Join(lines, "\n"))
}

// windowHours formats the daily availability window in game bells.
// Equal offsets mean the fish is up the whole sun.
func windowHours(f *fish.Fish) string {
	if f.WindowStart == f.WindowEnd {
		return "all sun"
	}
	return formatBell(f.WindowStart) + " - " + formatBell(f.WindowEnd) + " ET"
}

func formatBell(d eorzea.Duration) string {
	return fmt.Sprintf("%02d:%02d", d/eorzea.Bell, d%eorzea.Bell/eorzea.Minute)
}

// weatherNames lists a weather set for display. Sets wider than four
// conditions come from zones with no weather restriction, so they
// render as "Any" instead of the full table.
func weatherNames(s weather.Set) string {
	if len(s) == 0 {
		return ""
	}
	if len(s) > 4 {
		return "Any"
	}
	names := make([]string, 0, len(s))
	for _, w := range s {
		names = append(names, w.String())
	}
	return strings.Join(names, ", ")
}

func intuitionLine(c *fish.Catalog, in *fish.Intuition) string {
	parts := make([]string, 0, len(in.Reqs))
	for _, req := range in.Reqs {
		name := "?"
		if c != nil {
			if target, ok := c.FishByID(req.FishID); ok {
				name = target.Name
			}
		}
		parts = append(parts, fmt.Sprintf("%d× %s", req.Count, name))
	}
	return fmt.Sprintf("%s within %ds", strings.Join(parts, ", "), int(in.Duration.Seconds()))
}

func flagNames(f *fish.Fish) string {
	var flags []string
	if f.Snagging {
		flags = append(flags, "Snagging")
	}
	if f.FishEyes {
		flags = append(flags, "Fish Eyes")
	}
	if f.Gig {
		flags = append(flags, "Gig")
	}
	if f.Folklore {
		flags = append(flags, "Folklore")
	}
	return strings.Join(flags, ", ")
}

func journalLine(caught, pinned bool) string {
	switch {
	case caught && pinned:
		return "caught, pinned"
	case caught:
		return "caught"
	case pinned:
		return "pinned"
	default:
		return ""
	}
}

// windowLine formats one predicted span against the wall clock.
func windowLine(s eorzea.Span, now time.Time, width int) string {
	start := s.Start().RealTime()
	end := s.End().RealTime()

	var marker, text string
	switch {
	case !end.After(now):
		marker = MetaItem.Render("·")
		text = fmt.Sprintf("%s - %s  ended", start.Format("Mon 15:04"), end.Format("15:04"))
	case !start.After(now):
		marker = OpenCountdown.Render("●")
		text = fmt.Sprintf("now - %s  closes %s", end.Format("15:04"), durShort(end.Sub(now)))
	default:
		marker = MetaItem.Render("○")
		text = fmt.Sprintf("%s - %s  in %s", start.Format("Mon 15:04"), end.Format("15:04"), durShort(start.Sub(now)))
	}
	return " " + marker + " " + DetailValue.Render(runewidth.Truncate(text, width-4, "…"))
}
