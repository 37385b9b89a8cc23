package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/JonaEnz/fffish/internal/config"
	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
	"github.com/JonaEnz/fffish/internal/gamedata"
	"github.com/JonaEnz/fffish/internal/store"
	"github.com/JonaEnz/fffish/internal/weather"
)

var (
	nameColor  = color.New(color.FgCyan, color.Bold)
	openColor  = color.New(color.FgGreen, color.Bold)
	dimColor   = color.New(color.FgHiBlack)
	labelColor = color.New(color.FgWhite, color.Bold)
	warnColor  = color.New(color.FgYellow)
)

// loadCatalog loads the embedded fish data or fatals.
func loadCatalog() *fish.Catalog {
	c, err := gamedata.Load()
	if err != nil {
		log.Fatalf("failed to load fish data: %v", err)
	}
	return c
}

// openDB opens the journal store at the configured path or fatals.
func openDB() *store.Store {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	st, err := store.Open(cfg.DatabaseFile())
	if err != nil {
		log.Fatalf("failed to open journal database: %v", err)
	}
	return st
}

// findFish resolves an id or name to a single fish: numeric id first,
// then exact name, then unique substring. Ambiguous names list the
// candidates and exit.
func findFish(c *fish.Catalog, name string) *fish.Fish {
	if id, err := strconv.ParseUint(name, 10, 32); err == nil {
		if f, ok := c.FishByID(uint32(id)); ok {
			return f
		}
		log.Fatalf("no fish with id %d", id)
	}
	if f, ok := c.FishByName(name); ok {
		return f
	}

	q := strings.ToLower(name)
	var matches []*fish.Fish
	for _, f := range c.Fish() {
		if strings.Contains(strings.ToLower(f.Name), q) {
			matches = append(matches, f)
		}
	}

	switch len(matches) {
	case 0:
		log.Fatalf("no fish matches %q", name)
	case 1:
		return matches[0]
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	fmt.Fprintf(os.Stderr, "%q is ambiguous:\n", name)
	for _, f := range matches {
		fmt.Fprintf(os.Stderr, "  %s\n", f.Name)
	}
	os.Exit(1)
	return nil
}

// truncate shortens a string to max runes, appending "..." if truncated.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// fmtDur formats a real duration compactly.
func fmtDur(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "<1m"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		return fmt.Sprintf("%dd%dh", int(d.Hours())/24, int(d.Hours())%24)
	}
}

// zoneName returns the fish's zone name, or "?" when the data is
// incomplete.
func zoneName(f *fish.Fish) string {
	if f.Spot != nil && f.Spot.Region != nil {
		return f.Spot.Region.Name
	}
	return "?"
}

// hoursText formats the daily availability window in game bells.
func hoursText(f *fish.Fish) string {
	if f.WindowStart == f.WindowEnd {
		return "all sun"
	}
	return fmt.Sprintf("%02d:%02d - %02d:%02d ET",
		f.WindowStart/eorzea.Bell, f.WindowStart%eorzea.Bell/eorzea.Minute,
		f.WindowEnd/eorzea.Bell, f.WindowEnd%eorzea.Bell/eorzea.Minute)
}

// weatherText lists a weather set. Sets wider than four conditions
// come from zones with no restriction and render as "any".
func weatherText(s weather.Set) string {
	if len(s) == 0 {
		return ""
	}
	if len(s) > 4 {
		return "any"
	}
	names := make([]string, 0, len(s))
	for _, w := range s {
		names = append(names, w.String())
	}
	return strings.Join(names, ", ")
}
