package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
)

func runList() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	zone := fs.String("zone", "", "Only fish in the given zone")
	patch := fs.String("patch", "", "Only fish from the given patch (e.g. 2.4)")
	openNow := fs.Bool("open", false, "Only fish whose window is open right now")
	caughtOnly := fs.Bool("caught", false, "Only caught fish")
	uncaughtOnly := fs.Bool("uncaught", false, "Only uncaught fish")
	pinnedOnly := fs.Bool("pinned", false, "Only pinned fish")
	fs.Parse(os.Args[1:])

	catalog := loadCatalog()
	st := openDB()
	defer st.Close()

	states, err := st.GetStates()
	if err != nil {
		log.Fatalf("failed to read journal: %v", err)
	}

	now := time.Now()
	et, err := eorzea.FromTime(now)
	if err != nil {
		log.Fatalf("clock conversion: %v", err)
	}

	type row struct {
		fish *fish.Fish
		span eorzea.Span
		ok   bool
	}
	rows := make([]row, 0, catalog.Len())
	for _, f := range catalog.Fish() {
		if *zone != "" && !strings.EqualFold(zoneName(f), *zone) {
			continue
		}
		if *patch != "" && patchText(f) != *patch {
			continue
		}
		state := states[f.ID]
		if *caughtOnly && !state.Caught {
			continue
		}
		if *uncaughtOnly && state.Caught {
			continue
		}
		if *pinnedOnly && !state.Pinned {
			continue
		}
		span, ok := f.NextWindow(et, true, fish.DefaultSearchLimit)
		if *openNow && (!ok || span.Start().After(et)) {
			continue
		}
		rows = append(rows, row{fish: f, span: span, ok: ok})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.ok != b.ok {
			return a.ok
		}
		if a.ok && a.span.Start() != b.span.Start() {
			return a.span.Start().Before(b.span.Start())
		}
		return a.fish.Name < b.fish.Name
	})

	caught, pinned := 0, 0
	for _, r := range rows {
		state := states[r.fish.ID]
		pin, chk := " ", " "
		if state.Pinned {
			pin = warnColor.Sprint("★")
			pinned++
		}
		if state.Caught {
			chk = openColor.Sprint("✓")
			caught++
		}
		fmt.Printf("%s%s %-34s %-22s %-5s %s\n",
			pin, chk, truncate(r.fish.Name, 34), truncate(zoneName(r.fish), 22),
			patchText(r.fish), windowText(r.span, r.ok, et, now))
	}

	dimColor.Printf("\n%d fish (%d caught, %d pinned)\n", len(rows), caught, pinned)
}

// windowText renders one fish's next window relative to now.
func windowText(span eorzea.Span, ok bool, et eorzea.Time, now time.Time) string {
	if !ok {
		return dimColor.Sprint("no window")
	}
	if !span.Start().After(et) {
		return openColor.Sprintf("open %s", fmtDur(span.End().RealTime().Sub(now)))
	}
	return fmt.Sprintf("in %s", fmtDur(span.Start().RealTime().Sub(now)))
}

// patchText renders the patch number, or empty when the data has
// none.
func patchText(f *fish.Fish) string {
	if f.Patch == 0 {
		return ""
	}
	return strconv.FormatFloat(f.Patch, 'f', -1, 64)
}
