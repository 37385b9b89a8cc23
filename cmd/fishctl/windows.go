package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
)

func runWindows() {
	fs := flag.NewFlagSet("windows", flag.ExitOnError)
	count := fs.Int("n", 5, "Number of windows to predict")
	ongoing := fs.Bool("ongoing", true, "Count a window already underway as the first result")
	limit := fs.Int("limit", fish.DefaultSearchLimit, "Weather periods searched before giving up")
	fs.Parse(os.Args[1:])

	name := strings.Join(fs.Args(), " ")
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: fishctl windows [-n N] [-ongoing=false] [-limit N] <fish name or id>")
		os.Exit(1)
	}

	catalog := loadCatalog()
	f := findFish(catalog, name)

	now := time.Now()
	basis, err := eorzea.FromTime(now)
	if err != nil {
		log.Fatalf("clock conversion: %v", err)
	}

	nameColor.Println(f.Name)
	if f.Spot != nil {
		loc := zoneName(f) + ", " + f.Spot.Name
		if f.Spot.MapX != 0 || f.Spot.MapY != 0 {
			loc += fmt.Sprintf(" (%.1f, %.1f)", f.Spot.MapX, f.Spot.MapY)
		}
		fmt.Printf("  %s\n", loc)
	}
	printAttr("Hours", hoursText(f))
	printAttr("Weather", weatherText(f.Weather))
	printAttr("Before", weatherText(f.PrevWeather))
	printAttr("Bait", catalog.BaitName(f))
	if chain := catalog.BaitChain(f); len(chain) > 1 {
		printAttr("Path", strings.Join(chain, " -> "))
	}
	fmt.Println()

	spans := f.NextWindows(*count, basis, *ongoing, *limit)
	if len(spans) == 0 {
		warnColor.Println("  no window inside the search horizon")
		return
	}

	for _, s := range spans {
		start := s.Start().RealTime()
		end := s.End().RealTime()
		if !start.After(now) {
			openColor.Printf("  ● now - %s", end.Format("15:04"))
			dimColor.Printf("  closes %s\n", fmtDur(end.Sub(now)))
			continue
		}
		fmt.Printf("  ○ %s - %s", start.Format("Mon Jan _2 15:04"), end.Format("15:04"))
		dimColor.Printf("  in %s\n", fmtDur(start.Sub(now)))
	}
}

// printAttr prints one labelled attribute line, skipping empty values.
func printAttr(label, value string) {
	if value == "" || value == "Unknown" {
		return
	}
	dimColor.Printf("  %-8s", label)
	fmt.Printf(" %s\n", value)
}
