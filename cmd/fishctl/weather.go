package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
	"github.com/JonaEnz/fffish/internal/weather"
)

func runWeather() {
	fs := flag.NewFlagSet("weather", flag.ExitOnError)
	count := fs.Int("n", 12, "Number of weather periods to show")
	fs.Parse(os.Args[1:])

	catalog := loadCatalog()

	name := strings.Join(fs.Args(), " ")
	if name == "" {
		fmt.Println("Zones:")
		for _, r := range catalog.Regions() {
			fmt.Printf("  %s\n", r.Name)
		}
		return
	}

	region := findRegion(catalog, name)
	if region.Forecast == nil {
		log.Fatalf("no weather table for %s", region.Name)
	}

	now := time.Now()
	basis, err := eorzea.FromTime(now)
	if err != nil {
		log.Fatalf("clock conversion: %v", err)
	}

	nameColor.Println(region.Name)
	t := basis.Truncate(weather.Period)
	for i := 0; i < *count; i++ {
		w := region.Forecast.WeatherAt(t)
		line := fmt.Sprintf("  %s  ET %02d:00  %s", t.RealTime().Format("Mon 15:04"), t.Bell(), w)
		if i == 0 {
			openColor.Print(line)
			dimColor.Println("  (current)")
		} else {
			fmt.Println(line)
		}
		t = t.Add(weather.Period)
	}
}

// findRegion resolves a name to a single zone: exact match first,
// then unique substring.
func findRegion(c *fish.Catalog, name string) *fish.Region {
	if r, ok := c.RegionByName(name); ok {
		return r
	}

	q := strings.ToLower(name)
	var matches []*fish.Region
	for _, r := range c.Regions() {
		if strings.Contains(strings.ToLower(r.Name), q) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		log.Fatalf("no zone matches %q", name)
	case 1:
		return matches[0]
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	fmt.Fprintf(os.Stderr, "%q is ambiguous:\n", name)
	for _, r := range matches {
		fmt.Fprintf(os.Stderr, "  %s\n", r.Name)
	}
	os.Exit(1)
	return nil
}
