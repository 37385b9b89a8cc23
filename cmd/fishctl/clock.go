package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/weather"
)

func runClock() {
	fs := flag.NewFlagSet("clock", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	now := time.Now()
	et, err := eorzea.FromTime(now)
	if err != nil {
		log.Fatalf("clock conversion: %v", err)
	}

	nameColor.Printf("ET %02d:%02d\n", et.Bell(), et.Minute())
	printAttr("Calendar", et.String())

	next := et.Truncate(weather.Period).Add(weather.Period)
	printAttr("Weather", fmt.Sprintf("changes in %s", fmtDur(next.RealTime().Sub(now))))
}
