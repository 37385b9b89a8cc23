// Command fishctl is the fffish companion CLI: window predictions,
// weather lookups and journal maintenance without starting the TUI.
//
// Usage:
//
//	fishctl                 Show help
//	fishctl windows <fish>  Predict upcoming catch windows
//	fishctl weather <zone>  Upcoming weather periods for a zone
//	fishctl list            List the fish catalog with journal state
//	fishctl state <fish>    Show or change journal state
//	fishctl clock           Current Eorzea time
package main

import (
	"fmt"
	"os"
)

const usage = `fishctl - fffish companion CLI

Usage:
  fishctl <command> [flags]

Commands:
  windows     Predict upcoming catch windows for a fish
  weather     Upcoming weather periods for a zone
  list        List the fish catalog with journal state
  state       Show or change a fish's journal state
  clock       Current Eorzea time and next weather change

Run 'fishctl <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "windows":
		runWindows()
	case "weather":
		runWeather()
	case "list":
		runList()
	case "state":
		runState()
	case "clock":
		runClock()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "fishctl: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
