package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

func runState() {
	fs := flag.NewFlagSet("state", flag.ExitOnError)
	setCaught := fs.Bool("caught", false, "Mark as caught")
	setUncaught := fs.Bool("uncaught", false, "Clear the caught flag")
	setPin := fs.Bool("pin", false, "Pin the fish")
	setUnpin := fs.Bool("unpin", false, "Unpin the fish")
	fs.Parse(os.Args[1:])

	name := strings.Join(fs.Args(), " ")
	if name == "" {
		if *setCaught || *setUncaught || *setPin || *setUnpin {
			fmt.Fprintln(os.Stderr, "usage: fishctl state [-caught|-uncaught] [-pin|-unpin] <fish name>")
			os.Exit(1)
		}
		printSummary()
		return
	}
	if *setCaught && *setUncaught {
		log.Fatal("-caught and -uncaught are mutually exclusive")
	}
	if *setPin && *setUnpin {
		log.Fatal("-pin and -unpin are mutually exclusive")
	}

	catalog := loadCatalog()
	f := findFish(catalog, name)

	st := openDB()
	defer st.Close()

	if *setCaught || *setUncaught {
		if err := st.MarkCaught(f.ID, *setCaught); err != nil {
			log.Fatalf("failed to update journal: %v", err)
		}
	}
	if *setPin || *setUnpin {
		if err := st.MarkPinned(f.ID, *setPin); err != nil {
			log.Fatalf("failed to update journal: %v", err)
		}
	}

	state, err := st.GetState(f.ID)
	if err != nil {
		log.Fatalf("failed to read journal: %v", err)
	}

	nameColor.Println(f.Name)
	caughtText := "no"
	if state.Caught {
		caughtText = openColor.Sprint("yes")
	}
	pinnedText := "no"
	if state.Pinned {
		pinnedText = warnColor.Sprint("yes")
	}
	printAttr("Caught", caughtText)
	printAttr("Pinned", pinnedText)
}

// printSummary reports journal totals and lists the pinned fish.
func printSummary() {
	catalog := loadCatalog()
	st := openDB()
	defer st.Close()

	states, err := st.GetStates()
	if err != nil {
		log.Fatalf("failed to read journal: %v", err)
	}

	caught := 0
	var pinned []string
	for _, f := range catalog.Fish() {
		state := states[f.ID]
		if state.Caught {
			caught++
		}
		if state.Pinned {
			pinned = append(pinned, f.Name)
		}
	}
	sort.Strings(pinned)

	labelColor.Println("Journal")
	printAttr("Caught", fmt.Sprintf("%d of %d", caught, catalog.Len()))
	printAttr("Pinned", strconv.Itoa(len(pinned)))
	for _, name := range pinned {
		fmt.Printf("  %s%s\n", warnColor.Sprint("★ "), name)
	}
}
