// Package fish models the catchable-resource catalog and predicts
// catch windows by combining each fish's daily time-of-day window
// with its zone's simulated weather.
package fish

import (
	"strings"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/weather"
)

// Region is a weather zone. Constructed once from static data and
// shared read-only by every spot inside it.
type Region struct {
	ID       uint32
	Name     string
	Forecast *weather.Forecast
}

// Spot is a fishing location inside a region. The region outlives
// every spot that points to it.
type Spot struct {
	ID     uint32
	Name   string
	Region *Region
	MapX   float64
	MapY   float64
}

// Tug is the strike strength when a fish bites.
type Tug int

// Tug values.
const (
	TugUnknown Tug = iota
	TugLight
	TugMedium
	TugHeavy
)

func (t Tug) String() string {
	switch t {
	case TugLight:
		return "Light"
	case TugMedium:
		return "Medium"
	case TugHeavy:
		return "Heavy"
	default:
		return "?"
	}
}

// ParseTug maps the game-data tug name to its value. Unrecognized
// input yields TugUnknown.
func ParseTug(s string) Tug {
	switch strings.ToLower(s) {
	case "light":
		return TugLight
	case "medium":
		return TugMedium
	case "heavy":
		return TugHeavy
	default:
		return TugUnknown
	}
}

// Hookset is the hook action the fish responds to.
type Hookset int

// Hookset values.
const (
	HooksetUnknown Hookset = iota
	HooksetPrecision
	HooksetPowerful
)

func (h Hookset) String() string {
	switch h {
	case HooksetPrecision:
		return "Precision"
	case HooksetPowerful:
		return "Powerful"
	default:
		return "?"
	}
}

// ParseHookset maps the game-data hookset name to its value.
func ParseHookset(s string) Hookset {
	switch strings.ToLower(s) {
	case "precision":
		return HooksetPrecision
	case "powerful":
		return HooksetPowerful
	default:
		return HooksetUnknown
	}
}

// Lure is the lure behavior the fish responds to.
type Lure int

// Lure values.
const (
	LureNone Lure = iota
	LureModerate
	LureAmbitious
)

func (l Lure) String() string {
	switch l {
	case LureModerate:
		return "Moderate"
	case LureAmbitious:
		return "Ambitious"
	default:
		return "-"
	}
}

// ParseLure maps the game-data lure name to its value.
func ParseLure(s string) Lure {
	switch strings.ToLower(s) {
	case "moderate":
		return LureModerate
	case "ambitious":
		return LureAmbitious
	default:
		return LureNone
	}
}

// BaitKind discriminates the Bait variant.
type BaitKind int

// Bait variants.
const (
	// BaitUnknown means the data gave no usable catch path.
	BaitUnknown BaitKind = iota
	// BaitItem is a plain bait item.
	BaitItem
	// BaitMooch means the fish is hooked off the back of another
	// caught fish.
	BaitMooch
)

// Bait is what a fish bites: a bait item, another fish to mooch, or
// unknown. The id resolves against the catalog only when display
// text is needed, never during prediction.
type Bait struct {
	Kind BaitKind
	ID   uint32
}

// IntuitionReq is one prerequisite catch for an intuition buff.
type IntuitionReq struct {
	Count  int
	FishID uint32
}

// Intuition is the side condition some fish carry: catch the listed
// fish first, then hook the target within the buff duration.
type Intuition struct {
	Duration time.Duration
	Reqs     []IntuitionReq
}

// Fish is one catchable resource. IMMUTABLE after loading; the
// prediction methods only read, so one Fish may serve concurrent
// queries without locking.
type Fish struct {
	ID   uint32
	Name string
	Spot *Spot

	// Daily availability window, as day fractions.
	WindowStart eorzea.Duration
	WindowEnd   eorzea.Duration

	// Weather required in the period before the window and during it.
	PrevWeather weather.Set
	Weather     weather.Set

	Bait      Bait
	CatchPath []uint32
	Tug       Tug
	Hookset   Hookset
	Lure      Lure
	Intuition *Intuition
	Snagging  bool
	Gig       bool
	FishEyes  bool
	Folklore  bool
	Patch     float64
}

// NewFish builds a fish with its window offsets reduced to day
// fractions. Descriptive attributes (bait, tug, intuition and the
// rest) are assigned by the loader after construction.
func NewFish(id uint32, name string, spot *Spot, windowStart, windowEnd eorzea.Duration, prev, cur weather.Set) *Fish {
	return &Fish{
		ID:          id,
		Name:        name,
		Spot:        spot,
		WindowStart: windowStart % eorzea.Sun,
		WindowEnd:   windowEnd % eorzea.Sun,
		PrevWeather: prev,
		Weather:     cur,
	}
}

// Forecast returns the weather table of the fish's zone, or nil when
// the fish has no resolvable spot.
func (f *Fish) Forecast() *weather.Forecast {
	if f.Spot == nil || f.Spot.Region == nil {
		return nil
	}
	return f.Spot.Region.Forecast
}
