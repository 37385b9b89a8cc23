// Package weather reproduces the game's deterministic zone weather
// simulation: a bit-mixing score function over real time, per-zone
// cumulative rate tables mapping scores to conditions, and a bounded
// forward search for weather transition patterns.
package weather

import (
	"fmt"
	"sort"

	"github.com/JonaEnz/fffish/internal/eorzea"
)

// Weather identifies one condition by its numeric game id. Weathers
// compare by equality only; there is no ordering.
type Weather uint32

// Unknown is the sentinel for conditions a rate table cannot produce.
const Unknown Weather = 0

// Known conditions, by game id.
const (
	ClearSkies    Weather = 1
	FairSkies     Weather = 2
	Clouds        Weather = 3
	Fog           Weather = 4
	Wind          Weather = 5
	Gales         Weather = 6
	Rain          Weather = 7
	Showers       Weather = 8
	Thunder       Weather = 9
	Thunderstorms Weather = 10
	DustStorms    Weather = 11
	HeatWaves     Weather = 14
	Snow          Weather = 15
	Blizzards     Weather = 16
	Gloom         Weather = 17
)

func (w Weather) String() string {
	switch w {
	case Unknown:
		return "Unknown"
	case ClearSkies:
		return "Clear Skies"
	case FairSkies:
		return "Fair Skies"
	case Clouds:
		return "Clouds"
	case Fog:
		return "Fog"
	case Wind:
		return "Wind"
	case Gales:
		return "Gales"
	case Rain:
		return "Rain"
	case Showers:
		return "Showers"
	case Thunder:
		return "Thunder"
	case Thunderstorms:
		return "Thunderstorms"
	case DustStorms:
		return "Dust Storms"
	case HeatWaves:
		return "Heat Waves"
	case Snow:
		return "Snow"
	case Blizzards:
		return "Blizzards"
	case Gloom:
		return "Gloom"
	default:
		return fmt.Sprintf("Weather(%d)", uint32(w))
	}
}

// Set is a group of conditions tested by membership. Sets are small
// (one to three entries in the game data), so a slice scan beats a
// map here.
type Set []Weather

// Contains reports whether w is in the set.
func (s Set) Contains(w Weather) bool {
	for _, v := range s {
		if v == w {
			return true
		}
	}
	return false
}

// Period is how long one simulated condition lasts in a zone.
const Period = 8 * eorzea.Bell

// Rate pairs a cumulative threshold on the 0-100 scale with the
// condition rolled when the zone score falls below it.
type Rate struct {
	Threshold uint32
	Weather   Weather
}

// Forecast is a zone's rate table, thresholds ascending. Immutable
// after construction and safe to share between goroutines.
type Forecast struct {
	rates []Rate
}

// NewForecast builds a forecast from rate pairs, sorting them by
// threshold. The highest threshold acts as the score modulus.
func NewForecast(rates []Rate) *Forecast {
	sorted := make([]Rate, len(rates))
	copy(sorted, rates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold < sorted[j].Threshold
	})
	return &Forecast{rates: sorted}
}

// Score computes the simulation's weather score for an instant,
// modulo the table's maximum threshold. The divisors and the
// xor-shift mix reproduce the external simulation bit for bit; they
// are magic constants and must never be "simplified".
func Score(t eorzea.Time, modulus uint32) uint32 {
	if modulus == 0 {
		modulus = 1
	}
	u := uint64(t.RealTime().Unix())
	bell := u / 175
	inc := (bell + 8 - bell%8) % 24
	days := u / 4200
	base := uint32(days*100 + inc)
	step1 := (base << 11) ^ base
	step2 := (step1 >> 8) ^ step1
	return step2 % modulus
}

// WeatherAt returns the condition simulated at t: the first rate
// whose threshold is strictly greater than the score, or Unknown when
// none matches.
func (f *Forecast) WeatherAt(t eorzea.Time) Weather {
	return f.weatherForScore(Score(t, f.modulus()))
}

func (f *Forecast) modulus() uint32 {
	if len(f.rates) == 0 {
		return 1
	}
	return f.rates[len(f.rates)-1].Threshold
}

func (f *Forecast) weatherForScore(score uint32) Weather {
	for _, r := range f.rates {
		if r.Threshold > score {
			return r.Weather
		}
	}
	return Unknown
}

// FindPattern scans consecutive weather periods for a transition
// where the preceding period's condition is in prev and the current
// period's is in cur. Candidates are period boundaries, beginning
// with the period containing start (saturating at the epoch), and the
// scan advances one period per step up to limit steps. Returns the
// matching period's start; the second result is false when the budget
// runs out first.
func (f *Forecast) FindPattern(start eorzea.Time, prev, cur Set, limit int) (eorzea.Time, bool) {
	t := start.Truncate(Period).Sub(Period)
	prevWeather := f.WeatherAt(t)
	for i := 0; i < limit; i++ {
		t = t.Add(Period)
		w := f.WeatherAt(t)
		if prev.Contains(prevWeather) && cur.Contains(w) {
			return t, true
		}
		prevWeather = w
	}
	return eorzea.Time{}, false
}

// FindNextN collects up to n pattern matches, restarting each search
// one period after the previous match. The first exhausted search
// ends the collection early.
func (f *Forecast) FindNextN(n int, start eorzea.Time, prev, cur Set, limit int) []eorzea.Time {
	out := make([]eorzea.Time, 0, n)
	t := start
	for len(out) < n {
		match, ok := f.FindPattern(t, prev, cur, limit)
		if !ok {
			break
		}
		out = append(out, match)
		t = match.Add(Period)
	}
	return out
}
