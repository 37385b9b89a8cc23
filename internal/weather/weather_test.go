package weather

import (
	"testing"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
)

func gameDate(t *testing.T, year, moon, sun, bell, min, sec int) eorzea.Time {
	t.Helper()
	et, err := eorzea.Date(year, moon, sun, bell, min, sec)
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	return et
}

func fromUnix(t *testing.T, u int64) eorzea.Time {
	t.Helper()
	et, err := eorzea.FromTime(time.Unix(u, 0))
	if err != nil {
		t.Fatalf("FromTime(%d): %v", u, err)
	}
	return et
}

// Score values pinned against the external simulation.
func TestScoreFixtures(t *testing.T) {
	tests := []struct {
		name string
		at   eorzea.Time
		want uint32
	}{
		{"epoch", eorzea.Time{}, 56},
		{"epoch plus 100000s", fromUnix(t, 100000), 76},
		{"march 2025", fromUnix(t, 1741463853), 94},
		{"year two", gameDate(t, 2, 1, 1, 0, 0, 0), 78},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.at, 100); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreZeroModulus(t *testing.T) {
	if got := Score(eorzea.Time{}, 0); got != 0 {
		t.Errorf("Score with zero modulus = %d, want 0", got)
	}
}

func TestWeatherForScoreBoundaries(t *testing.T) {
	f := NewForecast([]Rate{{50, Clouds}, {100, ClearSkies}})
	tests := []struct {
		score uint32
		want  Weather
	}{
		{0, Clouds},
		{49, Clouds},
		{50, ClearSkies}, // threshold must be strictly greater
		{99, ClearSkies},
		{100, Unknown},
		{150, Unknown},
	}
	for _, tt := range tests {
		if got := f.weatherForScore(tt.score); got != tt.want {
			t.Errorf("weatherForScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestEmptyForecast(t *testing.T) {
	f := NewForecast(nil)
	if got := f.WeatherAt(eorzea.Time{}); got != Unknown {
		t.Errorf("empty forecast WeatherAt = %v, want Unknown", got)
	}
}

func TestNewForecastSorts(t *testing.T) {
	f := NewForecast([]Rate{{100, ClearSkies}, {50, Clouds}})
	if got := f.weatherForScore(10); got != Clouds {
		t.Errorf("unsorted input: weatherForScore(10) = %v, want Clouds", got)
	}
}

// End-to-end score+lookup at period boundaries, derived from the
// score formula by hand.
func TestWeatherAt(t *testing.T) {
	f := NewForecast([]Rate{{50, Clouds}, {100, ClearSkies}})
	tests := []struct {
		at   eorzea.Time
		want Weather
	}{
		{eorzea.Time{}, ClearSkies},               // score 56
		{gameDate(t, 1, 1, 2, 2, 0, 0), ClearSkies}, // 93600 es, score 64
		{gameDate(t, 1, 1, 2, 10, 0, 0), Clouds},    // 122400 es, score 48
		{gameDate(t, 1, 1, 3, 2, 0, 0), Clouds},     // 180000 es, score 0
	}
	for _, tt := range tests {
		if got := f.WeatherAt(tt.at); got != tt.want {
			t.Errorf("WeatherAt(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

// The same instant resolves differently under different rate tables:
// the score modulus is the table's top threshold, not a constant.
func TestWeatherAtRateTables(t *testing.T) {
	coastal := NewForecast([]Rate{
		{20, Clouds}, {50, ClearSkies}, {80, FairSkies}, {90, Fog}, {100, Wind},
	})
	highland := NewForecast([]Rate{
		{5, Clouds}, {25, ClearSkies}, {65, FairSkies}, {80, Fog}, {90, Wind},
	})

	tests := []struct {
		at           eorzea.Time
		wantCoastal  Weather
		wantHighland Weather
	}{
		{gameDate(t, 1, 1, 2, 3, 46, 40), FairSkies, ClearSkies},
		{gameDate(t, 1, 1, 2, 6, 33, 20), FairSkies, ClearSkies}, // same period
		{gameDate(t, 1, 1, 2, 9, 20, 0), ClearSkies, FairSkies},  // next period
	}
	for _, tt := range tests {
		if got := coastal.WeatherAt(tt.at); got != tt.wantCoastal {
			t.Errorf("coastal WeatherAt(%v) = %v, want %v", tt.at, got, tt.wantCoastal)
		}
		if got := highland.WeatherAt(tt.at); got != tt.wantHighland {
			t.Errorf("highland WeatherAt(%v) = %v, want %v", tt.at, got, tt.wantHighland)
		}
	}
}

func TestFindPattern(t *testing.T) {
	f := NewForecast([]Rate{{50, Clouds}, {100, ClearSkies}})

	// First clear-into-clear transition after the epoch.
	got, ok := f.FindPattern(eorzea.Time{}, Set{ClearSkies}, Set{ClearSkies}, 1000)
	if !ok {
		t.Fatal("FindPattern exhausted")
	}
	if want := gameDate(t, 1, 1, 4, 0, 0, 0); !got.Equal(want) {
		t.Errorf("FindPattern = %v, want %v", got, want)
	}

	// Sustained clouds, from an unaligned start.
	got, ok = f.FindPattern(gameDate(t, 1, 1, 1, 1, 1, 1), Set{Clouds}, Set{Clouds}, 1000)
	if !ok {
		t.Fatal("FindPattern exhausted")
	}
	if want := gameDate(t, 1, 1, 1, 16, 0, 0); !got.Equal(want) {
		t.Errorf("FindPattern = %v, want %v", got, want)
	}
}

func TestFindPatternExhaustion(t *testing.T) {
	f := NewForecast([]Rate{{50, Clouds}, {100, ClearSkies}})

	// The match needs nine steps; two are not enough.
	if _, ok := f.FindPattern(eorzea.Time{}, Set{ClearSkies}, Set{ClearSkies}, 2); ok {
		t.Error("expected exhaustion with limit 2")
	}

	// Unknown is never simulated, so an Unknown-only target cannot
	// match within any budget.
	if _, ok := f.FindPattern(eorzea.Time{}, Set{Unknown}, Set{Unknown}, 500); ok {
		t.Error("expected no match for Unknown-only sets")
	}
}

func TestFindNextN(t *testing.T) {
	f := NewForecast([]Rate{{50, Clouds}, {100, ClearSkies}})
	start := gameDate(t, 1, 1, 1, 2, 46, 40) // 10000 game seconds in

	got := f.FindNextN(3, start, Set{ClearSkies}, Set{ClearSkies}, 1000)
	want := []eorzea.Time{
		gameDate(t, 1, 1, 4, 0, 0, 0),
		gameDate(t, 1, 1, 7, 16, 0, 0),
		gameDate(t, 1, 1, 8, 16, 0, 0),
	}
	if len(got) != len(want) {
		t.Fatalf("FindNextN returned %d matches, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("match %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFindNextNStopsEarly(t *testing.T) {
	f := NewForecast([]Rate{{50, Clouds}, {100, ClearSkies}})
	if got := f.FindNextN(5, eorzea.Time{}, Set{Unknown}, Set{Unknown}, 50); len(got) != 0 {
		t.Errorf("FindNextN = %d matches, want none", len(got))
	}
}

func TestSetContains(t *testing.T) {
	s := Set{Rain, Showers}
	if !s.Contains(Rain) || s.Contains(Fog) {
		t.Error("Set membership broken")
	}
	if (Set{}).Contains(Rain) {
		t.Error("empty set should contain nothing")
	}
}
