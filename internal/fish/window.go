package fish

import (
	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/weather"
)

// DefaultSearchLimit bounds how many weather periods a window search
// scans when the caller has no better budget. 1000 periods is a bit
// over two real weeks.
const DefaultSearchLimit = 1000

// WindowOnDay returns the fish's daily window on the game day
// containing ref. A window whose end does not come after its start
// crosses midnight, so the end lands on the following day; equal
// offsets mean the fish is up the whole sun.
func (f *Fish) WindowOnDay(ref eorzea.Time) eorzea.Span {
	day := ref.Truncate(eorzea.Sun)
	start := f.WindowStart
	end := f.WindowEnd
	if end <= start {
		end += eorzea.Sun
	}
	return eorzea.NewSpan(day.Add(start), end-start)
}

// NextWindow finds the next span during which the fish is up: the
// intersection of its daily window with a matching weather pattern in
// its zone. The search starts at searchStart and inspects at most
// limit weather periods. With includeOngoing a window already in
// progress at searchStart is reported as long as it has not ended;
// otherwise only windows starting at or after searchStart qualify.
// Zero-duration intersections never qualify. The second result is
// false when the weather search fails or the budget is exhausted;
// both mean "nothing inside the horizon", not a fault.
func (f *Fish) NextWindow(searchStart eorzea.Time, includeOngoing bool, limit int) (eorzea.Span, bool) {
	forecast := f.Forecast()
	if forecast == nil {
		return eorzea.Span{}, false
	}
	t := searchStart
	for n := limit; n > 0; n-- {
		match, ok := forecast.FindPattern(t, f.PrevWeather, f.Weather, n)
		if !ok {
			// Weather exhaustion is terminal, not retried.
			return eorzea.Span{}, false
		}
		weatherSpan := eorzea.NewSpan(match, weather.Period)
		if got, ok := f.WindowOnDay(t).Overlap(weatherSpan); ok {
			minWindow := got.Start()
			if includeOngoing {
				minWindow = got.End()
			}
			if !searchStart.After(minWindow) && got.Duration() > 0 {
				return got, true
			}
		}
		t = t.Add(weather.Period)
	}
	return eorzea.Span{}, false
}

// NextWindows collects up to n consecutive windows, re-searching from
// each found window's end. The ongoing policy applies to the first
// result only; the rest are strictly future by construction.
func (f *Fish) NextWindows(n int, searchStart eorzea.Time, includeOngoing bool, limit int) []eorzea.Span {
	out := make([]eorzea.Span, 0, n)
	t := searchStart
	ongoing := includeOngoing
	for len(out) < n {
		s, ok := f.NextWindow(t, ongoing, limit)
		if !ok {
			break
		}
		out = append(out, s)
		t = s.End()
		ongoing = false
	}
	return out
}
