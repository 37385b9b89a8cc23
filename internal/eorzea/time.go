// Package eorzea implements the game's accelerated calendar: value
// types for instants, durations and spans of game time, plus the
// conversions to and from real time.
//
// One real second is 3600/175 game seconds (about 20.57x). The
// calendar counts 60 seconds to the minute, 60 minutes to the bell,
// 24 bells to the sun, 32 suns to the moon and 12 moons to the year.
// The calendar epoch (year 1, moon 1, sun 1, 00:00:00) coincides with
// the Unix epoch in real time.
package eorzea

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Duration is a non-negative span of game seconds. Durations compose
// from the unit constants the way time.Duration does; reducing one
// modulo Sun yields its day fraction.
type Duration uint64

// Calendar units, in game seconds.
const (
	Second Duration = 1
	Minute          = 60 * Second
	Bell            = 60 * Minute
	Sun             = 24 * Bell
	Moon            = 32 * Sun
	Year            = 12 * Moon
)

// gameSecsPerRealSec is the fixed clock ratio between the game
// calendar and real time.
const gameSecsPerRealSec = 3600.0 / 175.0

// ErrBeforeEpoch reports a real instant earlier than the Unix epoch,
// which has no game-time representation.
var ErrBeforeEpoch = errors.New("eorzea: real time before epoch")

// ErrNegativeDuration reports an end instant that precedes its start.
var ErrNegativeDuration = errors.New("eorzea: negative duration")

// RangeError reports a calendar component outside its valid range.
type RangeError struct {
	Field string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("eorzea: %s %d out of range", e.Field, e.Value)
}

// Time is an absolute instant in the game calendar, counted in game
// seconds since the calendar epoch. Immutable value type; the zero
// value is the epoch itself. Instants compare with Before, After and
// Equal (or ==).
type Time struct {
	secs uint64
}

// Date returns the Time for the given calendar components. Years,
// moons and suns count from one; bells, minutes and seconds from
// zero. Components outside their range yield a *RangeError, never a
// clamped value.
func Date(year, moon, sun, bell, min, sec int) (Time, error) {
	switch {
	case year < 1:
		return Time{}, &RangeError{"year", year}
	case moon < 1 || moon > 12:
		return Time{}, &RangeError{"moon", moon}
	case sun < 1 || sun > 32:
		return Time{}, &RangeError{"sun", sun}
	case bell < 0 || bell > 23:
		return Time{}, &RangeError{"bell", bell}
	case min < 0 || min > 59:
		return Time{}, &RangeError{"minute", min}
	case sec < 0 || sec > 59:
		return Time{}, &RangeError{"second", sec}
	}
	secs := uint64(year-1)*uint64(Year) +
		uint64(moon-1)*uint64(Moon) +
		uint64(sun-1)*uint64(Sun) +
		uint64(bell)*uint64(Bell) +
		uint64(min)*uint64(Minute) +
		uint64(sec)
	return Time{secs}, nil
}

// FromTime converts a real instant to game time, rounding to the
// nearest game second. Instants before the Unix epoch return
// ErrBeforeEpoch.
func FromTime(t time.Time) (Time, error) {
	u := t.Unix()
	if u < 0 {
		return Time{}, ErrBeforeEpoch
	}
	return Time{uint64(math.Round(float64(u) * gameSecsPerRealSec))}, nil
}

// Now returns the current game time.
func Now() Time {
	t, _ := FromTime(time.Now())
	return t
}

// RealTime converts t back to real time, rounding to the nearest real
// second. It inverts FromTime at one-second granularity.
func (t Time) RealTime() time.Time {
	return time.Unix(int64(math.Round(float64(t.secs)/gameSecsPerRealSec)), 0)
}

// Year returns the calendar year, counted from one.
func (t Time) Year() int { return 1 + int(t.secs/uint64(Year)) }

// Moon returns the moon of the year, 1 through 12.
func (t Time) Moon() int { return 1 + int(t.secs/uint64(Moon)%12) }

// Sun returns the sun of the moon, 1 through 32.
func (t Time) Sun() int { return 1 + int(t.secs/uint64(Sun)%32) }

// Bell returns the bell of the sun, 0 through 23.
func (t Time) Bell() int { return int(t.secs / uint64(Bell) % 24) }

// Minute returns the minute of the bell, 0 through 59.
func (t Time) Minute() int { return int(t.secs / uint64(Minute) % 60) }

// Second returns the second of the minute, 0 through 59.
func (t Time) Second() int { return int(t.secs % 60) }

// Add returns t advanced by d.
func (t Time) Add(d Duration) Time { return Time{t.secs + uint64(d)} }

// Sub returns t moved back by d, saturating at the calendar epoch
// rather than underflowing.
func (t Time) Sub(d Duration) Time {
	if uint64(d) >= t.secs {
		return Time{}
	}
	return Time{t.secs - uint64(d)}
}

// Truncate rounds t down to the nearest multiple of d since the
// epoch. Truncating by Sun yields the start of t's game day.
func (t Time) Truncate(d Duration) Time {
	if d == 0 {
		return t
	}
	return Time{t.secs - t.secs%uint64(d)}
}

// Since returns the duration elapsed from u to t. It fails with
// ErrNegativeDuration when u is after t.
func (t Time) Since(u Time) (Duration, error) {
	if u.secs > t.secs {
		return 0, ErrNegativeDuration
	}
	return Duration(t.secs - u.secs), nil
}

// Before reports whether t is earlier than u.
func (t Time) Before(u Time) bool { return t.secs < u.secs }

// After reports whether t is later than u.
func (t Time) After(u Time) bool { return t.secs > u.secs }

// Equal reports whether t and u are the same instant.
func (t Time) Equal(u Time) bool { return t.secs == u.secs }

// String formats t as a game-calendar timestamp, e.g.
// "1-01-03 07:30:00".
func (t Time) String() string {
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d",
		t.Year(), t.Moon(), t.Sun(), t.Bell(), t.Minute(), t.Second())
}
