// Package ui provides the Bubble Tea TUI for fffish.
package ui

import (
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/store"
)

// WindowsComputed is sent when a background recompute finishes. Fish
// whose search found nothing inside the horizon are absent from the
// map. On error the previous windows stay on screen.
type WindowsComputed struct {
	At      time.Time
	Windows map[uint32][]eorzea.Span
	Err     error
}

// StatesLoaded is sent when the journal is fetched from the store.
type StatesLoaded struct {
	States map[uint32]store.State
	Err    error
}

// CaughtToggled is sent when a caught flag has been persisted.
type CaughtToggled struct {
	FishID uint32
	Caught bool
	Err    error
}

// PinToggled is sent when a pin flag has been persisted.
type PinToggled struct {
	FishID uint32
	Pinned bool
	Err    error
}

// RefreshRequested reports whether a manual refresh was accepted or
// dropped by the coordinator's rate limit.
type RefreshRequested struct {
	Accepted bool
}

// ClockTick drives countdown redraws once per second.
type ClockTick struct {
	At time.Time
}
