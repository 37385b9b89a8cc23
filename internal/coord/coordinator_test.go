package coord

import (
	"context"
	"testing"
	"time"

	"github.com/JonaEnz/fffish/internal/config"
	"github.com/JonaEnz/fffish/internal/fish"
	"github.com/JonaEnz/fffish/internal/weather"
)

// testCatalog holds one fish that matches every weather period and
// one that needs a condition the zone never rolls.
func testCatalog() *fish.Catalog {
	forecast := weather.NewForecast([]weather.Rate{{Threshold: 100, Weather: weather.ClearSkies}})
	region := &fish.Region{ID: 135, Name: "Lower La Noscea", Forecast: forecast}
	spot := &fish.Spot{ID: 31, Name: "Moraby Bay", Region: region}

	clear := weather.Set{weather.ClearSkies}
	sunny := fish.NewFish(101, "Merlthor Goby", spot, 0, 0, clear, clear)
	snowy := fish.NewFish(102, "Snowcloak Trout", spot, 0, 0, clear, weather.Set{weather.Snow})
	return fish.NewCatalog([]*fish.Fish{sunny, snowy}, []*fish.Region{region}, nil)
}

func TestComputeWindows(t *testing.T) {
	cfg := config.DefaultConfig()
	c := NewCoordinator(testCatalog(), cfg)
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	msg := c.computeWindows(context.Background(), now)

	if msg.Err != nil {
		t.Fatalf("computeWindows error: %v", msg.Err)
	}
	if !msg.At.Equal(now) {
		t.Errorf("At = %v, want %v", msg.At, now)
	}

	spans, ok := msg.Windows[101]
	if !ok {
		t.Fatal("always-matching fish should have windows")
	}
	if len(spans) != cfg.Prediction.WindowCount {
		t.Errorf("windows = %d, want %d", len(spans), cfg.Prediction.WindowCount)
	}
	// An all-day fish in an unchanging zone is up back to back.
	for i := 1; i < len(spans); i++ {
		if !spans[i].Start().Equal(spans[i-1].End()) {
			t.Errorf("span %d should start where span %d ends", i, i-1)
		}
	}

	if _, ok := msg.Windows[102]; ok {
		t.Error("fish needing weather the zone never rolls should be absent")
	}
}

func TestComputeWindowsBeforeEpoch(t *testing.T) {
	c := NewCoordinator(testCatalog(), config.DefaultConfig())

	msg := c.computeWindows(context.Background(), time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC))

	if msg.Err == nil {
		t.Fatal("pre-epoch instant should report an error")
	}
	if len(msg.Windows) != 0 {
		t.Error("no windows should be reported on error")
	}
}

func TestComputeWindowsCancelled(t *testing.T) {
	c := NewCoordinator(testCatalog(), config.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := c.computeWindows(ctx, time.Now())

	if len(msg.Windows) != 0 {
		t.Error("cancelled compute should skip all searches")
	}
}

func TestRefreshRateLimit(t *testing.T) {
	c := NewCoordinator(testCatalog(), config.DefaultConfig())

	if !c.Refresh() {
		t.Fatal("first refresh should be accepted")
	}
	if len(c.refreshCh) != 1 {
		t.Error("accepted refresh should queue a recompute")
	}
	if c.Refresh() {
		t.Error("immediate second refresh should be dropped")
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	c := NewCoordinator(testCatalog(), config.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())

	c.Start(ctx, nil)
	cancel()

	done := make(chan struct{})
	go func() {
		c.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("coordinator did not stop after cancel")
	}
}
