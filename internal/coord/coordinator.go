// Package coord provides background window recomputation for fffish.
package coord

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/JonaEnz/fffish/internal/config"
	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
	"github.com/JonaEnz/fffish/internal/logging"
	"github.com/JonaEnz/fffish/internal/ui"
)

// maxConcurrentPredictions limits parallel per-fish window searches.
const maxConcurrentPredictions = 8

// refreshEvery throttles manual refresh requests.
const refreshEvery = 2 * time.Second

// Coordinator recomputes upcoming catch windows for every fish on a
// timer and on demand, and pushes the results into the UI.
// Uses context cancellation as the ONLY stop mechanism.
type Coordinator struct {
	catalog *fish.Catalog // IMMUTABLE: set at construction, never modified

	interval    time.Duration
	windowCount int
	searchLimit int

	limiter   *rate.Limiter
	refreshCh chan struct{}
	wg        sync.WaitGroup
}

// NewCoordinator creates a Coordinator over the loaded catalog with
// the configured prediction settings.
func NewCoordinator(catalog *fish.Catalog, cfg *config.Config) *Coordinator {
	return &Coordinator{
		catalog:     catalog,
		interval:    time.Duration(cfg.UI.RefreshSecs) * time.Second,
		windowCount: cfg.Prediction.WindowCount,
		searchLimit: cfg.Prediction.SearchLimit,
		limiter:     rate.NewLimiter(rate.Every(refreshEvery), 1),
		refreshCh:   make(chan struct{}, 1),
	}
}

// Start begins background recomputation. Call with a cancellable
// context. Computes immediately, then on every tick and on every
// accepted Refresh.
func (c *Coordinator) Start(ctx context.Context, program *tea.Program) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		c.recompute(ctx, program)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.recompute(ctx, program)
			case <-c.refreshCh:
				c.recompute(ctx, program)
			}
		}
	}()
}

// Wait blocks until the background goroutine exits.
// Call after canceling the context passed to Start.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Refresh requests an immediate recompute. Returns false when the
// request was dropped by the rate limit; a recompute already pending
// covers the dropped request anyway.
func (c *Coordinator) Refresh() bool {
	if !c.limiter.Allow() {
		return false
	}
	select {
	case c.refreshCh <- struct{}{}:
	default:
	}
	return true
}

// recompute predicts windows for every fish as of now and sends the
// result to the program.
func (c *Coordinator) recompute(ctx context.Context, program *tea.Program) {
	msg := c.computeWindows(ctx, time.Now())
	if ctx.Err() != nil {
		return
	}
	if program != nil {
		program.Send(msg)
	}
}

// computeWindows runs the per-fish searches in parallel. A fish whose
// search exhausts the budget is simply absent from the result.
func (c *Coordinator) computeWindows(ctx context.Context, now time.Time) ui.WindowsComputed {
	basis, err := eorzea.FromTime(now)
	if err != nil {
		logging.Error("clock conversion failed", "error", err)
		return ui.WindowsComputed{At: now, Err: err}
	}

	fishes := c.catalog.Fish()
	results := make([][]eorzea.Span, len(fishes))

	var g errgroup.Group
	g.SetLimit(maxConcurrentPredictions)

	for i, f := range fishes {
		i, f := i, f
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			// Always include an open window; whether to show it is
			// the UI's call.
			results[i] = f.NextWindows(c.windowCount, basis, true, c.searchLimit)
			// Windowless fish are expected; never fail the group.
			return nil
		})
	}

	_ = g.Wait()

	windows := make(map[uint32][]eorzea.Span, len(fishes))
	for i, f := range fishes {
		if len(results[i]) > 0 {
			windows[f.ID] = results[i]
		}
	}

	logging.Debug("windows recomputed",
		"fish", len(windows), "of", len(fishes), "elapsed", time.Since(now))

	return ui.WindowsComputed{At: now, Windows: windows}
}
