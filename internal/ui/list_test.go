package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
	"github.com/JonaEnz/fffish/internal/store"
)

func testSpot() *fish.Spot {
	region := &fish.Region{ID: 135, Name: "Lower La Noscea"}
	return &fish.Spot{ID: 31, Name: "Moraby Bay", Region: region}
}

func listRow(id uint32, name string) Row {
	return Row{Fish: &fish.Fish{ID: id, Name: name, Spot: testSpot()}}
}

func TestPickWindow(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	et, err := eorzea.FromTime(now)
	if err != nil {
		t.Fatal(err)
	}

	past := eorzea.NewSpan(et.Sub(4*eorzea.Bell), eorzea.Bell)
	open := eorzea.NewSpan(et.Sub(eorzea.Bell), 2*eorzea.Bell)
	future := eorzea.NewSpan(et.Add(4*eorzea.Bell), eorzea.Bell)
	spans := []eorzea.Span{past, open, future}

	got, isOpen, found := pickWindow(spans, now, true)
	if !found || !isOpen || got != open {
		t.Errorf("with ongoing: got %v open=%v found=%v, want the open span", got, isOpen, found)
	}

	got, isOpen, found = pickWindow(spans, now, false)
	if !found || isOpen || got != future {
		t.Errorf("without ongoing: got %v open=%v found=%v, want the future span", got, isOpen, found)
	}

	_, _, found = pickWindow([]eorzea.Span{past}, now, true)
	if found {
		t.Error("an ended span should not be picked")
	}

	_, _, found = pickWindow(nil, now, true)
	if found {
		t.Error("empty spans should report no window")
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want string
	}{
		{"pinned", Row{State: store.State{Pinned: true}}, "Pinned"},
		{"pinned wins over open", Row{State: store.State{Pinned: true}, HasWindow: true, Open: true}, "Pinned"},
		{"no window", Row{}, "No Window"},
		{"open", Row{HasWindow: true, Open: true}, "Open Now"},
		{"next hour", Row{HasWindow: true, Until: 30 * time.Minute}, "Next Hour"},
		{"today", Row{HasWindow: true, Until: 5 * time.Hour}, "Today"},
		{"this week", Row{HasWindow: true, Until: 3 * 24 * time.Hour}, "This Week"},
		{"later", Row{HasWindow: true, Until: 10 * 24 * time.Hour}, "Later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bandFor(tt.row); got != tt.want {
				t.Errorf("bandFor = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDurShort(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "<1m"},
		{5 * time.Minute, "5m"},
		{59*time.Minute + 59*time.Second, "59m"},
		{2*time.Hour + 5*time.Minute, "2h05m"},
		{26 * time.Hour, "1d2h"},
		{76 * time.Hour, "3d4h"},
	}

	for _, tt := range tests {
		if got := durShort(tt.d); got != tt.want {
			t.Errorf("durShort(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCountdownFor(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want string
	}{
		{"no window", Row{}, "--"},
		{"open", Row{HasWindow: true, Open: true, Until: 21 * time.Minute}, "open 21m"},
		{"future", Row{HasWindow: true, Until: 2*time.Hour + 5*time.Minute}, "in 2h05m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countdownFor(tt.row); got != tt.want {
				t.Errorf("countdownFor = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFuzzyRank(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"Fullmoon Sardine", "sardine", 0},
		{"Fullmoon Sardine", "SARD", 0},
		{"Fullmoon Sardine", "sardne", 1},
		{"Fullmoon Sardine", "carp", -1},
		{"Coral Butterfly", "", 0},
		{"Coral Butterfly", "  coral  ", 0},
	}

	for _, tt := range tests {
		if got := fuzzyRank(tt.name, tt.query); got != tt.want {
			t.Errorf("fuzzyRank(%q, %q) = %d, want %d", tt.name, tt.query, got, tt.want)
		}
	}
}

func TestRenderListEmpty(t *testing.T) {
	out := RenderList(nil, 0, 80, 20, true)
	if !strings.Contains(out, "No fish") {
		t.Errorf("empty list should show placeholder, got: %s", out)
	}
}

func TestRenderListBandHeaders(t *testing.T) {
	rows := []Row{
		listRow(1, "Open Fish"),
		listRow(2, "Soon Fish"),
		listRow(3, "Quiet Fish"),
	}
	rows[0].HasWindow = true
	rows[0].Open = true
	rows[1].HasWindow = true
	rows[1].Until = 30 * time.Minute

	out := RenderList(rows, 0, 80, 20, true)

	openIdx := strings.Index(out, "Open Now")
	hourIdx := strings.Index(out, "Next Hour")
	noneIdx := strings.Index(out, "No Window")
	if openIdx < 0 || hourIdx < 0 || noneIdx < 0 {
		t.Fatalf("missing band headers in output: %s", out)
	}
	if !(openIdx < hourIdx && hourIdx < noneIdx) {
		t.Error("band headers should appear in proximity order")
	}
}

func TestRenderListSuppressedBands(t *testing.T) {
	rows := []Row{listRow(1, "Open Fish")}
	rows[0].HasWindow = true
	rows[0].Open = true

	out := RenderList(rows, 0, 80, 20, false)
	if strings.Contains(out, "Open Now") {
		t.Error("band headers should be suppressed while filtering")
	}
}

func TestRenderListMarkers(t *testing.T) {
	pinned := listRow(1, "Pinned Fish")
	pinned.State.Pinned = true
	caught := listRow(2, "Caught Fish")
	caught.State.Caught = true

	out := RenderList([]Row{pinned, caught}, 0, 80, 20, true)

	if !strings.Contains(out, "★") {
		t.Error("pinned row should carry the star marker")
	}
	if !strings.Contains(out, "✓") {
		t.Error("caught row should carry the check marker")
	}
	if !strings.Contains(out, "--") {
		t.Error("windowless rows should show -- in the countdown column")
	}
}

func TestCalcScrollOffsetNoBands(t *testing.T) {
	rows := make([]Row, 10)
	for i := range rows {
		rows[i] = listRow(uint32(i+1), "Fish")
	}

	if got := calcScrollOffset(rows, 2, 5, false); got != 0 {
		t.Errorf("cursor inside viewport: offset = %d, want 0", got)
	}
	if got := calcScrollOffset(rows, 9, 5, false); got != 5 {
		t.Errorf("cursor at bottom: offset = %d, want 5", got)
	}
	if got := calcScrollOffset(rows, -1, 5, false); got != 0 {
		t.Errorf("no cursor: offset = %d, want 0", got)
	}
}

func TestCalcScrollOffsetWithBands(t *testing.T) {
	// One band throughout: only the very first window pays the
	// header line.
	rows := make([]Row, 10)
	for i := range rows {
		rows[i] = listRow(uint32(i+1), "Fish")
	}

	if got := calcScrollOffset(rows, 3, 5, true); got != 0 {
		t.Errorf("header plus four rows fit: offset = %d, want 0", got)
	}
	if got := calcScrollOffset(rows, 9, 5, true); got != 5 {
		t.Errorf("mid-band window needs no header: offset = %d, want 5", got)
	}

	// Two bands: scrolling across the boundary pays an extra header
	// line, pushing the offset one past the optimistic guess.
	for i := 0; i < 2; i++ {
		rows[i].State.Pinned = true
	}
	if got := calcScrollOffset(rows, 2, 3, true); got != 1 {
		t.Errorf("band boundary: offset = %d, want 1", got)
	}
}

func TestVisibleLineCount(t *testing.T) {
	rows := []Row{
		listRow(1, "A"),
		listRow(2, "B"),
		listRow(3, "C"),
	}
	rows[0].State.Pinned = true

	// Header for Pinned, row, header for No Window, two rows.
	if got := visibleLineCount(rows, 0, 2); got != 5 {
		t.Errorf("visibleLineCount(0,2) = %d, want 5", got)
	}
	// Starting past the boundary sees only the No Window rows.
	if got := visibleLineCount(rows, 2, 2); got != 1 {
		t.Errorf("visibleLineCount(2,2) = %d, want 1", got)
	}
}

func TestFadeDots(t *testing.T) {
	if got := fadeDots(0); got != "" {
		t.Errorf("fadeDots(0) = %q, want empty", got)
	}
	if got := fadeDots(1); got != " " {
		t.Errorf("fadeDots(1) = %q, want single space", got)
	}
	got := fadeDots(5)
	if len(got) != 5 {
		t.Errorf("fadeDots(5) length = %d, want 5", len(got))
	}
	if !strings.HasSuffix(got, " ") {
		t.Error("fadeDots should end with a space gap")
	}
}

func TestZonePaletteColorStable(t *testing.T) {
	a := zonePaletteColor("Lower La Noscea")
	b := zonePaletteColor("Lower La Noscea")
	if a != b {
		t.Errorf("palette color should be stable, got %v then %v", a, b)
	}
	if string(a) == "" {
		t.Error("palette color should not be empty")
	}
}

func TestRenderStatusBar(t *testing.T) {
	updated := time.Date(2024, 3, 5, 9, 30, 15, 0, time.UTC)

	out := RenderStatusBar(0, 3, 3, 120, false, updated)
	if !strings.Contains(out, "1/3") {
		t.Error("status bar should show the cursor position")
	}
	if strings.Contains(out, "of 3") {
		t.Error("status bar should omit the total when nothing is hidden")
	}
	if !strings.Contains(out, "updated 09:30:15") {
		t.Error("status bar should show the computation time")
	}
	if !strings.Contains(out, ":quit") || !strings.Contains(out, ":refresh") {
		t.Error("status bar should list the key hints")
	}

	out = RenderStatusBar(1, 2, 14, 120, false, updated)
	if !strings.Contains(out, "2/2") || !strings.Contains(out, "of 14") {
		t.Error("status bar should show hidden totals")
	}

	out = RenderStatusBar(0, 0, 0, 120, true, time.Time{})
	if !strings.Contains(out, "computing") {
		t.Error("status bar should show the loading state")
	}
}

func TestRenderFilterBar(t *testing.T) {
	out := RenderFilterBar("/cor", 2, 14, 80)
	if !strings.Contains(out, "/cor") {
		t.Error("filter bar should echo the input")
	}
	if !strings.Contains(out, "2/14") {
		t.Error("filter bar should show the match count")
	}
}
