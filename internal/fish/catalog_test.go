package fish

import (
	"testing"

	"github.com/JonaEnz/fffish/internal/weather"
)

func testCatalog() *Catalog {
	region := &Region{
		ID:   22,
		Name: "Eastern La Noscea",
		Forecast: weather.NewForecast([]weather.Rate{
			{Threshold: 50, Weather: weather.Clouds},
			{Threshold: 100, Weather: weather.Rain},
		}),
	}
	spot := &Spot{ID: 31, Name: "Raincatcher Gully", Region: region}

	harbor := NewFish(4898, "Harbor Herring", spot, 0, 0, nil, nil)
	harbor.Bait = Bait{Kind: BaitItem, ID: 27588}
	harbor.CatchPath = []uint32{27588}

	warden := NewFish(4905, "Warden of the Seven Hues", spot, 0, 0,
		weather.Set{weather.Rain}, weather.Set{weather.Rain})
	warden.Bait = Bait{Kind: BaitMooch, ID: 4898}
	warden.CatchPath = []uint32{27588, 4898}

	items := []Item{{ID: 27588, Name: "Pill Bug", ILvl: 1}}
	// Deliberately unsorted input.
	return NewCatalog([]*Fish{warden, harbor}, []*Region{region}, items)
}

func TestCatalogLookups(t *testing.T) {
	c := testCatalog()

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	f, ok := c.FishByID(4898)
	if !ok || f.Name != "Harbor Herring" {
		t.Errorf("FishByID(4898) = %v, %v", f, ok)
	}
	if _, ok := c.FishByID(1); ok {
		t.Error("FishByID(1) should miss")
	}

	f, ok = c.FishByName("warden of the seven hues")
	if !ok || f.ID != 4905 {
		t.Errorf("FishByName case-insensitive lookup failed: %v, %v", f, ok)
	}

	r, ok := c.RegionByName("eastern la noscea")
	if !ok || r.ID != 22 {
		t.Errorf("RegionByName lookup failed: %v, %v", r, ok)
	}

	if _, ok := c.Item(27588); !ok {
		t.Error("Item(27588) should resolve")
	}
}

func TestCatalogOrder(t *testing.T) {
	c := testCatalog()
	fishes := c.Fish()
	if fishes[0].ID != 4898 || fishes[1].ID != 4905 {
		t.Errorf("fish not ordered by id: %d, %d", fishes[0].ID, fishes[1].ID)
	}
}

func TestBaitName(t *testing.T) {
	c := testCatalog()

	harbor, _ := c.FishByID(4898)
	if got := c.BaitName(harbor); got != "Pill Bug" {
		t.Errorf("item bait name = %q", got)
	}

	warden, _ := c.FishByID(4905)
	if got := c.BaitName(warden); got != "Harbor Herring (mooch)" {
		t.Errorf("mooch bait name = %q", got)
	}

	stray := NewFish(1, "Stray", nil, 0, 0, nil, nil)
	if got := c.BaitName(stray); got != "Unknown" {
		t.Errorf("unknown bait name = %q", got)
	}
}

func TestBaitChain(t *testing.T) {
	c := testCatalog()
	warden, _ := c.FishByID(4905)
	got := c.BaitChain(warden)
	want := []string{"Pill Bug", "Harbor Herring"}
	if len(got) != len(want) {
		t.Fatalf("chain length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chain[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
