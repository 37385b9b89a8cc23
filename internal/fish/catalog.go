package fish

import (
	"sort"
	"strings"
)

// Item is a game item referenced from a catch path.
type Item struct {
	ID   uint32
	Name string
	Icon string
	ILvl int
}

// Catalog owns the immutable fish graph (regions shared by spots,
// spots shared by fish) plus the item table catch paths point into.
// Built once by the loader and then only read, so concurrent queries
// need no locking.
type Catalog struct {
	fish     []*Fish
	fishByID map[uint32]*Fish
	regions  []*Region
	items    map[uint32]Item
}

// NewCatalog assembles a catalog. Fish are ordered by id and regions
// by name so iteration is deterministic.
func NewCatalog(fishes []*Fish, regions []*Region, items []Item) *Catalog {
	c := &Catalog{
		fish:     append([]*Fish(nil), fishes...),
		fishByID: make(map[uint32]*Fish, len(fishes)),
		regions:  append([]*Region(nil), regions...),
		items:    make(map[uint32]Item, len(items)),
	}
	sort.Slice(c.fish, func(i, j int) bool { return c.fish[i].ID < c.fish[j].ID })
	sort.Slice(c.regions, func(i, j int) bool { return c.regions[i].Name < c.regions[j].Name })
	for _, f := range c.fish {
		c.fishByID[f.ID] = f
	}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

// Fish returns all fish, ordered by id. Callers must not modify the
// returned slice.
func (c *Catalog) Fish() []*Fish { return c.fish }

// Len returns the number of fish in the catalog.
func (c *Catalog) Len() int { return len(c.fish) }

// FishByID looks up one fish.
func (c *Catalog) FishByID(id uint32) (*Fish, bool) {
	f, ok := c.fishByID[id]
	return f, ok
}

// FishByName finds a fish by case-insensitive exact name.
func (c *Catalog) FishByName(name string) (*Fish, bool) {
	for _, f := range c.fish {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return nil, false
}

// Regions returns all weather zones, ordered by name.
func (c *Catalog) Regions() []*Region { return c.regions }

// RegionByName finds a zone by case-insensitive exact name.
func (c *Catalog) RegionByName(name string) (*Region, bool) {
	for _, r := range c.regions {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return nil, false
}

// Item looks up the item table.
func (c *Catalog) Item(id uint32) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// BaitName resolves a fish's bait variant to display text.
func (c *Catalog) BaitName(f *Fish) string {
	switch f.Bait.Kind {
	case BaitItem:
		if it, ok := c.items[f.Bait.ID]; ok {
			return it.Name
		}
	case BaitMooch:
		if target, ok := c.fishByID[f.Bait.ID]; ok {
			return target.Name + " (mooch)"
		}
	}
	return "Unknown"
}

// BaitChain resolves a fish's full catch path to display names, bait
// first. Ids that resolve to neither an item nor a fish render as
// "?".
func (c *Catalog) BaitChain(f *Fish) []string {
	out := make([]string, 0, len(f.CatchPath))
	for _, id := range f.CatchPath {
		if it, ok := c.items[id]; ok {
			out = append(out, it.Name)
			continue
		}
		if target, ok := c.fishByID[id]; ok {
			out = append(out, target.Name)
			continue
		}
		out = append(out, "?")
	}
	return out
}
