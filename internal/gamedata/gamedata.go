// Package gamedata parses the bundled Carbuncle Plushy export into
// the fish catalog. The export is a snapshot of community game data:
// top-level maps keyed by id strings, cross-linked by numeric ids.
//
// Records with dangling references (a fish at an unknown spot, a spot
// in an unknown zone) are dropped with a warning, never an error. A
// real snapshot always contains a few: spearfishing entries carry no
// location at all.
package gamedata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/JonaEnz/fffish/internal/eorzea"
	"github.com/JonaEnz/fffish/internal/fish"
	"github.com/JonaEnz/fffish/internal/logging"
	"github.com/JonaEnz/fffish/internal/weather"
)

//go:embed data.json
var rawData []byte

// Load parses the embedded snapshot.
func Load() (*fish.Catalog, error) {
	return Parse(rawData)
}

// document mirrors the export's top level. Field names follow the
// export, not Go style.
type document struct {
	Fish         map[string]fishRecord    `json:"FISH"`
	WeatherRates map[string]weatherRecord `json:"WEATHER_RATES"`
	Zones        map[string]zoneRecord    `json:"ZONES"`
	FishingSpots map[string]spotRecord    `json:"FISHING_SPOTS"`
	Items        map[string]itemRecord    `json:"ITEMS"`
}

type fishRecord struct {
	ID              uint32         `json:"_id"`
	PreviousWeather []uint32       `json:"previousWeatherSet"`
	WeatherSet      []uint32       `json:"weatherSet"`
	BestCatchPath   []pathEntry    `json:"bestCatchPath"`
	StartHour       float64        `json:"startHour"`
	EndHour         float64        `json:"endHour"`
	Location        *uint32        `json:"location"`
	IntuitionLength *uint32        `json:"intuitionLength"`
	IntuitionReqs   []intuitionReq `json:"intuitionReqs"`
	Tug             *string        `json:"tug"`
	Hookset         *string        `json:"hookset"`
	Lure            *string        `json:"lure"`
	Snagging        *bool          `json:"snagging"`
	Gig             *string        `json:"gig"`
	FishEyes        bool           `json:"fishEyes"`
	Folklore        *uint32        `json:"folklore"`
	Patch           float64        `json:"patch"`
}

type intuitionReq struct {
	Count int    `json:"count"`
	ID    uint32 `json:"id"`
}

// pathEntry accepts the export's value-or-array catch path elements.
// A plain number is one step; an array lists interchangeable baits
// for that step.
type pathEntry []uint32

func (p *pathEntry) UnmarshalJSON(b []byte) error {
	var one uint32
	if err := json.Unmarshal(b, &one); err == nil {
		*p = pathEntry{one}
		return nil
	}
	var many []uint32
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("catch path entry %s: %w", b, err)
	}
	*p = pathEntry(many)
	return nil
}

type weatherRecord struct {
	MapID    uint32      `json:"map_id"`
	MapScale uint32      `json:"map_scale"`
	ZoneID   uint32      `json:"zone_id"`
	RegionID uint32      `json:"region_id"`
	Rates    [][2]uint32 `json:"weather_rates"`
}

type zoneRecord struct {
	ID   uint32 `json:"_id"`
	Name string `json:"name_en"`
}

type spotRecord struct {
	ID          uint32     `json:"_id"`
	Name        string     `json:"name_en"`
	MapCoords   [3]float64 `json:"map_coords"`
	TerritoryID uint32     `json:"territory_id"`
	PlacenameID uint32     `json:"placename_id"`
}

type itemRecord struct {
	ID   uint32 `json:"_id"`
	Name string `json:"name_en"`
	Icon string `json:"icon"`
	ILvl int    `json:"ilvl"`
}

// Parse builds a catalog from a Carbuncle Plushy export.
func Parse(data []byte) (*fish.Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse game data: %w", err)
	}

	// Weather tables, keyed by territory. The zone map only supplies
	// display names; a missing entry is not a drop.
	regions := make(map[uint32]*fish.Region, len(doc.WeatherRates))
	zoneWeather := make(map[uint32]weather.Set, len(doc.WeatherRates))
	for key, wr := range doc.WeatherRates {
		territory, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			logging.Warn("skipping weather table with bad key", "key", key)
			continue
		}
		rates := make([]weather.Rate, len(wr.Rates))
		all := make(weather.Set, len(wr.Rates))
		for i, pair := range wr.Rates {
			rates[i] = weather.Rate{Threshold: pair[1], Weather: weather.Weather(pair[0])}
			all[i] = weather.Weather(pair[0])
		}
		name := fmt.Sprintf("Zone %d", territory)
		if z, ok := doc.Zones[key]; ok {
			name = z.Name
		}
		id := uint32(territory)
		regions[id] = &fish.Region{ID: id, Name: name, Forecast: weather.NewForecast(rates)}
		zoneWeather[id] = all
	}

	spots := make(map[uint32]*fish.Spot, len(doc.FishingSpots))
	droppedSpots := 0
	for _, sr := range doc.FishingSpots {
		region, ok := regions[sr.TerritoryID]
		if !ok {
			droppedSpots++
			logging.Warn("dropping spot in unknown zone", "spot", sr.Name, "territory", sr.TerritoryID)
			continue
		}
		spots[sr.ID] = &fish.Spot{
			ID:     sr.ID,
			Name:   sr.Name,
			Region: region,
			MapX:   sr.MapCoords[0],
			MapY:   sr.MapCoords[1],
		}
	}

	items := make([]fish.Item, 0, len(doc.Items))
	itemsByID := make(map[uint32]itemRecord, len(doc.Items))
	for _, ir := range doc.Items {
		items = append(items, fish.Item{ID: ir.ID, Name: ir.Name, Icon: ir.Icon, ILvl: ir.ILvl})
		itemsByID[ir.ID] = ir
	}

	fishes := make([]*fish.Fish, 0, len(doc.Fish))
	droppedFish := 0
	for _, fr := range doc.Fish {
		f, ok := buildFish(fr, spots, itemsByID, doc.Fish, zoneWeather)
		if !ok {
			droppedFish++
			continue
		}
		fishes = append(fishes, f)
	}

	regionList := make([]*fish.Region, 0, len(regions))
	for _, r := range regions {
		regionList = append(regionList, r)
	}

	logging.Info("game data loaded",
		"fish", len(fishes), "spots", len(spots), "zones", len(regionList), "items", len(items))
	if droppedFish > 0 || droppedSpots > 0 {
		logging.Warn("dropped unresolvable records", "fish", droppedFish, "spots", droppedSpots)
	}
	return fish.NewCatalog(fishes, regionList, items), nil
}

func buildFish(
	fr fishRecord,
	spots map[uint32]*fish.Spot,
	itemsByID map[uint32]itemRecord,
	records map[string]fishRecord,
	zoneWeather map[uint32]weather.Set,
) (*fish.Fish, bool) {
	// No location at all: spearfishing and legacy entries. Quietly
	// useless for a surface fisher.
	if fr.Location == nil {
		logging.Debug("dropping fish without location", "id", fr.ID)
		return nil, false
	}
	spot, ok := spots[*fr.Location]
	if !ok {
		logging.Warn("dropping fish at unknown spot", "id", fr.ID, "location", *fr.Location)
		return nil, false
	}
	item, ok := itemsByID[fr.ID]
	if !ok {
		logging.Warn("dropping fish without item entry", "id", fr.ID)
		return nil, false
	}

	// An empty weather set in the export means "no restriction". The
	// predictor works on membership, so substitute every condition the
	// zone produces.
	all := zoneWeather[spot.Region.ID]
	prev := toSet(fr.PreviousWeather, all)
	cur := toSet(fr.WeatherSet, all)

	start := eorzea.Duration(math.Round(fr.StartHour * float64(eorzea.Bell)))
	end := eorzea.Duration(math.Round(fr.EndHour * float64(eorzea.Bell)))
	f := fish.NewFish(fr.ID, item.Name, spot, start, end, prev, cur)

	f.CatchPath = flattenPath(fr.BestCatchPath)
	f.Bait = resolveBait(f.CatchPath, records, itemsByID)
	if fr.Tug != nil {
		f.Tug = fish.ParseTug(*fr.Tug)
	}
	if fr.Hookset != nil {
		f.Hookset = fish.ParseHookset(*fr.Hookset)
	}
	if fr.Lure != nil {
		f.Lure = fish.ParseLure(*fr.Lure)
	}
	if fr.IntuitionLength != nil {
		in := &fish.Intuition{Duration: time.Duration(*fr.IntuitionLength) * time.Second}
		for _, req := range fr.IntuitionReqs {
			in.Reqs = append(in.Reqs, fish.IntuitionReq{Count: req.Count, FishID: req.ID})
		}
		f.Intuition = in
	}
	f.Snagging = fr.Snagging != nil && *fr.Snagging
	f.Gig = fr.Gig != nil
	f.FishEyes = fr.FishEyes
	f.Folklore = fr.Folklore != nil
	f.Patch = fr.Patch
	return f, true
}

func toSet(ids []uint32, all weather.Set) weather.Set {
	if len(ids) == 0 {
		return all
	}
	set := make(weather.Set, len(ids))
	for i, id := range ids {
		set[i] = weather.Weather(id)
	}
	return set
}

func flattenPath(entries []pathEntry) []uint32 {
	var out []uint32
	for _, e := range entries {
		out = append(out, e...)
	}
	return out
}

// resolveBait reads the final catch path step: another fish record
// means a mooch, a known item means plain bait.
func resolveBait(path []uint32, records map[string]fishRecord, itemsByID map[uint32]itemRecord) fish.Bait {
	if len(path) == 0 {
		return fish.Bait{}
	}
	last := path[len(path)-1]
	if _, ok := records[strconv.FormatUint(uint64(last), 10)]; ok {
		return fish.Bait{Kind: fish.BaitMooch, ID: last}
	}
	if _, ok := itemsByID[last]; ok {
		return fish.Bait{Kind: fish.BaitItem, ID: last}
	}
	return fish.Bait{Kind: fish.BaitUnknown, ID: last}
}
