// Package geo maps free-text call locations to map coordinates using a
// fixed gazetteer of known place-name fragments.
package geo

import "strings"

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Entry maps a lower-case place-name fragment to coordinates.
type Entry struct {
	Name   string
	Coords Coordinates
}

// Gazetteer is an ordered list of entries. The order matters: Resolve
// scans front to back and the first match wins, so a slice (never a
// map) keeps resolution deterministic when several names could match.
type Gazetteer []Entry

// Default returns the built-in gazetteer used by the dispatch map.
func Default() Gazetteer {
	return Gazetteer{
		{Name: "legion square", Coords: Coordinates{Lat: 34.0522, Lng: -118.2437}},
		{Name: "vinewood blvd", Coords: Coordinates{Lat: 34.1015, Lng: -118.3261}},
		{Name: "vespucci beach", Coords: Coordinates{Lat: 33.9850, Lng: -118.4695}},
		{Name: "rockford hills", Coords: Coordinates{Lat: 34.0736, Lng: -118.4004}},
		{Name: "downtown", Coords: Coordinates{Lat: 34.0522, Lng: -118.2437}},
		{Name: "sandy shores", Coords: Coordinates{Lat: 34.4208, Lng: -117.9501}},
		{Name: "paleto bay", Coords: Coordinates{Lat: 34.4629, Lng: -118.8206}},
		{Name: "ls airport", Coords: Coordinates{Lat: 33.9416, Lng: -118.4085}},
		{Name: "del perro", Coords: Coordinates{Lat: 34.0195, Lng: -118.4912}},
		{Name: "mirror park", Coords: Coordinates{Lat: 34.0736, Lng: -118.1805}},
	}
}

// Resolve returns the coordinates of the first entry whose name is a
// substring of text, compared case-insensitively. ok is false when no
// entry matches; that is a normal outcome, not an error.
func (g Gazetteer) Resolve(text string) (coords Coordinates, ok bool) {
	lower := strings.ToLower(text)
	for _, e := range g {
		if strings.Contains(lower, e.Name) {
			return e.Coords, true
		}
	}
	return Coordinates{}, false
}
