// Package mapdata defines the typed map model consumed by the navigation
// grid and movement graph, plus loaders for YAML map files.
//
// All dynamic input (hex records, water features) is validated once at this
// boundary; downstream packages read the typed structures without re-checking.
package mapdata

import (
	"hexmarch/internal/hex"
)

// Travel is the travel-difficulty tier of a hex.
type Travel string

const (
	TravelOpen             Travel = "open"
	TravelDifficult        Travel = "difficult"
	TravelGreaterDifficult Travel = "greater-difficult"
)

// WaterKind classifies a hex's standing water.
type WaterKind string

const (
	WaterNone  WaterKind = "none"
	WaterLake  WaterKind = "lake"
	WaterSwamp WaterKind = "swamp"
)

// Terrain is the terrain category of a hex. The set is open-ended; only
// lake and swamp carry movement semantics (via WaterKind).
type Terrain string

const (
	TerrainPlains    Terrain = "plains"
	TerrainForest    Terrain = "forest"
	TerrainHills     Terrain = "hills"
	TerrainMountains Terrain = "mountains"
	TerrainSwamp     Terrain = "swamp"
	TerrainLake      Terrain = "lake"
)

// FeatureSettlement in a hex's feature list counts as a road for movement.
const FeatureSettlement = "settlement"

// Hex is one map hex record as supplied by the host.
type Hex struct {
	ID       hex.ID   `yaml:"id"`
	Terrain  Terrain  `yaml:"terrain"`
	Travel   Travel   `yaml:"travel"`
	HasRoad  bool     `yaml:"road,omitempty"`
	Features []string `yaml:"features,omitempty"`
}

// Water returns the hex's water classification, derived from terrain.
func (h Hex) Water() WaterKind {
	switch h.Terrain {
	case TerrainLake:
		return WaterLake
	case TerrainSwamp:
		return WaterSwamp
	}
	return WaterNone
}

// HasSettlement reports whether the feature list contains a settlement.
func (h Hex) HasSettlement() bool {
	for _, f := range h.Features {
		if f == FeatureSettlement {
			return true
		}
	}
	return false
}

// AnchorKind selects how a legacy river point attaches to its hex.
type AnchorKind string

const (
	AnchorCenter AnchorKind = "center"
	AnchorCorner AnchorKind = "corner"
	AnchorEdge   AnchorKind = "edge"
)

// Anchor is one point of a legacy pixel-space river polyline: a hex plus an
// edge/corner/center attachment. Index selects the corner or edge (0..5,
// clockwise from east); it is ignored for center anchors.
type Anchor struct {
	Hex    hex.ID     `yaml:"hex"`
	Kind   AnchorKind `yaml:"kind"`
	Index  int        `yaml:"index,omitempty"`
}

// PathPoint is one point of a cell-based river polyline. Points are sorted
// by Order before rasterization so input array order never matters.
type PathPoint struct {
	Cell  hex.Cell `yaml:"cell"`
	Order int      `yaml:"order"`
}

// River is one river feature in exactly one of three representations,
// listed from cheapest to most expensive to rasterize:
// pre-rasterized Cells, an ordered cell polyline Path, or a Legacy
// pixel-anchored polyline.
type River struct {
	Name   string      `yaml:"name,omitempty"`
	Cells  []hex.Cell  `yaml:"cells,omitempty"`
	Path   []PathPoint `yaml:"path,omitempty"`
	Legacy []Anchor    `yaml:"legacy,omitempty"`
}

// Lake is an area-painted water feature, already a cell set.
type Lake struct {
	Name  string     `yaml:"name,omitempty"`
	Cells []hex.Cell `yaml:"cells"`
}

// Crossing marks bridge/ford cells that cancel river/lake blocking.
type Crossing struct {
	Cells []hex.Cell `yaml:"cells"`
}

// Passage marks painted passage cells that cancel river/lake blocking.
type Passage struct {
	Cells []hex.Cell `yaml:"cells"`
}

// Map is the full map snapshot handed to a rebuild.
type Map struct {
	Hexes     []Hex      `yaml:"hexes"`
	Rivers    []River    `yaml:"rivers,omitempty"`
	Lakes     []Lake     `yaml:"lakes,omitempty"`
	Crossings []Crossing `yaml:"crossings,omitempty"`
	Passages  []Passage  `yaml:"passages,omitempty"`
}
