package march

import (
	"encoding/binary"
	"sort"

	"golang.org/x/crypto/blake2b"

	"hexmarch/internal/mapdata"
)

// contentHash digests everything a graph rebuild depends on: per-hex
// movement facts, water-feature collection sizes, and polyline point
// counts. Hexes are hashed in sorted id order so the digest never depends
// on input ordering.
func contentHash(m *mapdata.Map) []byte {
	h, _ := blake2b.New256(nil)

	hexes := make([]mapdata.Hex, len(m.Hexes))
	copy(hexes, m.Hexes)
	sort.Slice(hexes, func(i, j int) bool {
		if hexes[i].ID.Col != hexes[j].ID.Col {
			return hexes[i].ID.Col < hexes[j].ID.Col
		}
		return hexes[i].ID.Row < hexes[j].ID.Row
	})

	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	writeBool := func(v bool) {
		if v {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}

	writeInt(len(hexes))
	for _, hx := range hexes {
		h.Write([]byte(hx.ID.String()))
		h.Write([]byte{0})
		h.Write([]byte(hx.Terrain))
		h.Write([]byte{0})
		h.Write([]byte(hx.Travel))
		h.Write([]byte{0})
		writeBool(hx.HasRoad)
		writeBool(hx.HasSettlement())
	}

	writeInt(len(m.Rivers))
	for _, r := range m.Rivers {
		writeInt(len(r.Cells))
		writeInt(len(r.Path))
		writeInt(len(r.Legacy))
	}
	writeInt(len(m.Lakes))
	for _, l := range m.Lakes {
		writeInt(len(l.Cells))
	}
	writeInt(len(m.Crossings))
	for _, c := range m.Crossings {
		writeInt(len(c.Cells))
	}
	writeInt(len(m.Passages))
	for _, p := range m.Passages {
		writeInt(len(p.Cells))
	}

	return h.Sum(nil)
}
