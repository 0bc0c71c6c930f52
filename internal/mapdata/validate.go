package mapdata

import "fmt"

// Validate checks a map snapshot once at the boundary. A valid map may
// still contain hexes the host has no geometry for; those are dropped
// later with a warning, not rejected here.
func (m *Map) Validate() error {
	seen := make(map[string]struct{}, len(m.Hexes))
	for i, h := range m.Hexes {
		key := h.ID.String()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("hex %d: duplicate id %s", i, key)
		}
		seen[key] = struct{}{}

		switch h.Travel {
		case TravelOpen, TravelDifficult, TravelGreaterDifficult:
		case "":
			return fmt.Errorf("hex %s: missing travel difficulty", key)
		default:
			return fmt.Errorf("hex %s: unknown travel difficulty %q", key, h.Travel)
		}
	}

	for i, r := range m.Rivers {
		reprs := 0
		if len(r.Cells) > 0 {
			reprs++
		}
		if len(r.Path) > 0 {
			reprs++
		}
		if len(r.Legacy) > 0 {
			reprs++
		}
		if reprs == 0 {
			return fmt.Errorf("river %d (%s): no representation", i, r.Name)
		}
		for j, a := range r.Legacy {
			switch a.Kind {
			case AnchorCenter:
			case AnchorCorner, AnchorEdge:
				if a.Index < 0 || a.Index > 5 {
					return fmt.Errorf("river %d point %d: %s index %d out of range", i, j, a.Kind, a.Index)
				}
			default:
				return fmt.Errorf("river %d point %d: unknown anchor kind %q", i, j, a.Kind)
			}
		}
	}

	return nil
}
