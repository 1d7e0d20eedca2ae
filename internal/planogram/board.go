// Package planogram holds the zone-to-product placement board. A Board is an
// immutable value; every operation returns a new Board.
package planogram

import (
	"sort"

	"retailvision/internal/model"
)

// Board maps zone ids to the product displayed there. A zone absent from the
// map is empty.
type Board struct {
	placements map[string]model.Product
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{placements: map[string]model.Product{}}
}

// FromPlacements builds a board from zone assignments. Later entries for the
// same zone win.
func FromPlacements(placements []model.Placement) Board {
	b := NewBoard()
	for _, p := range placements {
		b.placements[p.ZoneID] = p.Product
	}
	return b
}

func (b Board) copyPlacements() map[string]model.Product {
	out := make(map[string]model.Product, len(b.placements)+1)
	for k, v := range b.placements {
		out[k] = v
	}
	return out
}

// Assign places product in zoneID, replacing whatever the zone held. The same
// product may be assigned to several zones.
func (b Board) Assign(zoneID string, product model.Product) Board {
	next := b.copyPlacements()
	next[zoneID] = product
	return Board{placements: next}
}

// Unassign removes productID from every zone holding it.
func (b Board) Unassign(productID int) Board {
	next := b.copyPlacements()
	for zone, p := range next {
		if p.ID == productID {
			delete(next, zone)
		}
	}
	return Board{placements: next}
}

// At returns the product displayed in zoneID.
func (b Board) At(zoneID string) (model.Product, bool) {
	p, ok := b.placements[zoneID]
	return p, ok
}

// ZoneOf returns the lowest zone id holding productID.
func (b Board) ZoneOf(productID int) (string, bool) {
	for _, p := range b.Placements() {
		if p.Product.ID == productID {
			return p.ZoneID, true
		}
	}
	return "", false
}

// Len returns the number of occupied zones.
func (b Board) Len() int {
	return len(b.placements)
}

// Placements returns the occupied zones ordered by zone id.
func (b Board) Placements() []model.Placement {
	out := make([]model.Placement, 0, len(b.placements))
	for zone, p := range b.placements {
		out = append(out, model.Placement{ZoneID: zone, Product: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ZoneID < out[j].ZoneID })
	return out
}

// Items flattens the board into persistable zone/product id pairs.
func (b Board) Items() []model.LayoutItem {
	placements := b.Placements()
	items := make([]model.LayoutItem, len(placements))
	for i, p := range placements {
		items[i] = model.LayoutItem{ZoneID: p.ZoneID, ProductID: p.Product.ID}
	}
	return items
}
