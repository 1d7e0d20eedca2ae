package model

import "time"

// Zone is a named rectangular region of a store floor plan.
type Zone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Placement is a product assigned to a zone.
type Placement struct {
	ZoneID  string  `json:"zoneId"`
	Product Product `json:"product"`
}

// BoardView is the API view of a store's placement board.
type BoardView struct {
	StoreID    string      `json:"storeId"`
	Zones      []Zone      `json:"zones"`
	Placements []Placement `json:"placements"`
}

// AssignRequest is the payload for placing a product into a zone.
type AssignRequest struct {
	ProductID int `json:"productId"`
}

// LayoutItem is one persisted zone assignment.
type LayoutItem struct {
	ZoneID    string `json:"zoneId" db:"zone_id"`
	ProductID int    `json:"productId" db:"product_id"`
}

// Layout is a saved snapshot of a store's placement board.
type Layout struct {
	StoreID string       `json:"storeId" db:"store_id"`
	Version int          `json:"version" db:"version"`
	SavedAt time.Time    `json:"savedAt" db:"saved_at"`
	Items   []LayoutItem `json:"items"`
}

// ZoneLookup reports where a product is placed.
type ZoneLookup struct {
	ProductID int    `json:"productId"`
	ZoneID    string `json:"zoneId,omitempty"`
	Placed    bool   `json:"placed"`
}
