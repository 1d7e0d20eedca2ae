package planogram

import "retailvision/internal/model"

var floorZones = []model.Zone{
	{ID: "A1", Name: "Electronics - Left", X: 50, Y: 100, Width: 150, Height: 100},
	{ID: "A2", Name: "Electronics - Right", X: 250, Y: 100, Width: 150, Height: 100},
	{ID: "B1", Name: "Clothing - Front", X: 50, Y: 250, Width: 200, Height: 120},
	{ID: "B2", Name: "Footwear", X: 300, Y: 250, Width: 150, Height: 120},
	{ID: "C1", Name: "Accessories", X: 150, Y: 400, Width: 180, Height: 80},
}

// Zones returns the fixed floor zones.
func Zones() []model.Zone {
	return append([]model.Zone(nil), floorZones...)
}

// HasZone reports whether id names one of the floor zones.
func HasZone(id string) bool {
	for _, z := range floorZones {
		if z.ID == id {
			return true
		}
	}
	return false
}
