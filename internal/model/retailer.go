package model

// Retailer status values.
const (
	RetailerActive  = "Active"
	RetailerPending = "Pending"
)

// Retailer represents a retail partner onboarded onto the platform.
type Retailer struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Country   string `json:"country" yaml:"country"`
	DateAdded string `json:"dateAdded" yaml:"dateAdded"`
	Stores    int    `json:"stores" yaml:"stores"`
	Products  int    `json:"products" yaml:"products"`
	Status    string `json:"status" yaml:"status"`
}
