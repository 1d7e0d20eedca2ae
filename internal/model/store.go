package model

// Store status values.
const (
	StoreActive = "Active"
	StoreSetup  = "Setup"
)

// Store represents a physical store location.
type Store struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Location   string `json:"location" yaml:"location"`
	Floors     int    `json:"floors" yaml:"floors"`
	Categories int    `json:"categories" yaml:"categories"`
	Products   int    `json:"products" yaml:"products"`
	DateAdded  string `json:"dateAdded" yaml:"dateAdded"`
	Status     string `json:"status" yaml:"status"`
}
