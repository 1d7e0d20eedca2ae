package model

// Product represents an item in a store's catalogue.
type Product struct {
	ID        int     `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Category  string  `json:"category" yaml:"category"`
	Price     float64 `json:"price" yaml:"price"`
	SKU       string  `json:"sku" yaml:"sku"`
	Stock     int     `json:"stock" yaml:"stock"`
	Placement string  `json:"placement" yaml:"placement"`
	Image     string  `json:"image" yaml:"image"`
}

// CategoryCount is the number of catalogue products in one category.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
