package seed

import "retailvision/internal/model"

// Default returns the built-in sample dataset. Each call returns fresh slices.
func Default() *Dataset {
	return &Dataset{
		Retailers: []model.Retailer{
			{ID: 1, Name: "TechMart", Country: "United States", DateAdded: "2024-09-15", Stores: 47, Products: 2847, Status: model.RetailerActive},
			{ID: 2, Name: "FashionPlus", Country: "Canada", DateAdded: "2024-08-22", Stores: 23, Products: 1456, Status: model.RetailerActive},
			{ID: 3, Name: "SportZone", Country: "United Kingdom", DateAdded: "2024-08-10", Stores: 34, Products: 987, Status: model.RetailerActive},
			{ID: 4, Name: "HomeDecor Co", Country: "Australia", DateAdded: "2024-07-28", Stores: 18, Products: 756, Status: model.RetailerPending},
			{ID: 5, Name: "ElectroHub", Country: "Germany", DateAdded: "2024-07-15", Stores: 52, Products: 3241, Status: model.RetailerActive},
		},
		Stores: []model.Store{
			{ID: "ST001", Name: "TechMart Downtown", Location: "123 Main St, New York, NY", Floors: 3, Categories: 8, Products: 1247, DateAdded: "2024-08-15", Status: model.StoreActive},
			{ID: "ST002", Name: "FashionPlus Mall", Location: "456 Shopping Blvd, Los Angeles, CA", Floors: 2, Categories: 12, Products: 2156, DateAdded: "2024-08-10", Status: model.StoreActive},
			{ID: "ST003", Name: "SportZone Express", Location: "789 Sports Ave, Chicago, IL", Floors: 1, Categories: 6, Products: 845, DateAdded: "2024-07-22", Status: model.StoreActive},
			{ID: "ST004", Name: "HomeDecor Outlet", Location: "321 Decor St, Miami, FL", Floors: 2, Categories: 10, Products: 1678, DateAdded: "2024-07-18", Status: model.StoreSetup},
			{ID: "ST005", Name: "ElectroHub Central", Location: "654 Tech Park, Seattle, WA", Floors: 4, Categories: 15, Products: 3429, DateAdded: "2024-06-30", Status: model.StoreActive},
		},
		Products: []model.Product{
			{ID: 1, Name: "iPhone 15 Pro", Category: "Electronics", Price: 999, SKU: "IPH15P-128", Stock: 45, Placement: "Zone A1", Image: "📱"},
			{ID: 2, Name: "Samsung Galaxy S24", Category: "Electronics", Price: 799, SKU: "SGS24-256", Stock: 32, Placement: "Zone A2", Image: "📱"},
			{ID: 3, Name: "MacBook Air M3", Category: "Electronics", Price: 1299, SKU: "MBA-M3-512", Stock: 18, Placement: "Zone A1", Image: "💻"},
			{ID: 4, Name: "AirPods Pro", Category: "Electronics", Price: 249, SKU: "APP-2ND", Stock: 67, Placement: "Zone A2", Image: "🎧"},
			{ID: 5, Name: "Nike Air Max 270", Category: "Footwear", Price: 129, SKU: "NAM270-9", Stock: 23, Placement: "Zone B2", Image: "👟"},
			{ID: 6, Name: "Adidas Ultraboost 22", Category: "Footwear", Price: 159, SKU: "AUB22-10", Stock: 19, Placement: "Zone B2", Image: "👟"},
			{ID: 7, Name: "Levi's 501 Jeans", Category: "Clothing", Price: 79, SKU: "LEV501-32", Stock: 41, Placement: "Zone B1", Image: "👖"},
			{ID: 8, Name: "H&M Cotton T-Shirt", Category: "Clothing", Price: 19, SKU: "HM-TEE-M", Stock: 89, Placement: "Zone B1", Image: "👕"},
		},
		Flows: []model.CategoryFlow{
			{
				ID:           "electronics",
				Name:         "Electronics Category Flow",
				Description:  "Configuration flow for electronics products",
				Version:      3,
				LastModified: "2024-09-20",
				Status:       model.FlowActive,
				Questions: []model.Question{
					{ID: "brand", Text: "What is the product brand?", Type: model.QuestionText, Required: true},
					{ID: "warranty", Text: "Does this product include warranty?", Type: model.QuestionBoolean, Required: true},
					{ID: "category", Text: "Select product category", Type: model.QuestionMultipleChoice, Options: []string{"Smartphones", "Laptops", "Tablets", "Accessories"}, Required: true},
				},
			},
			{
				ID:           "clothing",
				Name:         "Clothing Category Flow",
				Description:  "Configuration flow for clothing and apparel",
				Version:      2,
				LastModified: "2024-09-18",
				Status:       model.FlowActive,
				Questions: []model.Question{
					{ID: "size", Text: "Available sizes", Type: model.QuestionMultipleChoice, Options: []string{"XS", "S", "M", "L", "XL", "XXL"}, Required: true},
					{ID: "material", Text: "Primary material", Type: model.QuestionText, Required: true},
					{ID: "care", Text: "Care instructions", Type: model.QuestionText, Required: false},
				},
			},
			{
				ID:           "footwear",
				Name:         "Footwear Category Flow",
				Description:  "Configuration flow for shoes and footwear",
				Version:      1,
				LastModified: "2024-09-15",
				Status:       model.FlowDraft,
				Questions: []model.Question{
					{ID: "size", Text: "Shoe sizes available", Type: model.QuestionMultipleChoice, Options: []string{"6", "7", "8", "9", "10", "11", "12"}, Required: true},
					{ID: "type", Text: "Footwear type", Type: model.QuestionMultipleChoice, Options: []string{"Sneakers", "Boots", "Sandals", "Formal"}, Required: true},
				},
			},
		},
		Impressions: []model.MonthlyMetric{
			{Month: "Jan", Impressions: 12400},
			{Month: "Feb", Impressions: 15300},
			{Month: "Mar", Impressions: 18200},
			{Month: "Apr", Impressions: 21100},
			{Month: "May", Impressions: 19800},
			{Month: "Jun", Impressions: 23500},
		},
		CategoryTotals: []model.CategoryMetric{
			{Category: "Electronics", Products: 245},
			{Category: "Clothing", Products: 189},
			{Category: "Home & Garden", Products: 156},
			{Category: "Sports", Products: 134},
			{Category: "Beauty", Products: 98},
		},
		Activity: []model.ActivityEntry{
			{Action: `New retailer "TechMart" onboarded`, Time: "2 hours ago", Type: "retailer"},
			{Action: `Product catalog updated for "FashionPlus"`, Time: "4 hours ago", Type: "product"},
			{Action: "New store location added in NYC", Time: "6 hours ago", Type: "store"},
			{Action: `QR code generated for "SportZone"`, Time: "1 day ago", Type: "qr"},
			{Action: "Digital shelf layout updated", Time: "2 days ago", Type: "layout"},
		},
	}
}
