package model

// Dashboard is the overview screen payload.
type Dashboard struct {
	TotalRetailers   int              `json:"totalRetailers"`
	TotalStores      int              `json:"totalStores"`
	TotalProducts    int              `json:"totalProducts"`
	NetworkProducts  int              `json:"networkProducts"`
	TopRetailer      string           `json:"topRetailer"`
	Impressions      []MonthlyMetric  `json:"impressions"`
	CategoryProducts []CategoryMetric `json:"categoryProducts"`
	RecentActivity   []ActivityEntry  `json:"recentActivity"`
}

// MonthlyMetric is one point of the impressions series.
type MonthlyMetric struct {
	Month       string `json:"month" yaml:"month"`
	Impressions int    `json:"impressions" yaml:"impressions"`
}

// CategoryMetric is the network-wide product total for a category.
type CategoryMetric struct {
	Category string `json:"category" yaml:"category"`
	Products int    `json:"products" yaml:"products"`
}

// ActivityEntry is one item of the recent activity feed.
type ActivityEntry struct {
	Action string `json:"action" yaml:"action"`
	Time   string `json:"time" yaml:"time"`
	Type   string `json:"type" yaml:"type"`
}
