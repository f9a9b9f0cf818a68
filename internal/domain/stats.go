package domain

// Stats aggregates one user's expenses for the dashboard.
type Stats struct {
	Total      TotalStat       `json:"total"`
	Count      CountStat       `json:"count"`
	ByCategory []CategoryTotal `json:"byCategory"`
	Recent     []Expense       `json:"recent"`
}

type TotalStat struct {
	Total float64 `json:"total"`
}

type CountStat struct {
	Count int64 `json:"count"`
}

// CategoryTotal is the per-category slice of a user's spending.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}
