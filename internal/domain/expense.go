package domain

import "time"

// Expense is a single spend record owned by exactly one user. CategoryName
// and CategoryColor are read-time joins against the shared category pool and
// are empty on writes.
type Expense struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	CategoryID  int64   `json:"category_id"`
	Description string  `json:"description"`
	// Date is the day the expense occurred, ISO format (2006-01-02).
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CategoryName  string `json:"category_name,omitempty"`
	CategoryColor string `json:"category_color,omitempty"`
}
