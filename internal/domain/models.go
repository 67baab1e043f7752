package domain

import "time"

// Order statuses, in the order the kitchen moves them through.
const (
	StatusNew       = "new"
	StatusPreparing = "preparing"
	StatusCompleted = "completed"
)

// DefaultBusinessID is used when an inbound order carries no tenant.
const DefaultBusinessID = "default"

type Order struct {
	ID                  int64       `json:"id"`
	BusinessID          string      `json:"businessId"`
	OrderNumber         string      `json:"orderNumber"`
	CustomerName        string      `json:"customerName"`
	CustomerPhone       string      `json:"customerPhone"`
	Items               []OrderItem `json:"items"`
	SpecialInstructions string      `json:"specialInstructions"`
	Total               float64     `json:"total"`
	Status              string      `json:"status"`
	CreatedAt           time.Time   `json:"createdAt"`
}

type OrderItem struct {
	Name          string   `json:"name"`
	Quantity      int      `json:"quantity"`
	Modifications []string `json:"modifications"`
}

// KnownStatus reports whether s is one of the three order statuses.
func KnownStatus(s string) bool {
	switch s {
	case StatusNew, StatusPreparing, StatusCompleted:
		return true
	}
	return false
}
