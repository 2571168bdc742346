package models

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// OrderItemInput is what a customer submits: an item reference and a count.
type OrderItemInput struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// OrderItem is the snapshot stored with the order, so later menu edits do
// not rewrite history.
type OrderItem struct {
	ItemID     int64  `json:"itemId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

type Order struct {
	ID            int64       `json:"id"`
	BusinessID    int64       `json:"businessId"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Items         []OrderItem `json:"items"`
	TotalCents    int64       `json:"totalCents"`
	Status        string      `json:"status"`
}
