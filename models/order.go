package models

import "time"

// Order is an upstream-owned record fetched for the order history page.
type Order struct {
	ID          int         `json:"id"`
	OrderNumber string      `json:"order_number"`
	UserID      int         `json:"user_id"`
	Status      string      `json:"status"`
	Subtotal    float64     `json:"subtotal"`
	Shipping    float64     `json:"shipping_cost"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items,omitempty"`
}

// OrderItem is an individual product line within an upstream order.
type OrderItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}
