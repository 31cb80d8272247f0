package domain

// OrderItem is one line of an order notification payload.
type OrderItem struct {
	PartID   string `json:"part_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price_cents"`
}

// OrderNotification is the JSON body posted when a customer places an order.
// The backend forwards a summary to the operator over SMS; it does not
// process payment or fulfillment.
type OrderNotification struct {
	OrderID       string      `json:"order_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	CustomerEmail string      `json:"customer_email,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalCents    int64       `json:"total_cents"`
}

// QuoteNotification is the JSON body posted when a customer requests a
// quote for a part.
type QuoteNotification struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	PartID        string `json:"part_id"`
	PartName      string `json:"part_name,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	Message       string `json:"message,omitempty"`
}
