package model

import "time"

// PaymentMethodCOD is the only supported payment method.
const PaymentMethodCOD = "COD"

// OrderItem is one product reference inside an order payload.
type OrderItem struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the payload submitted to the order endpoint. It is built
// once at checkout and never mutated afterwards.
type OrderRequest struct {
	UserID        string      `json:"user"`
	Items         []OrderItem `json:"items"`
	Address       string      `json:"address"`
	Phone         string      `json:"phone"`
	PaymentMethod string      `json:"paymentMethod"`
}

// Order is the server's record of a placed order.
type Order struct {
	ID            string      `json:"_id"`
	UserID        string      `json:"user"`
	Items         []OrderItem `json:"items"`
	Address       string      `json:"address"`
	Phone         string      `json:"phone"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status,omitempty"`
	CreatedAt     time.Time   `json:"createdAt,omitempty"`
}
