package models

import "github.com/shopspring/decimal"

// Order represents a customer order as listed on the orders screen
type Order struct {
	ID           string          `json:"_id" yaml:"id"`
	Number       string          `json:"orderNumber" yaml:"number"`
	CustomerName string          `json:"customerName" yaml:"customer"`
	Restaurant   string          `json:"restaurantName" yaml:"restaurant"`
	Status       string          `json:"status" yaml:"status"`
	Items        []OrderItem     `json:"items,omitempty" yaml:"items,omitempty"`
	Total        decimal.Decimal `json:"totalAmount" yaml:"total"`
	AgentName    string          `json:"deliveryAgent,omitempty" yaml:"agent,omitempty"`
	PlacedAt     string          `json:"createdAt" yaml:"placed_at"`
}

// OrderItem represents a single line of an order
type OrderItem struct {
	Name     string          `json:"name" yaml:"name"`
	Quantity int             `json:"quantity" yaml:"quantity"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
}

// WalletTransaction represents one row of the wallet transaction report
type WalletTransaction struct {
	ID        string          `json:"_id" yaml:"id"`
	UserName  string          `json:"userName" yaml:"user"`
	Type      string          `json:"type" yaml:"type"`
	Amount    decimal.Decimal `json:"amount" yaml:"amount"`
	Reference string          `json:"reference,omitempty" yaml:"reference,omitempty"`
	Status    string          `json:"status" yaml:"status"`
	CreatedAt string          `json:"createdAt" yaml:"created_at"`
}
