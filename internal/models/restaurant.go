package models

import "github.com/shopspring/decimal"

// Restaurant represents a partner restaurant
type Restaurant struct {
	ID        string  `json:"_id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Area      string  `json:"area" yaml:"area"`
	Address   string  `json:"address,omitempty" yaml:"address,omitempty"`
	Mobile    string  `json:"mobileNumber,omitempty" yaml:"mobile,omitempty"`
	Cuisine   string  `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Status    string  `json:"status" yaml:"status"`
	Rating    float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	ImageURL  string  `json:"image,omitempty" yaml:"image,omitempty"`
	CreatedAt string  `json:"createdAt" yaml:"created_at"`
}

// Category represents a menu category
type Category struct {
	ID       string `json:"_id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ImageURL string `json:"image,omitempty" yaml:"image,omitempty"`
	Active   bool   `json:"isActive" yaml:"active"`
}

// FoodItem represents a menu item belonging to a restaurant
type FoodItem struct {
	ID           string          `json:"_id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	RestaurantID string          `json:"restaurant" yaml:"restaurant"`
	Category     string          `json:"category" yaml:"category"`
	Price        decimal.Decimal `json:"price" yaml:"price"`
	Veg          bool            `json:"isVeg" yaml:"veg"`
	Available    bool            `json:"isAvailable" yaml:"available"`
	ImageURL     string          `json:"image,omitempty" yaml:"image,omitempty"`
}
