package models

// Page represents one page of a collection endpoint's results together
// with the pagination metadata echoed by the backend envelope. Endpoints
// that return a bare array produce a single page covering the whole
// collection.
type Page[T any] struct {
	Items []T `json:"data" yaml:"data"`
	Page  int `json:"page" yaml:"page"`
	Pages int `json:"pages" yaml:"pages"`
	Total int `json:"total" yaml:"total"`
}

// ListParams represents the query parameters accepted by collection endpoints
type ListParams struct {
	Page   int               `json:"page"`
	Limit  int               `json:"limit"`
	Filter map[string]string `json:"filter,omitempty"`
}
