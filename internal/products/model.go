package products

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateCode = errors.New("product code already in use")
)

const (
	EventsQueue  = "products.events"
	EventCreated = "product_created"
	EventUpdated = "product_updated"
	EventDeleted = "product_deleted"
)

type Product struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title" example:"Mouse"`
	Description string    `json:"description" example:"Wireless mouse"`
	Price       int64     `json:"price" example:"25"`
	Stock       int64     `json:"stock" example:"10"`
	Thumbnails  []string  `json:"thumbnail" example:"img.png"`
	Code        string    `json:"code" example:"MOUSE01"`
	Status      bool      `json:"status" example:"true"`
	Category    string    `json:"category" example:"peripherals"`
	CreatedAt   time.Time `json:"created_at" example:"2026-02-24T12:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2026-02-24T12:00:00Z"`
}

// Filter narrows a product listing. Nil pointers mean "any".
type Filter struct {
	Category string
	Status   *bool
	Sort     SortOrder
}

type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "asc"
	SortPriceDesc SortOrder = "desc"
)

// Page is one slice of a filtered listing together with the total number of
// matching products.
type Page struct {
	Items []Product
	Total int64
	Page  int
	Limit int
}

type ProductEvent struct {
	EventType string    `json:"event_type"`
	ProductID int64     `json:"product_id"`
	Code      string    `json:"code,omitempty"`
	Title     string    `json:"title,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
