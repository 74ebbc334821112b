// Package order contains the core domain logic for ingredient orders.
package order

import "time"

// Order is a customer order for ingredients. TotalAmount is computed from
// live ingredient prices at creation time and never changes afterwards.
type Order struct {
	ID            uint      `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	TotalAmount   float64   `json:"total_amount"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// Item is a single order line. UnitPrice and Subtotal are snapshots taken
// at order time; later ingredient price changes must not alter them.
type Item struct {
	ID           uint    `json:"id"`
	OrderID      uint    `json:"order_id"`
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	Subtotal     float64 `json:"subtotal"`
}

// ItemDetail is an order line joined with display fields from the
// ingredient it references.
type ItemDetail struct {
	Item
	IngredientName string `json:"ingredient_name"`
	IngredientUnit string `json:"ingredient_unit"`
}

// Summary is an order annotated with its line count, used by the admin
// order listing.
type Summary struct {
	Order
	ItemCount int `json:"item_count"`
}

// Line is a requested order line before pricing.
type Line struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

// PricedLine is a requested line after a single price resolution. The same
// UnitPrice feeds both the order total and the persisted item snapshot so
// a concurrent price change cannot split the two.
type PricedLine struct {
	IngredientID uint
	Quantity     float64
	UnitPrice    float64
	Subtotal     float64
}

// Total sums the subtotals of priced lines.
func Total(lines []PricedLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal
	}
	return total
}
