// Package cart implements the in-memory shopping cart: an insertion-ordered
// list of line items keyed by product id, with totals derived on read.
package cart

import (
	"bakerra/internal/catalog"
	"bakerra/internal/money"
)

// LineItem is one product entry in the cart with its quantity.
// Invariants: at most one line item per product id, quantity >= 1.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice money.Amount
	Quantity  int
}

// lineItemFrom maps a catalog product to a fresh cart line item.
func lineItemFrom(p catalog.Product) LineItem {
	return LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	}
}

// Cart aggregates line items. The zero delivery fee case is valid but the
// usual constructor takes the configured flat fee.
type Cart struct {
	items       []LineItem
	deliveryFee money.Amount
}

// New creates an empty cart with the given flat delivery fee. The fee applies
// only while the cart is non-empty.
func New(deliveryFee money.Amount) *Cart {
	return &Cart{deliveryFee: deliveryFee}
}

// SetDeliveryFee replaces the flat fee, for live tunable reloads.
func (c *Cart) SetDeliveryFee(fee money.Amount) { c.deliveryFee = fee }

// Add puts one unit of the product in the cart. If a line item for the same
// product already exists its quantity increments in place; otherwise a new
// line item appends with quantity 1.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, lineItemFrom(p))
}

// SetQuantity replaces the quantity of the matching line item in place.
// A quantity of zero or less removes the item. Unknown ids are ignored.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the matching line item. Unknown ids are ignored.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Item returns the line item for a product id.
func (c *Cart) Item(productID string) (LineItem, bool) {
	for _, it := range c.items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return LineItem{}, false
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of distinct line items (the header badge count).
func (c *Cart) Len() int { return len(c.items) }

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Clear empties the cart.
func (c *Cart) Clear() { c.items = nil }

// Subtotal is the sum of unit price times quantity over all line items.
func (c *Cart) Subtotal() money.Amount {
	var sum money.Amount
	for _, it := range c.items {
		sum += it.UnitPrice.Mul(it.Quantity)
	}
	return sum
}

// DeliveryFee is the flat fee, zero iff the cart is empty.
func (c *Cart) DeliveryFee() money.Amount {
	if c.IsEmpty() {
		return 0
	}
	return c.deliveryFee
}

// Total is subtotal plus delivery fee.
func (c *Cart) Total() money.Amount {
	return c.Subtotal() + c.DeliveryFee()
}
