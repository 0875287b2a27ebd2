package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"bakerra/internal/catalog"
	"bakerra/internal/money"
)

var (
	sourdough = catalog.Product{ID: "1", Name: "Sourdough Loaf", Price: money.Cents(699), Category: "Bread"}
	croissant = catalog.Product{ID: "2", Name: "Croissants", Price: money.Cents(499), Category: "Pastries"}
	cheesecake = catalog.Product{ID: "6", Name: "Cheesecake", Price: money.Cents(1899), Category: "Cakes"}
)

const testFee = money.Amount(399)

func TestAddMergesByProductID(t *testing.T) {
	c := New(testFee)
	c.Add(sourdough)
	c.Add(croissant)
	c.Add(sourdough)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("cart has %d line items, want 2", len(items))
	}
	if items[0].ProductID != "1" || items[0].Quantity != 2 {
		t.Fatalf("first line item = %+v, want sourdough x2", items[0])
	}
	if items[1].ProductID != "2" || items[1].Quantity != 1 {
		t.Fatalf("second line item = %+v, want croissants x1", items[1])
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New(testFee)
	c.Add(cheesecake)
	c.Add(sourdough)
	c.Add(cheesecake) // merge must not move the line item

	var ids []string
	for _, it := range c.Items() {
		ids = append(ids, it.ProductID)
	}
	if diff := cmp.Diff([]string{"6", "1"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSetQuantity(t *testing.T) {
	c := New(testFee)
	c.Add(sourdough)
	c.SetQuantity("1", 5)

	it, ok := c.Item("1")
	if !ok || it.Quantity != 5 {
		t.Fatalf("line item = %+v, %v, want quantity 5", it, ok)
	}
}

func TestSetQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, q := range []int{0, -1, -42} {
		c := New(testFee)
		c.Add(sourdough)
		c.SetQuantity("1", q)
		if !c.IsEmpty() {
			t.Fatalf("SetQuantity(1, %d) left %d items, want empty cart", q, c.Len())
		}
	}
}

func TestAbsentIDNoOps(t *testing.T) {
	c := New(testFee)
	c.Add(sourdough)

	c.SetQuantity("nope", 3)
	c.Remove("nope")

	if c.Len() != 1 {
		t.Fatalf("cart disturbed by absent-id operations: %+v", c.Items())
	}
	if _, ok := c.Item("nope"); ok {
		t.Fatal("absent SetQuantity inserted a line item")
	}
}

func TestRemove(t *testing.T) {
	c := New(testFee)
	c.Add(sourdough)
	c.Add(croissant)
	c.Remove("1")

	items := c.Items()
	if len(items) != 1 || items[0].ProductID != "2" {
		t.Fatalf("items after remove = %+v", items)
	}
}

func TestTotalsScenario(t *testing.T) {
	// Two units of a $6.99 item and one unit of a $4.99 item.
	c := New(testFee)
	c.Add(sourdough)
	c.Add(sourdough)
	c.Add(croissant)

	if got := c.Subtotal(); got.Cents() != 1897 {
		t.Fatalf("subtotal = %v, want $18.97", got)
	}
	if got := c.DeliveryFee(); got.Cents() != 399 {
		t.Fatalf("delivery fee = %v, want $3.99", got)
	}
	if got := c.Total(); got.Cents() != 2296 {
		t.Fatalf("total = %v, want $22.96", got)
	}
}

func TestDeliveryFeeZeroIffEmpty(t *testing.T) {
	c := New(testFee)
	if got := c.DeliveryFee(); got != 0 {
		t.Fatalf("empty cart delivery fee = %v, want 0", got)
	}
	if got := c.Total(); got != 0 {
		t.Fatalf("empty cart total = %v, want 0", got)
	}

	c.Add(croissant)
	if got := c.DeliveryFee(); got != testFee {
		t.Fatalf("delivery fee = %v, want %v", got, testFee)
	}

	c.Remove("2")
	if got := c.DeliveryFee(); got != 0 {
		t.Fatalf("delivery fee after emptying = %v, want 0", got)
	}
}

func TestAtMostOneLineItemPerProduct(t *testing.T) {
	c := New(testFee)
	ops := []func(){
		func() { c.Add(sourdough) },
		func() { c.Add(croissant) },
		func() { c.SetQuantity("1", 4) },
		func() { c.Add(sourdough) },
		func() { c.Remove("2") },
		func() { c.Add(croissant) },
		func() { c.Add(croissant) },
		func() { c.SetQuantity("2", 0) },
		func() { c.Add(croissant) },
	}
	for _, op := range ops {
		op()
		seen := map[string]bool{}
		for _, it := range c.Items() {
			if seen[it.ProductID] {
				t.Fatalf("duplicate line item for %s: %+v", it.ProductID, c.Items())
			}
			seen[it.ProductID] = true
			if it.Quantity < 1 {
				t.Fatalf("stored quantity %d for %s", it.Quantity, it.ProductID)
			}
		}
	}
}
