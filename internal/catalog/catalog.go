// Package catalog holds the static Bakerra product range. The data ships as
// embedded YAML so the storefront can be re-stocked without touching code.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"bakerra/internal/money"
)

//go:embed products.yaml
var productsYAML []byte

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "All"

// Product is one catalog entry. Distinct from a cart line item: the cart keeps
// its own record type and maps from this one on add.
type Product struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Price       money.Amount `yaml:"price"`
	Image       string       `yaml:"image"`
	Description string       `yaml:"description"`
	Category    string       `yaml:"category"`
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

var (
	loadOnce sync.Once
	loaded   []Product
	loadErr  error
)

func load() ([]Product, error) {
	loadOnce.Do(func() {
		var f catalogFile
		if err := yaml.Unmarshal(productsYAML, &f); err != nil {
			loadErr = fmt.Errorf("parse embedded catalog: %w", err)
			return
		}
		loaded = f.Products
	})
	return loaded, loadErr
}

// Products returns the full range in catalog order.
func Products() []Product {
	ps, err := load()
	if err != nil {
		// The embedded file is part of the build; failing to parse it is a
		// programming error, not a runtime condition.
		panic(err)
	}
	out := make([]Product, len(ps))
	copy(out, ps)
	return out
}

// Categories returns the filter tabs in display order, "All" first.
func Categories() []string {
	seen := map[string]bool{}
	cats := []string{CategoryAll}
	for _, p := range Products() {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

// Filter returns exactly the products in the given category, preserving
// catalog order. CategoryAll (or "") returns everything.
func Filter(category string) []Product {
	if category == "" || category == CategoryAll {
		return Products()
	}
	var out []Product
	for _, p := range Products() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ByID looks a product up by id.
func ByID(id string) (Product, bool) {
	for _, p := range Products() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
