// Package catalog holds the static product catalogs the storefront serves.
// Catalog data is immutable after load; the cart and order flows consume it
// by item id.
package catalog

import "strings"

// MenuItem is one orderable product. Price stays a display string
// ("₹<number>") end to end; arithmetic on it happens only in the cart.
type MenuItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"` // pack size, e.g. "500 gm"
	Price    string `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// Category groups items for display.
type Category struct {
	Key   string     `json:"key"`
	Name  string     `json:"name"`
	Icon  string     `json:"icon,omitempty"`
	Image string     `json:"image,omitempty"`
	Items []MenuItem `json:"items"`
}

// Catalog is the full menu of one shop.
type Catalog struct {
	categories []Category
	byID       map[string]MenuItem
}

// New builds a catalog and its id index. Later items win on duplicate ids.
func New(categories []Category) *Catalog {
	c := &Catalog{
		categories: categories,
		byID:       make(map[string]MenuItem),
	}
	for _, cat := range categories {
		for _, item := range cat.Items {
			c.byID[item.ID] = item
		}
	}
	return c
}

// Categories returns the catalog in display order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category returns one category by key.
func (c *Catalog) Category(key string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// Item looks up a menu item by id.
func (c *Catalog) Item(id string) (MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// ItemImage derives the conventional image path for an item: lowercase name,
// non-alphanumeric runs collapsed to dashes.
func ItemImage(category, name string) string {
	return "/menu-items/" + category + "/" + slug(name) + ".jpg"
}

func slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range strings.ToLower(s) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
