// Package cart holds the in-memory order cart of one browsing session.
// Carts never persist; a session gone is a cart gone.
package cart

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storefrontclub/storefront/internal/catalog"
)

// Item is a catalog item plus the quantity held in the cart. A quantity of
// zero or less never survives inside a cart; it means removal.
type Item struct {
	catalog.MenuItem
	CartQuantity int `json:"cart_quantity"`
}

// Cart is an explicit per-session service object. All methods are safe for
// concurrent use; a session may have several requests in flight.
type Cart struct {
	id        uuid.UUID
	mu        sync.RWMutex
	items     []Item
	updatedAt time.Time
}

// New creates an empty cart with a fresh session id.
func New() *Cart {
	return &Cart{
		id:        uuid.New(),
		updatedAt: time.Now(),
	}
}

// ID returns the cart session id.
func (c *Cart) ID() uuid.UUID {
	return c.id
}

// GetID returns the cart session id.
func (c *Cart) GetID() uuid.UUID {
	return c.id
}

// ResourceType returns the resource type for URL generation.
func (c *Cart) ResourceType() string {
	return "cart"
}

// UpdatedAt reports the last mutation time, used by the registry to expire
// abandoned sessions.
func (c *Cart) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}

// Add puts one more of the item into the cart, merging with an existing
// line for the same item id.
func (c *Cart) Add(item catalog.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updatedAt = time.Now()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].CartQuantity++
			return
		}
	}
	c.items = append(c.items, Item{MenuItem: item, CartQuantity: 1})
}

// Remove drops the line for the given item id. Unknown ids are a no-op.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updatedAt = time.Now()
	c.removeLocked(itemID)
}

// UpdateQuantity sets the quantity of an existing line. Zero or negative
// removes the line instead of keeping a zero-quantity entry.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updatedAt = time.Now()

	if quantity <= 0 {
		c.removeLocked(itemID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].CartQuantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updatedAt = time.Now()
	c.items = nil
}

// Items returns a snapshot of the cart lines.
func (c *Cart) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems sums the quantities across all lines.
func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, item := range c.items {
		total += item.CartQuantity
	}
	return total
}

// TotalPrice sums unit price times quantity across all lines. A malformed
// price string poisons the total with NaN rather than failing; the catalog
// is trusted to carry well-formed prices.
func (c *Cart) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0.0
	for _, item := range c.items {
		total += ParsePrice(item.Price) * float64(item.CartQuantity)
	}
	return total
}

func (c *Cart) removeLocked(itemID string) {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// ParsePrice turns a "₹<number>" display price into a number, stripping the
// currency symbol and thousands commas first. Malformed input yields NaN,
// never an error.
func ParsePrice(price string) float64 {
	cleaned := strings.ReplaceAll(price, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
