// Package cart holds the ephemeral shopping cart state: a mapping of
// food item id to quantity, always positive. It is rebuilt from scratch
// per session and never persisted.
package cart

import (
	"sync"

	"github.com/google/uuid"
)

type Cart struct {
	mu    sync.Mutex
	items map[uuid.UUID]int
}

func New() *Cart {
	return &Cart{items: map[uuid.UUID]int{}}
}

// Add inserts the item with quantity 1 or increments an existing entry.
func (c *Cart) Add(foodID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[foodID]++
}

// SetQuantity replaces the item's quantity; non-positive quantities
// remove the entry.
func (c *Cart) SetQuantity(foodID uuid.UUID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		delete(c.items, foodID)
		return
	}
	c.items[foodID] = quantity
}

func (c *Cart) Remove(foodID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, foodID)
}

// Clear empties the cart, as happens after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = map[uuid.UUID]int{}
}

func (c *Cart) Quantity(foodID uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[foodID]
}

// Items returns a snapshot of the cart contents.
func (c *Cart) Items() map[uuid.UUID]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make(map[uuid.UUID]int, len(c.items))
	for id, qty := range c.items {
		snapshot[id] = qty
	}
	return snapshot
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
