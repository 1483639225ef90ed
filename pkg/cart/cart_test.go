package cart

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAddIncrements(t *testing.T) {
	c := New()
	curry := uuid.New()

	c.Add(curry)
	c.Add(curry)

	assert.Equal(t, 2, c.Quantity(curry))
	assert.Equal(t, 1, c.Len())
}

func TestSetQuantity(t *testing.T) {
	c := New()
	curry := uuid.New()

	c.SetQuantity(curry, 5)
	assert.Equal(t, 5, c.Quantity(curry))

	// Zero or negative removes the entry.
	c.SetQuantity(curry, 0)
	assert.Equal(t, 0, c.Quantity(curry))
	assert.Equal(t, 0, c.Len())

	c.SetQuantity(curry, -3)
	assert.Equal(t, 0, c.Len())
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	curry := uuid.New()
	naan := uuid.New()

	c.Add(curry)
	c.Add(naan)

	c.Remove(curry)
	assert.Equal(t, 0, c.Quantity(curry))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestItemsReturnsSnapshot(t *testing.T) {
	c := New()
	curry := uuid.New()
	c.Add(curry)

	snapshot := c.Items()
	snapshot[curry] = 99

	assert.Equal(t, 1, c.Quantity(curry))
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	curry := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(curry)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Quantity(curry))
}
