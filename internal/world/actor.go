package world

import "image"

// Resource names carried in every inventory, in display order.
const (
	Stone = "Stone"
	Wood  = "Wood"
)

// Slot is one named inventory counter.
type Slot struct {
	Name  string
	Count int
}

// Inventory is an ordered list of resource counters.
type Inventory []Slot

// NewInventory returns an inventory with a zeroed slot for each resource.
func NewInventory() Inventory {
	return Inventory{{Name: Stone}, {Name: Wood}}
}

// Count returns the count held for the named resource, 0 if there is no such
// slot.
func (inv Inventory) Count(name string) int {
	if i := inv.index(name); i >= 0 {
		return inv[i].Count
	}
	return 0
}

// Add adjusts the named counter by n, never dropping below zero; returns the
// new count.
func (inv Inventory) Add(name string, n int) int {
	i := inv.index(name)
	if i < 0 {
		return 0
	}
	if inv[i].Count += n; inv[i].Count < 0 {
		inv[i].Count = 0
	}
	return inv[i].Count
}

// Reset zeroes the named counter.
func (inv Inventory) Reset(name string) {
	if i := inv.index(name); i >= 0 {
		inv[i].Count = 0
	}
}

func (inv Inventory) index(name string) int {
	for i := range inv {
		if inv[i].Name == name {
			return i
		}
	}
	return -1
}

// Actor is an independently controlled character on the grid.
type Actor struct {
	ID        int
	Pos       image.Point
	Inventory Inventory
}

func (actor Actor) clone() Actor {
	actor.Inventory = append(Inventory(nil), actor.Inventory...)
	return actor
}
