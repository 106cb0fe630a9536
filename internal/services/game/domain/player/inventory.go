package player

import "sort"

// InventoryChange classifies the effect of an inventory delta.
type InventoryChange int

const (
	// InventoryUnchanged means the delta had no effect.
	InventoryUnchanged InventoryChange = iota
	// InventoryCreated means a new entry was added.
	InventoryCreated
	// InventoryUpdated means an existing entry changed quantity.
	InventoryUpdated
	// InventoryDeleted means the entry reached zero and was removed.
	InventoryDeleted
)

// Inventory maps item id to a strictly positive quantity.
type Inventory map[string]int

// Quantity returns the held quantity of item, or zero.
func (inv Inventory) Quantity(item string) int {
	return inv[item]
}

// Has reports whether at least one of item is held.
func (inv Inventory) Has(item string) bool {
	return inv[item] > 0
}

// Apply adds delta to item. Entries never hold a non-positive quantity: a
// decrement that reaches zero or below deletes the entry, and a decrement on
// an absent entry is silently ignored.
func (inv Inventory) Apply(item string, delta int) (before, after int, change InventoryChange) {
	before, held := inv[item]
	switch {
	case delta == 0:
		return before, before, InventoryUnchanged
	case delta > 0 && !held:
		inv[item] = delta
		return 0, delta, InventoryCreated
	case delta > 0:
		inv[item] = before + delta
		return before, before + delta, InventoryUpdated
	case !held:
		return 0, 0, InventoryUnchanged
	case before+delta <= 0:
		delete(inv, item)
		return before, 0, InventoryDeleted
	default:
		inv[item] = before + delta
		return before, before + delta, InventoryUpdated
	}
}

// Items returns held item ids in sorted order.
func (inv Inventory) Items() []string {
	ids := make([]string, 0, len(inv))
	for id := range inv {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}
