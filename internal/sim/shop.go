package sim

// Purchase merges a shop item's permanent patch into state, deducts the cost,
// and records the item in the inventory set. Affordability and an
// already-owned check are the caller's preconditions.
func Purchase(s GameState, item ShopItem) GameState {
	next := s.Apply(item.Apply(s))
	next.Cash -= item.Cost
	if next.Cash < 0 {
		next.Cash = 0
	}
	if !next.HasItem(item.ID) {
		next.Inventory = append(next.Inventory, item.ID)
	}
	return next
}
