package sim

// Event is one card in the weighted random event deck.
type Event struct {
	ID     string
	Title  string
	Desc   string
	Weight float64
	Effect func(s GameState, rng RNG) Patch
}

// GoalSpec pairs a goal id with its live predicate. Predicates are monotonic
// on state growth, so a done goal stays done in practice even though it is
// recomputed every day.
type GoalSpec struct {
	ID   string
	When func(s GameState) bool
}

// Achievement is a labelled predicate; earned ids accumulate append-only.
type Achievement struct {
	ID    string
	Label string
	When  func(s GameState) bool
}

// WheelSlice is one reward on the daily wheel.
type WheelSlice struct {
	Label string
	Apply func(s GameState) Patch
}

// ShopItem is a one-shot purchase merging a permanent patch into state.
type ShopItem struct {
	ID    string
	Name  string
	Desc  string
	Cost  int
	Apply func(s GameState) Patch
}

// Content bundles the catalogs the engine is parameterized over. The fixed
// lists live outside the pipeline so catalog changes never touch it.
type Content struct {
	Actions      []Action
	Events       []Event
	Wheel        []WheelSlice
	Shop         []ShopItem
	Goals        []GoalSpec
	Achievements []Achievement
}

// ActionByID looks up an action in the catalog.
func (c Content) ActionByID(id string) (Action, bool) {
	for _, a := range c.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// ShopItemByID looks up a shop item in the catalog.
func (c Content) ShopItemByID(id string) (ShopItem, bool) {
	for _, it := range c.Shop {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}
