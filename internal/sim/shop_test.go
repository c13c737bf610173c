package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPurchase_AppliesPatchDeductsAndRecords(t *testing.T) {
	item := ShopItem{
		ID: "analytics", Name: "Analytics Wizard", Cost: 300,
		Apply: func(s GameState) Patch {
			return Patch{Multipliers: &MultipliersPatch{Revenue: FloatPtr(s.Multipliers.Revenue * 1.25)}}
		},
	}
	s := NewGameState(time.Now())

	next := Purchase(s, item)

	assert.Equal(t, 200, next.Cash)
	assert.Equal(t, 1.25, next.Multipliers.Revenue)
	assert.Equal(t, []string{"analytics"}, next.Inventory)
}

func TestPurchase_InventoryIsASet(t *testing.T) {
	item := ShopItem{ID: "legal_shield", Cost: 0, Apply: func(s GameState) Patch { return Patch{} }}
	s := NewGameState(time.Now())

	next := Purchase(Purchase(s, item), item)

	assert.Equal(t, []string{"legal_shield"}, next.Inventory)
}

func TestPurchase_CashFloorsAtZero(t *testing.T) {
	item := ShopItem{ID: "x", Cost: 900, Apply: func(s GameState) Patch { return Patch{} }}
	s := NewGameState(time.Now())

	next := Purchase(s, item)

	assert.Equal(t, 0, next.Cash)
}
