package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoshop/storefront/internal/core/domain"
)

func TestStore(t *testing.T) {
	t.Run("StartsEmpty", func(t *testing.T) {
		s := NewStore(nil, nil)

		assert.Zero(t, s.Len())
		assert.Empty(t, s.Items())
		assert.Equal(t, domain.CartTotals{}, s.Totals())
	})

	t.Run("SeedsFromInitialItems", func(t *testing.T) {
		seed := []domain.CartItem{
			{Product: testProduct("A", 10, 10), Quantity: 2},
		}
		s := NewStore(seed, nil)

		assert.Equal(t, 1, s.Len())
		assert.Equal(t, 2, s.Quantity("A"))
	})

	t.Run("AddItemDefaultsQuantityToOne", func(t *testing.T) {
		s := NewStore(nil, nil)
		s.AddItem(testProduct("A", 10, 10), 0)
		s.AddItem(testProduct("B", 5, 4), -2)

		assert.Equal(t, 1, s.Quantity("A"))
		assert.Equal(t, 1, s.Quantity("B"))
	})

	t.Run("UpdateQuantityToZeroEmptiesCart", func(t *testing.T) {
		s := NewStore(nil, nil)
		s.AddItem(testProduct("A", 10, 10), 1)
		s.UpdateQuantity("A", 0)

		assert.Zero(t, s.Len())
		assert.Equal(t, domain.CartTotals{}, s.Totals())
	})

	t.Run("TotalsFollowTransitions", func(t *testing.T) {
		s := NewStore(nil, nil)
		s.AddItem(testProduct("A", 10, 10), 2)
		s.AddItem(testProduct("B", 5, 4), 1)

		assert.Equal(t, domain.CartTotals{TotalItems: 3, TotalPrice: 24}, s.Totals())

		s.RemoveItem("A")
		assert.Equal(t, domain.CartTotals{TotalItems: 1, TotalPrice: 4}, s.Totals())

		s.Clear()
		assert.Equal(t, domain.CartTotals{}, s.Totals())
	})

	t.Run("ItemsReturnsCopy", func(t *testing.T) {
		s := NewStore(nil, nil)
		s.AddItem(testProduct("A", 10, 10), 1)

		items := s.Items()
		items[0].Quantity = 99

		assert.Equal(t, 1, s.Quantity("A"))
	})

	t.Run("QuantityOfAbsentProductIsZero", func(t *testing.T) {
		s := NewStore(nil, nil)

		assert.Zero(t, s.Quantity("missing"))
	})

	t.Run("CommitReceivesSnapshotAfterEachTransition", func(t *testing.T) {
		var commits [][]domain.CartItem
		s := NewStore(nil, func(items []domain.CartItem) {
			commits = append(commits, items)
		})

		s.AddItem(testProduct("A", 10, 10), 2)
		s.UpdateQuantity("A", 5)
		s.Clear()

		require.Len(t, commits, 3)
		require.Len(t, commits[0], 1)
		assert.Equal(t, 2, commits[0][0].Quantity)
		assert.Equal(t, 5, commits[1][0].Quantity)
		assert.Empty(t, commits[2])
	})

	t.Run("CommitSnapshotIsNotAliased", func(t *testing.T) {
		var snapshot []domain.CartItem
		s := NewStore(nil, func(items []domain.CartItem) {
			snapshot = items
		})

		s.AddItem(testProduct("A", 10, 10), 1)
		require.Len(t, snapshot, 1)

		snapshot[0].Quantity = 42
		assert.Equal(t, 1, s.Quantity("A"))
	})
}
