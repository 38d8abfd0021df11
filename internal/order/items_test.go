package order

import (
	"testing"

	"comanda-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func picanha(qty int, notes string, point models.MeatPoint, removed ...string) models.OrderItem {
	return models.OrderItem{
		MenuItemID:   1,
		Name:         "Picanha Grelhada",
		Price:        decimal.NewFromFloat(89.90),
		Quantity:     qty,
		Notes:        notes,
		MeatPoint:    point,
		RemovedItems: removed,
	}
}

func refri(qty int) models.OrderItem {
	return models.OrderItem{
		MenuItemID: 2,
		Name:       "Refrigerante",
		Price:      decimal.NewFromFloat(7.50),
		Quantity:   qty,
	}
}

func TestMergeOrAppend(t *testing.T) {
	tests := []struct {
		name     string
		list     []models.OrderItem
		newItem  models.OrderItem
		wantLen  int
		wantQtys []int
	}{
		{
			name:     "mesma chave funde somando quantidade",
			list:     []models.OrderItem{picanha(2, "", models.MeatMedium)},
			newItem:  picanha(3, "", models.MeatMedium),
			wantLen:  1,
			wantQtys: []int{5},
		},
		{
			name:     "ponto da carne diferente cria nova linha",
			list:     []models.OrderItem{picanha(2, "", models.MeatMedium)},
			newItem:  picanha(1, "", models.MeatWellDone),
			wantLen:  2,
			wantQtys: []int{2, 1},
		},
		{
			name:     "observação diferente cria nova linha",
			list:     []models.OrderItem{picanha(1, "", models.MeatMedium)},
			newItem:  picanha(1, "sem sal", models.MeatMedium),
			wantLen:  2,
			wantQtys: []int{1, 1},
		},
		{
			name:     "item do cardápio diferente cria nova linha",
			list:     []models.OrderItem{picanha(1, "", models.MeatMedium)},
			newItem:  refri(2),
			wantLen:  2,
			wantQtys: []int{1, 2},
		},
		{
			name:     "lista vazia anexa",
			list:     nil,
			newItem:  refri(1),
			wantLen:  1,
			wantQtys: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeOrAppend(tt.list, tt.newItem)
			require.Len(t, got, tt.wantLen)
			for i, q := range tt.wantQtys {
				assert.Equal(t, q, got[i].Quantity)
			}
		})
	}
}

func TestMergeOrAppend_RemovedItemsOrderIgnored(t *testing.T) {
	list := []models.OrderItem{picanha(1, "", models.MeatMedium, "cebola", "farofa")}
	got := MergeOrAppend(list, picanha(2, "", models.MeatMedium, "farofa", "cebola"))

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Quantity)
}

func TestMergeOrAppend_RemovedItemsDifferentSetSplits(t *testing.T) {
	list := []models.OrderItem{picanha(1, "", models.MeatMedium, "cebola")}
	got := MergeOrAppend(list, picanha(1, "", models.MeatMedium, "cebola", "farofa"))

	require.Len(t, got, 2)
}

func TestAdjustQuantity(t *testing.T) {
	base := func() []models.OrderItem {
		return []models.OrderItem{picanha(3, "", models.MeatMedium), refri(1)}
	}

	t.Run("incrementa", func(t *testing.T) {
		got := AdjustQuantity(base(), KeyOf(picanha(0, "", models.MeatMedium)), 2)
		require.Len(t, got, 2)
		assert.Equal(t, 5, got[0].Quantity)
	})

	t.Run("decrementa", func(t *testing.T) {
		got := AdjustQuantity(base(), KeyOf(picanha(0, "", models.MeatMedium)), -1)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].Quantity)
	})

	t.Run("zerar remove a linha", func(t *testing.T) {
		got := AdjustQuantity(base(), KeyOf(refri(0)), -1)
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].MenuItemID)
	})

	t.Run("abaixo de zero remove a linha", func(t *testing.T) {
		got := AdjustQuantity(base(), KeyOf(refri(0)), -5)
		require.Len(t, got, 1)
	})

	t.Run("chave inexistente é no-op", func(t *testing.T) {
		got := AdjustQuantity(base(), KeyOf(picanha(0, "sem sal", models.MeatRare)), 1)
		require.Len(t, got, 2)
		assert.Equal(t, 3, got[0].Quantity)
		assert.Equal(t, 1, got[1].Quantity)
	})
}

func TestRemoveItem(t *testing.T) {
	list := []models.OrderItem{picanha(3, "", models.MeatMedium), refri(2)}

	got := RemoveItem(list, KeyOf(picanha(0, "", models.MeatMedium)))
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].MenuItemID)

	got = RemoveItem(got, KeyOf(picanha(0, "", models.MeatMedium)))
	require.Len(t, got, 1)
}

func TestRecalcTotal(t *testing.T) {
	o := models.Order{Items: []models.OrderItem{picanha(2, "", models.MeatMedium), refri(3)}}
	o.RecalcTotal()

	// 2*89.90 + 3*7.50 = 202.30
	assert.True(t, o.Total.Equal(decimal.NewFromFloat(202.30)), "total %s", o.Total)

	o.Items = nil
	o.RecalcTotal()
	assert.True(t, o.Total.IsZero())
}
