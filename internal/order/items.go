package order

import (
	"sort"
	"strings"

	"comanda-backend/internal/models"
)

// ItemKey identifica uma linha do pedido: mesmo item do cardápio com a
// mesma customização. Duas linhas com a mesma chave nunca coexistem:
// elas são fundidas somando a quantidade.
type ItemKey struct {
	MenuItemID   uint
	Notes        string
	MeatPoint    models.MeatPoint
	RemovedItems []string
}

func KeyOf(it models.OrderItem) ItemKey {
	return ItemKey{
		MenuItemID:   it.MenuItemID,
		Notes:        it.Notes,
		MeatPoint:    it.MeatPoint,
		RemovedItems: it.RemovedItems,
	}
}

// canonicalRemoved - a ordem dos ingredientes removidos não faz parte da
// identidade.
func canonicalRemoved(removed []string) string {
	if len(removed) == 0 {
		return ""
	}
	sorted := make([]string, len(removed))
	copy(sorted, removed)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x1f")
}

func SameItem(a models.OrderItem, key ItemKey) bool {
	return a.MenuItemID == key.MenuItemID &&
		a.Notes == key.Notes &&
		a.MeatPoint == key.MeatPoint &&
		canonicalRemoved(a.RemovedItems) == canonicalRemoved(key.RemovedItems)
}

func indexOf(list []models.OrderItem, key ItemKey) int {
	for i := range list {
		if SameItem(list[i], key) {
			return i
		}
	}
	return -1
}

// MergeOrAppend adiciona newItem à lista: se já existe uma linha com a
// mesma chave, soma a quantidade; senão anexa no final.
func MergeOrAppend(list []models.OrderItem, newItem models.OrderItem) []models.OrderItem {
	if i := indexOf(list, KeyOf(newItem)); i >= 0 {
		list[i].Quantity += newItem.Quantity
		return list
	}
	return append(list, newItem)
}

// AdjustQuantity soma delta à quantidade da linha com a chave dada.
// Quantidade <= 0 remove a linha. Chave inexistente é no-op: a UI só
// dispara ajustes a partir de uma linha visível.
func AdjustQuantity(list []models.OrderItem, key ItemKey, delta int) []models.OrderItem {
	i := indexOf(list, key)
	if i < 0 {
		return list
	}
	list[i].Quantity += delta
	if list[i].Quantity <= 0 {
		return append(list[:i], list[i+1:]...)
	}
	return list
}

// RemoveItem remove todas as linhas com a chave dada (no máximo uma,
// dado o invariante de merge).
func RemoveItem(list []models.OrderItem, key ItemKey) []models.OrderItem {
	out := list[:0]
	for _, it := range list {
		if !SameItem(it, key) {
			out = append(out, it)
		}
	}
	return out
}
