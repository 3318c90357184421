package wishlist

import (
	"wishfox-tui/internal/api"
)

// CanReorder перестановка разрешена только в своем вишлисте без фильтров
func CanReorder(own bool, f Filters) bool {
	return own && !f.Active()
}

// Move переносит элемент from на место to и возвращает новый срез.
// Индексы вне диапазона оставляют порядок без изменений.
func Move(wishes []api.Wish, from, to int) []api.Wish {
	out := append([]api.Wish(nil), wishes...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]api.Wish{moved}, out[to:]...)...)
	return out
}

// Positions полный новый порядок с позициями от нуля
func Positions(ordered []api.Wish) []api.ReorderItem {
	items := make([]api.ReorderItem, len(ordered))
	for i, w := range ordered {
		items[i] = api.ReorderItem{ID: w.ID, Position: i}
	}
	return items
}

// Renumber проставляет position по текущему порядку
func Renumber(ordered []api.Wish) []api.Wish {
	out := append([]api.Wish(nil), ordered...)
	for i := range out {
		out[i].Position = i
	}
	return out
}
