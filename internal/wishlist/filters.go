package wishlist

import (
	"sort"
	"strings"

	"wishfox-tui/internal/api"
)

// Filters фильтры списка желаний. Пустые поля не ограничивают выборку.
type Filters struct {
	Search   string
	Priority api.Priority
	Status   api.WishStatus
}

// Active включен ли хотя бы один фильтр
func (f Filters) Active() bool {
	return f.Search != "" || f.Priority != "" || f.Status != ""
}

// Matches желание проходит все заданные фильтры. Поиск без учета
// регистра по названию, описанию и тегам.
func (f Filters) Matches(w api.Wish) bool {
	if f.Priority != "" && w.Priority != f.Priority {
		return false
	}
	if f.Status != "" && w.Status != f.Status {
		return false
	}
	if f.Search != "" {
		haystack := strings.ToLower(w.Title + " " + api.Str(w.Description) + " " + strings.Join(w.Tags, " "))
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}
	return true
}

// Apply возвращает подходящие желания, упорядоченные по position
func (f Filters) Apply(wishes []api.Wish) []api.Wish {
	out := make([]api.Wish, 0, len(wishes))
	for _, w := range wishes {
		if f.Matches(w) {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// CyclePriority следующий фильтр приоритета: любой -> low -> medium -> high -> любой
func (f Filters) CyclePriority() Filters {
	f.Priority = cycle(api.Priorities(), f.Priority)
	return f
}

// CycleStatus следующий фильтр статуса
func (f Filters) CycleStatus() Filters {
	f.Status = cycle(api.Statuses(), f.Status)
	return f
}

func cycle[T comparable](values []T, current T) T {
	var zero T
	if current == zero {
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return zero
		}
	}
	return zero
}

// rotate сдвигает значение по кругу на step, неизвестное значение дает fallback
func rotate[T comparable](values []T, current T, step int, fallback T) T {
	for i, v := range values {
		if v == current {
			return values[((i+step)%len(values)+len(values))%len(values)]
		}
	}
	return fallback
}

// NextStatus следующий статус желания по кругу
func NextStatus(s api.WishStatus) api.WishStatus {
	return rotate(api.Statuses(), s, 1, api.StatusPlanned)
}

// PrevStatus предыдущий статус по кругу
func PrevStatus(s api.WishStatus) api.WishStatus {
	return rotate(api.Statuses(), s, -1, api.StatusPlanned)
}

// NextPriority следующий приоритет по кругу
func NextPriority(p api.Priority) api.Priority {
	return rotate(api.Priorities(), p, 1, api.PriorityMedium)
}

// PrevPriority предыдущий приоритет по кругу
func PrevPriority(p api.Priority) api.Priority {
	return rotate(api.Priorities(), p, -1, api.PriorityMedium)
}
