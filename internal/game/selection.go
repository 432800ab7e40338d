package game

import (
	"slices"
	"strconv"
	"strings"

	"github.com/osse101/CardBuilder_Go/internal/domain"
)

// FormatSelection joins indices into the stored scalar form, e.g. "3,1,2"
func FormatSelection(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, domain.SelectedCardsSeparator)
}

// ParseSelection reads the stored scalar back into indices in stored order.
// Tokens that are not integers are dropped; the second result counts them.
func ParseSelection(raw string) ([]int, int) {
	indices := []int{}
	if strings.TrimSpace(raw) == "" {
		return indices, 0
	}

	dropped := 0
	for _, token := range strings.Split(raw, domain.SelectedCardsSeparator) {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			dropped++
			continue
		}
		indices = append(indices, n)
	}
	return indices, dropped
}

// ToggleSelection returns a new selection with index appended (selected)
// or with every occurrence of index removed (deselected).
func ToggleSelection(current []int, index int, selected bool) []int {
	if selected {
		out := make([]int, 0, len(current)+1)
		out = append(out, current...)
		return append(out, index)
	}
	out := slices.DeleteFunc(slices.Clone(current), func(i int) bool { return i == index })
	if out == nil {
		out = []int{}
	}
	return out
}
