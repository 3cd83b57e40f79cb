package symbols

import (
	"strconv"
	"strings"
)

// ScopeAddress — иерархический адрес привязки: по одному элементу на
// уровень вложенности, например [1 0] — первая привязка в первом
// top-level scope. После инициализации последовательность никогда не
// пуста. Порядок лексикографический и совпадает с порядком объявления.
type ScopeAddress []uint16

// NewScopeAddress returns the root address [0].
func NewScopeAddress() ScopeAddress {
	return ScopeAddress{0}
}

// Clone returns an independent copy; addresses stored in tables must be
// cloned off the resolver's live address.
func (a ScopeAddress) Clone() ScopeAddress {
	out := make(ScopeAddress, len(a))
	copy(out, a)
	return out
}

// Push appends a fresh zero level.
func (a *ScopeAddress) Push() {
	*a = append(*a, 0)
}

// Pop removes the last level. Popping the root is a programming error.
func (a *ScopeAddress) Pop() {
	if len(*a) <= 1 {
		panic("symbols: pop of root scope address")
	}
	*a = (*a)[:len(*a)-1]
}

// Increment advances the last level to the next sibling slot.
func (a ScopeAddress) Increment() {
	a[len(a)-1]++
}

func (a ScopeAddress) Depth() int {
	return len(a)
}

func (a ScopeAddress) Equal(b ScopeAddress) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare — лексикографический порядок; короткий префикс идёт раньше
// своих расширений.
func (a ScopeAddress) Compare(b ScopeAddress) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func (a ScopeAddress) String() string {
	var sb strings.Builder
	for i, level := range a {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(uint64(level), 10))
	}
	return sb.String()
}

// key — компактный ключ для map; String() подходит, но дешевле без
// разделителей не выйдет из-за многозначных уровней.
func (a ScopeAddress) key() string {
	return a.String()
}
