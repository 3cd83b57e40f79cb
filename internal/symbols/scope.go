package symbols

import (
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// frame — одна открытая лексическая область: имя → адрес привязки.
type frame struct {
	names map[source.StringID]ScopeAddress
}

// scopeStack — стек открытых областей; поиск от внутренней к внешней.
type scopeStack struct {
	frames []frame
}

func (s *scopeStack) push() {
	s.frames = append(s.frames, frame{names: make(map[source.StringID]ScopeAddress)})
}

func (s *scopeStack) pop() {
	if len(s.frames) == 0 {
		panic("symbols: pop of empty scope stack")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *scopeStack) innermost() *frame {
	if len(s.frames) == 0 {
		panic("symbols: no open scope")
	}
	return &s.frames[len(s.frames)-1]
}

// lookupInnermost ищет только в самой внутренней области (для проверки
// повторного объявления).
func (s *scopeStack) lookupInnermost(name source.StringID) (ScopeAddress, bool) {
	addr, ok := s.innermost().names[name]
	return addr, ok
}

// lookup ищет от внутренней области к внешней; первый матч выигрывает
// (затенение).
func (s *scopeStack) lookup(name source.StringID) (ScopeAddress, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if addr, ok := s.frames[i].names[name]; ok {
			return addr, true
		}
	}
	return nil, false
}

func (s *scopeStack) bind(name source.StringID, addr ScopeAddress) {
	s.innermost().names[name] = addr
}
