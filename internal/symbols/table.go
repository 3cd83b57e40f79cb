package symbols

// Table — таблица символов: адрес → символ, итерация в порядке
// объявления (для детерминированного порядка линтов). Повторная вставка
// по тому же адресу замещает символ на месте.
type Table struct {
	symbols []*Symbol
	index   map[string]int
}

func NewTable() *Table {
	return &Table{
		index: make(map[string]int),
	}
}

// Insert adds sym, replacing any symbol already bound at the same address.
func (t *Table) Insert(sym *Symbol) {
	key := sym.Addr.key()
	if pos, ok := t.index[key]; ok {
		t.symbols[pos] = sym
		return
	}
	t.index[key] = len(t.symbols)
	t.symbols = append(t.symbols, sym)
}

// Lookup finds the symbol bound at addr.
func (t *Table) Lookup(addr ScopeAddress) (*Symbol, bool) {
	pos, ok := t.index[addr.key()]
	if !ok {
		return nil, false
	}
	return t.symbols[pos], true
}

// Symbols returns all symbols in declaration order. READONLY
func (t *Table) Symbols() []*Symbol {
	return t.symbols
}

func (t *Table) Len() int {
	return len(t.symbols)
}
