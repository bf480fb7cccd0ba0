package symtab

import (
	"strconv"

	"nikand.dev/go/heap"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/tlwire"
)

type (
	Kind int

	Symbol struct {
		Name  string
		Value int
		Kind  Kind
	}

	// Table maps symbol names to addresses.
	// Labels, variables and built-ins share one namespace.
	// Entries are never removed and the first definition of a name wins.
	Table struct {
		index map[string]int
		syms  []Symbol

		nextVar int
	}
)

const (
	Builtin Kind = iota
	Label
	Variable
)

// VarBase is the first register handed out to variables.
const VarBase = 16

const (
	Screen   = 16384
	Keyboard = 24576
)

func New() *Table {
	t := &Table{
		index:   make(map[string]int),
		nextVar: VarBase,
	}

	for i := 0; i < 16; i++ {
		t.add("R"+strconv.Itoa(i), i, Builtin)
	}

	t.add("SCREEN", Screen, Builtin)
	t.add("KBD", Keyboard, Builtin)
	t.add("SP", 0, Builtin)
	t.add("LCL", 1, Builtin)
	t.add("ARG", 2, Builtin)
	t.add("THIS", 3, Builtin)
	t.add("THAT", 4, Builtin)

	return t
}

func (t *Table) Lookup(name string) (Symbol, bool) {
	i, ok := t.index[name]
	if !ok {
		return Symbol{}, false
	}

	return t.syms[i], true
}

// Define registers name unless it is already known.
// It returns the symbol the name resolves to and whether it was added.
func (t *Table) Define(name string, val int, k Kind) (Symbol, bool) {
	if s, ok := t.Lookup(name); ok {
		tlog.V("symtab").Printw("symbol already defined", "name", name, "have", s, "want_kind", k, "want_val", val, "from", loc.Caller(1))

		return s, false
	}

	s := t.add(name, val, k)

	tlog.V("symtab").Printw("define symbol", "sym", s, "from", loc.Caller(1))

	return s, true
}

// Resolve returns the symbol for name allocating a new variable if it's unknown.
func (t *Table) Resolve(name string) Symbol {
	if s, ok := t.Lookup(name); ok {
		return s
	}

	return t.Alloc(name)
}

// Alloc assigns the next variable register to name.
// It doesn't check the name is free, use Resolve for that.
func (t *Table) Alloc(name string) Symbol {
	s := t.add(name, t.nextVar, Variable)
	t.nextVar++

	tlog.V("symtab").Printw("alloc variable", "sym", s, "from", loc.Caller(1))

	return s
}

func (t *Table) Len() int { return len(t.syms) }

// Sorted returns symbols ordered by value, then kind, then name.
func (t *Table) Sorted() []Symbol {
	h := heap.Heap[Symbol]{Less: symLess}

	for _, s := range t.syms {
		h.Push(s)
	}

	res := make([]Symbol, 0, h.Len())

	for h.Len() != 0 {
		res = append(res, h.Pop())
	}

	return res
}

func (t *Table) add(name string, val int, k Kind) Symbol {
	s := Symbol{Name: name, Value: val, Kind: k}

	t.index[name] = len(t.syms)
	t.syms = append(t.syms, s)

	return s
}

func symLess(d []Symbol, i, j int) bool {
	if d[i].Value != d[j].Value {
		return d[i].Value < d[j].Value
	}

	if d[i].Kind != d[j].Kind {
		return d[i].Kind < d[j].Kind
	}

	return d[i].Name < d[j].Name
}

func (k Kind) String() string {
	switch k {
	case Builtin:
		return "builtin"
	case Label:
		return "label"
	case Variable:
		return "variable"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendString(b, k.String())
}

func (s Symbol) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 3)

	b = e.AppendKeyString(b, "name", s.Name)
	b = e.AppendKeyInt(b, "val", s.Value)
	b = e.AppendKeyString(b, "kind", s.Kind.String())

	return b
}
