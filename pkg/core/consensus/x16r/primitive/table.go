package primitive

import "fmt"

// Table is a fixed-size Registry. Populate it before handing it to an engine;
// engines copy what they need at construction so later changes do not leak
// into them.
type Table struct {
	funcs [idCount]Func
}

var _ Registry = (*Table)(nil)

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Register binds fn to id, replacing any earlier binding.
func (t *Table) Register(id ID, fn Func) error {
	if !id.Valid() {
		return fmt.Errorf("register %s: %w", id, ErrUnknownID)
	}
	if fn == nil {
		return fmt.Errorf("register %s: %w", id, ErrNilFunc)
	}
	t.funcs[id] = fn
	return nil
}

// MustRegister is Register for statically known bindings.
func (t *Table) MustRegister(id ID, fn Func) *Table {
	if err := t.Register(id, fn); err != nil {
		panic(err)
	}
	return t
}

// Lookup implements Registry.
func (t *Table) Lookup(id ID) (Func, bool) {
	if !id.Valid() {
		return nil, false
	}
	fn := t.funcs[id]
	return fn, fn != nil
}

// Missing lists the primitives with no binding.
func (t *Table) Missing() []ID {
	var missing []ID
	for _, id := range All() {
		if t.funcs[id] == nil {
			missing = append(missing, id)
		}
	}
	return missing
}
