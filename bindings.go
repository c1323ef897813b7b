package push

import "github.com/dolthub/swiss"

// Bindings is the NAME -> Item table spec.md §3/§4.5 describes. It backs
// EXEC.DEFINE/CODE.DEFINE and every NAME lookup the interpreter performs,
// which makes it the hottest map in the whole interpreter: every unbound
// Name pushed onto EXEC triggers a probe. Grounded on mna/nenuphar's use
// of a swiss-table map for its evaluator environment, this repo uses the
// same open-addressing map instead of a built-in Go map for that table.
type Bindings struct {
	m *swiss.Map[string, Item]
}

// NewBindings returns an empty bindings table.
func NewBindings() *Bindings {
	return &Bindings{m: swiss.NewMap[string, Item](8)}
}

// Define binds name to value, overwriting any previous binding.
func (b *Bindings) Define(name string, value Item) {
	b.m.Put(name, value)
}

// Lookup returns the Item bound to name, if any.
func (b *Bindings) Lookup(name string) (Item, bool) {
	return b.m.Get(name)
}

// Has reports whether name is bound.
func (b *Bindings) Has(name string) bool {
	return b.m.Has(name)
}

// Len returns the number of bound names.
func (b *Bindings) Len() int { return b.m.Count() }

// Names returns every bound name, in unspecified order, for
// introspection (Dump) and NAME.RAND.
func (b *Bindings) Names() []string {
	names := make([]string, 0, b.m.Count())
	b.m.Iter(func(k string, _ Item) bool {
		names = append(names, k)
		return false
	})
	return names
}
