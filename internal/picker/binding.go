package picker

// Binding is a two-way reference to the caller's current selection. The
// picker reads it every pass and writes it only when a gesture commits.
type Binding[V comparable] interface {
	Get() V
	Set(V)
}

type pointerBinding[V comparable] struct {
	p *V
}

func (b pointerBinding[V]) Get() V  { return *b.p }
func (b pointerBinding[V]) Set(v V) { *b.p = v }

// Bind binds to a caller-owned variable.
func Bind[V comparable](p *V) Binding[V] {
	return pointerBinding[V]{p: p}
}

type funcBinding[V comparable] struct {
	get func() V
	set func(V)
}

func (b funcBinding[V]) Get() V  { return b.get() }
func (b funcBinding[V]) Set(v V) { b.set(v) }

// BindFunc binds to accessor functions.
func BindFunc[V comparable](get func() V, set func(V)) Binding[V] {
	return funcBinding[V]{get: get, set: set}
}
