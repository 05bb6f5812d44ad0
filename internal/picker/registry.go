package picker

import "github.com/andyrewlee/valuepicker/internal/geom"

// Item is one tagged child and where it was laid out, in container-local
// coordinates.
type Item[V comparable] struct {
	ID     V
	Bounds geom.Rect
}

// Registry collects item geometry during a layout pass. Registering an id
// twice keeps the first bounds; later duplicates are dropped.
type Registry[V comparable] struct {
	items []Item[V]
	seen  map[V]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry[V comparable]() *Registry[V] {
	return &Registry[V]{seen: make(map[V]struct{})}
}

// Begin starts a new pass, forgetting everything registered before.
func (r *Registry[V]) Begin() {
	r.items = r.items[:0]
	clear(r.seen)
}

// Register records an item's bounds for the current pass.
func (r *Registry[V]) Register(id V, bounds geom.Rect) {
	if _, dup := r.seen[id]; dup {
		return
	}
	r.seen[id] = struct{}{}
	r.items = append(r.items, Item[V]{ID: id, Bounds: bounds})
}

// Merge folds in items registered elsewhere during the same pass, in order,
// with the same first-seen-wins rule.
func (r *Registry[V]) Merge(items ...Item[V]) {
	for _, it := range items {
		r.Register(it.ID, it.Bounds)
	}
}

// Len returns the number of distinct items.
func (r *Registry[V]) Len() int {
	return len(r.items)
}

// Snapshot returns the items of the current pass in first-seen order. The
// slice is a copy.
func (r *Registry[V]) Snapshot() []Item[V] {
	out := make([]Item[V], len(r.items))
	copy(out, r.items)
	return out
}

// Lookup returns the item registered for id.
func (r *Registry[V]) Lookup(id V) (Item[V], bool) {
	return lookup(r.items, id)
}

// HitTest returns the first item whose bounds contain p.
func (r *Registry[V]) HitTest(p geom.Point) (V, bool) {
	return hitTest(r.items, p)
}

func lookup[V comparable](items []Item[V], id V) (Item[V], bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item[V]{}, false
}

func hitTest[V comparable](items []Item[V], p geom.Point) (V, bool) {
	for _, it := range items {
		if it.Bounds.Contains(p) {
			return it.ID, true
		}
	}
	var zero V
	return zero, false
}
