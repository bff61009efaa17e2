package ecs

import "github.com/milk9111/notewood/ecs/component"

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and removes all of its components.
// Returns false if the handle was stale.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Add attaches (or replaces) a component on an entity.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.storeFor(kind.ID()).Set(e.id(), value)
	return nil
}

// Get returns the component of the given kind, if present.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.storeFor(kind.ID()).Get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	if !ok || cast == nil {
		return nil, false
	}
	return cast, true
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return false
	}
	return w.storeFor(kind.ID()).Has(e.id())
}

// Remove detaches the component from the entity if present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return false
	}
	return w.storeFor(kind.ID()).Remove(e.id())
}

// First returns some live entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !kind.Valid() {
		return 0, false
	}
	for _, id := range w.storeFor(kind.ID()).ids() {
		e := makeEntity(id, w.entities.gens[id-1])
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity carrying the component. The dense id
// list is snapshotted first, so callbacks may add or remove components
// and destroy entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || !kind.Valid() || fn == nil {
		return
	}
	ids := append([]entityID(nil), w.storeFor(kind.ID()).ids()...)
	for _, id := range ids {
		e := makeEntity(id, w.entities.gens[id-1])
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[T1, T2 any](w *World, k1 component.ComponentKind[T1], k2 component.ComponentKind[T2], fn func(Entity, *T1, *T2)) {
	ForEach(w, k1, func(e Entity, v1 *T1) {
		if v2, ok := Get(w, e, k2); ok {
			fn(e, v1, v2)
		}
	})
}
