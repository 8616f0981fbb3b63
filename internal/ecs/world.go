package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"

	"github.com/younwookim/simplemenu/internal/domain/menu"
)

// Entity is a handle into the world (generation checked, never dangling)
type Entity = donburi.Entity

// World is the UI scene graph.
//
// Nodes are linked with the transform hierarchy, which keeps children in
// append order. Scene roots are indexed by the marker of the scene that owns them, so
// tearing a scene down is a lookup followed by a recursive despawn rather
// than a scan of the whole graph.
type World struct {
	world donburi.World

	owners  map[Marker][]Entity
	markers []Marker // first-seen order, keeps Roots deterministic

	generation uint64
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		world:  donburi.NewWorld(),
		owners: make(map[Marker][]Entity),
	}
}

// Raw returns the underlying ECS world (event bus, ad hoc queries)
func (w *World) Raw() donburi.World {
	return w.world
}

// Generation changes every time an entity is spawned or despawned
func (w *World) Generation() uint64 {
	return w.generation
}

// Len returns the number of live entities
func (w *World) Len() int {
	return w.world.Len()
}

// Exists reports whether the entity is still alive
func (w *World) Exists(e Entity) bool {
	return w.world.Valid(e)
}

// Entry returns the entry for a live entity, nil otherwise
func (w *World) Entry(e Entity) *donburi.Entry {
	if !w.world.Valid(e) {
		return nil
	}
	return w.world.Entry(e)
}

// SpawnRoot creates a scene root owned by marker
func (w *World) SpawnRoot(marker Marker, node Node, visible bool) Entity {
	e := w.world.Create(marker, transform.Transform, NodeComponent, VisibilityComponent)
	entry := w.world.Entry(e)
	NodeComponent.SetValue(entry, node)
	VisibilityComponent.SetValue(entry, Visibility{Visible: visible})

	if _, seen := w.owners[marker]; !seen {
		w.markers = append(w.markers, marker)
	}
	w.owners[marker] = append(w.owners[marker], e)
	w.generation++
	return e
}

// SpawnChild creates an entity under parent with the given components.
// Values are left zeroed; set them through the returned entry.
func (w *World) SpawnChild(parent Entity, components ...component.IComponentType) *donburi.Entry {
	if !w.world.Valid(parent) {
		return nil
	}
	pe := w.world.Entry(parent)
	if !pe.HasComponent(transform.Transform) {
		pe.AddComponent(transform.Transform)
	}

	comps := append([]component.IComponentType{transform.Transform}, components...)
	entry := w.world.Entry(w.world.Create(comps...))
	transform.AppendChild(pe, entry, false)

	w.generation++
	return entry
}

// SpawnText adds a text node under parent
func (w *World) SpawnText(parent Entity, text Text) Entity {
	entry := w.SpawnChild(parent, TextComponent)
	if entry == nil {
		return donburi.Null
	}
	TextComponent.SetValue(entry, text)
	return entry.Entity()
}

// SpawnButton adds a button with its label under parent. Extra components
// (action tags) are attached to the button, not the label.
func (w *World) SpawnButton(parent Entity, style Style, label Text, tags ...component.IComponentType) *donburi.Entry {
	comps := append([]component.IComponentType{NodeComponent, ButtonComponent, InteractionComponent}, tags...)
	entry := w.SpawnChild(parent, comps...)
	if entry == nil {
		return nil
	}
	NodeComponent.SetValue(entry, Node{Style: style})
	InteractionComponent.SetValue(entry, menu.None)

	btn := entry.Entity()
	w.SpawnText(btn, label)
	return w.world.Entry(btn)
}

// SpawnCamera creates the UI camera; views draw nothing without one
func (w *World) SpawnCamera() Entity {
	e := w.world.Create(UICameraTag)
	w.generation++
	return e
}

// HasCamera reports whether a UI camera exists
func (w *World) HasCamera() bool {
	return w.Count(UICameraTag) > 0
}

// Count returns the number of entities carrying the component
func (w *World) Count(c component.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w.world)
}

// Roots returns every live scene root in marker first-seen order
func (w *World) Roots() []Entity {
	var out []Entity
	for _, m := range w.markers {
		for _, e := range w.owners[m] {
			if w.world.Valid(e) {
				out = append(out, e)
			}
		}
	}
	return out
}

// RootsOf returns the live roots owned by marker
func (w *World) RootsOf(marker Marker) []Entity {
	var out []Entity
	for _, e := range w.owners[marker] {
		if w.world.Valid(e) {
			out = append(out, e)
		}
	}
	return out
}

// ChildrenOf returns the entity's live children in spawn order
func (w *World) ChildrenOf(e Entity) []Entity {
	entry := w.Entry(e)
	if entry == nil || !entry.HasComponent(transform.Transform) {
		return nil
	}
	children, ok := transform.GetChildren(entry)
	if !ok {
		return nil
	}
	out := make([]Entity, 0, len(children))
	for _, c := range children {
		if c.Valid() {
			out = append(out, c.Entity())
		}
	}
	return out
}

// ParentOf returns the entity's parent, if it has one
func (w *World) ParentOf(e Entity) (Entity, bool) {
	entry := w.Entry(e)
	if entry == nil || !entry.HasComponent(transform.Transform) {
		return donburi.Null, false
	}
	parent, ok := transform.GetParent(entry)
	if !ok {
		return donburi.Null, false
	}
	return parent.Entity(), true
}

// Walk visits every tree owned by marker depth-first, parents before
// children, in spawn order.
func (w *World) Walk(marker Marker, fn func(entry *donburi.Entry)) {
	for _, root := range w.RootsOf(marker) {
		w.walk(root, fn)
	}
}

func (w *World) walk(e Entity, fn func(entry *donburi.Entry)) {
	entry := w.Entry(e)
	if entry == nil {
		return
	}
	fn(entry)
	for _, c := range w.ChildrenOf(e) {
		w.walk(c, fn)
	}
}

// DespawnRecursive removes an entity and all of its descendants, and
// detaches it from its parent.
func (w *World) DespawnRecursive(e Entity) {
	if !w.world.Valid(e) {
		return
	}
	entry := w.world.Entry(e)
	if entry.HasComponent(transform.Transform) {
		transform.RemoveRecursive(entry)
	} else {
		w.world.Remove(e)
	}
	w.generation++
}

// Teardown removes every node owned by marker, descendants included.
// Entities tagged with marker outside SpawnRoot are swept as well.
// Tearing down a scene that has nothing spawned is a no-op.
func (w *World) Teardown(marker Marker) int {
	removed := 0
	for _, root := range w.owners[marker] {
		if w.world.Valid(root) {
			w.DespawnRecursive(root)
			removed++
		}
	}
	delete(w.owners, marker)

	var stray []Entity
	donburi.NewQuery(filter.Contains(marker)).Each(w.world, func(entry *donburi.Entry) {
		stray = append(stray, entry.Entity())
	})
	for _, e := range stray {
		if w.world.Valid(e) {
			w.DespawnRecursive(e)
			removed++
		}
	}
	return removed
}

// SetInteraction records the input signal of a button
func (w *World) SetInteraction(e Entity, i menu.Interaction) {
	entry := w.Entry(e)
	if entry == nil || !entry.HasComponent(InteractionComponent) {
		return
	}
	InteractionComponent.SetValue(entry, i)
}

// Interaction returns the current signal of a button
func (w *World) Interaction(e Entity) menu.Interaction {
	entry := w.Entry(e)
	if entry == nil || !entry.HasComponent(InteractionComponent) {
		return menu.None
	}
	return *InteractionComponent.Get(entry)
}

// ReleaseClicks downgrades Clicked to Hovered so a click is seen for
// exactly one frame; the cursor is still over the button.
func (w *World) ReleaseClicks() {
	donburi.NewQuery(filter.Contains(InteractionComponent)).Each(w.world, func(entry *donburi.Entry) {
		if i := InteractionComponent.Get(entry); *i == menu.Clicked {
			*i = menu.Hovered
		}
	})
}
