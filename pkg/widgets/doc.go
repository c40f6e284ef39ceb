// Package widgets provides the retained widget tree: positioned widgets,
// collections that compose them, and the Manager that owns the tree.
//
// # Identity and Ownership
//
// Every widget carries an [ID] issued by a [Manager]. IDs start at 1 and are
// never reused within one manager; ID 0 belongs to the manager's root
// [Collection]. The manager keeps every widget it has seen in an arena keyed
// by ID. Collections hold child IDs, not widget values, and resolve them
// through that arena when they paint or recompute their bounds.
//
// Application code holds on to IDs and reaches widgets through the manager:
//
//	m := widgets.NewManager()
//	box := widgets.NewBox(m, 10, 20, 100, 50,
//	    widgets.UniformBorder(2, rendering.ColorBlack),
//	    rendering.ColorWhite)
//	m.Add(box)
//
//	// Later, e.g. from an animation step:
//	m.Update(box.ID(), func(c *widgets.Common) { c.X += 4 })
//
// # Painting
//
// [Manager.Paint] paints the root collection at offset (0, 0). Every
// [Widget.Paint] receives the absolute translation of its parent's origin and
// adds its own X and Y before drawing, so offsets compose additively down the
// tree. Children paint in insertion order; later children draw on top.
//
// # Bounds
//
// A collection's width and height are the tight bounding extent of its
// children, anchored at the collection's own origin. The extent is refreshed
// on Add and Remove. Moving a child directly does not resize its parent;
// call [Collection.Relayout] when that matters.
//
// # Threading
//
// The tree is not safe for concurrent use. Mutate it and paint it from the
// same goroutine, typically the host's frame loop. Add and Remove must not be
// called from inside a Paint.
package widgets
