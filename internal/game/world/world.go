// Package world holds the boxes that make up the scene.
package world

import (
	"iter"

	"github.com/google/uuid"

	"github.com/Faultbox/boxview/internal/engine/picking"
	"github.com/Faultbox/boxview/pkg/math"
)

// Box is an axis-aligned box occupying [Origin, Origin+Extent].
// Color channels are in [0, 255].
type Box struct {
	ID     uuid.UUID
	Origin math.Vec3
	Extent math.Vec3
	Color  math.Vec3
}

// Max returns the corner opposite Origin.
func (b Box) Max() math.Vec3 {
	return b.Origin.Add(b.Extent)
}

// Bounds returns the box as an AABB for picking.
func (b Box) Bounds() picking.AABB {
	return picking.FromOriginExtent(b.Origin, b.Extent)
}

// World is an insertion-ordered list of boxes.
// It is owned by the frame loop and not safe for concurrent use.
type World struct {
	boxes []Box
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// AddBox appends a box and returns it. Extents are not validated; a negative
// extent gives an inverted box that renders and picks as nothing useful.
func (w *World) AddBox(origin, extent, color math.Vec3) Box {
	b := Box{
		ID:     uuid.New(),
		Origin: origin,
		Extent: extent,
		Color:  color,
	}
	w.boxes = append(w.boxes, b)
	return b
}

// Len returns the number of boxes.
func (w *World) Len() int {
	return len(w.boxes)
}

// At returns the box at index i.
func (w *World) At(i int) Box {
	return w.boxes[i]
}

// All yields index and a copy of every box in insertion order.
// The sequence can be ranged over any number of times.
func (w *World) All() iter.Seq2[int, Box] {
	return func(yield func(int, Box) bool) {
		for i, b := range w.boxes {
			if !yield(i, b) {
				return
			}
		}
	}
}

// ForEach calls visit with a copy of every box in insertion order.
func (w *World) ForEach(visit func(Box)) {
	for _, b := range w.boxes {
		visit(b)
	}
}

// Bounds returns the AABB of every box, in insertion order.
func (w *World) Bounds() []picking.AABB {
	out := make([]picking.AABB, len(w.boxes))
	for i, b := range w.boxes {
		out[i] = b.Bounds()
	}
	return out
}

// Find returns the first box matching pred.
func (w *World) Find(pred func(Box) bool) (Box, bool) {
	for _, b := range w.boxes {
		if pred(b) {
			return b, true
		}
	}
	return Box{}, false
}

// Mutate applies update to the first box matching pred and returns the
// updated box. The box ID cannot be changed by update.
func (w *World) Mutate(pred func(Box) bool, update func(*Box)) (Box, bool) {
	for i := range w.boxes {
		if !pred(w.boxes[i]) {
			continue
		}
		id := w.boxes[i].ID
		update(&w.boxes[i])
		w.boxes[i].ID = id
		return w.boxes[i], true
	}
	return Box{}, false
}

// ByID matches the box with the given ID.
func ByID(id uuid.UUID) func(Box) bool {
	return func(b Box) bool { return b.ID == id }
}
