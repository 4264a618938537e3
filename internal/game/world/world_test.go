package world

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/boxview/pkg/math"
)

func sampleWorld() *World {
	w := New()
	w.AddBox(math.Vec3{X: -1, Y: 3.5, Z: -2.5}, math.Vec3{X: 5, Y: 15, Z: 5}, math.Vec3{X: 255})
	w.AddBox(math.Vec3{X: -250, Y: 0, Z: -250}, math.Vec3{X: 500, Y: 0.1, Z: 500}, math.Vec3{X: 90, Y: 90, Z: 90})
	w.AddBox(math.Vec3{X: 10, Y: 0, Z: 10}, math.Vec3{X: 2, Y: 2, Z: 2}, math.Vec3{Y: 255})
	return w
}

func TestAddBoxKeepsOrder(t *testing.T) {
	w := sampleWorld()
	require.Equal(t, 3, w.Len())

	assert.Equal(t, math.Vec3{X: 255}, w.At(0).Color)
	assert.Equal(t, float32(-250), w.At(1).Origin.X)
	assert.Equal(t, math.Vec3{Y: 255}, w.At(2).Color)
}

func TestAddBoxAssignsUniqueIDs(t *testing.T) {
	w := sampleWorld()
	seen := map[string]bool{}
	for _, b := range w.All() {
		assert.False(t, seen[b.ID.String()], "duplicate id %s", b.ID)
		seen[b.ID.String()] = true
	}
}

func TestAllIsRestartable(t *testing.T) {
	w := sampleWorld()

	collect := func() []Box {
		var out []Box
		for _, b := range w.All() {
			out = append(out, b)
		}
		return out
	}

	first := collect()
	second := collect()
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestAllStopsEarly(t *testing.T) {
	w := sampleWorld()
	n := 0
	for range w.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestIterationDoesNotExposeStorage(t *testing.T) {
	w := sampleWorld()
	for _, b := range w.All() {
		b.Origin.Y += 100
	}
	w.ForEach(func(b Box) {
		b.Extent = math.Vec3{}
	})

	assert.Equal(t, float32(3.5), w.At(0).Origin.Y)
	assert.Equal(t, float32(15), w.At(0).Extent.Y)
}

func TestForEachMatchesAll(t *testing.T) {
	w := sampleWorld()

	var viaForEach []Box
	w.ForEach(func(b Box) { viaForEach = append(viaForEach, b) })

	var viaAll []Box
	for _, b := range w.All() {
		viaAll = append(viaAll, b)
	}
	assert.Equal(t, viaAll, viaForEach)
}

func TestMutateFirstMatchOnly(t *testing.T) {
	w := New()
	a := w.AddBox(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{})
	b := w.AddBox(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{})

	updated, ok := w.Mutate(func(Box) bool { return true }, func(box *Box) {
		box.Origin.Y += 2
	})
	require.True(t, ok)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, float32(2), w.At(0).Origin.Y)
	assert.Equal(t, float32(0), w.At(1).Origin.Y)

	_, ok = w.Mutate(ByID(b.ID), func(box *Box) { box.Origin.Y -= 1 })
	require.True(t, ok)
	assert.Equal(t, float32(-1), w.At(1).Origin.Y)
}

func TestMutateKeepsID(t *testing.T) {
	w := sampleWorld()
	id := w.At(0).ID

	w.Mutate(ByID(id), func(box *Box) {
		box.ID = w.At(1).ID
	})
	assert.Equal(t, id, w.At(0).ID)
}

func TestMutateNoMatch(t *testing.T) {
	w := sampleWorld()
	before := slices.Clone(w.boxes)

	_, ok := w.Mutate(func(Box) bool { return false }, func(box *Box) { box.Origin.Y = 99 })
	assert.False(t, ok)

	var after []Box
	w.ForEach(func(b Box) { after = append(after, b) })
	assert.Equal(t, before, after)
}

func TestBounds(t *testing.T) {
	w := sampleWorld()
	bounds := w.Bounds()
	require.Len(t, bounds, 3)

	assert.Equal(t, math.Vec3{X: 250, Y: 0.1, Z: 250}, bounds[1].Max)
	assert.True(t, bounds[0].Contains(math.Vec3{X: 0, Y: 10, Z: 0}))
	assert.Equal(t, w.At(2).Max(), bounds[2].Max)
}

func TestFind(t *testing.T) {
	w := sampleWorld()
	target := w.At(2)

	got, ok := w.Find(ByID(target.ID))
	require.True(t, ok)
	assert.Equal(t, target, got)

	_, ok = w.Find(func(b Box) bool { return b.Origin.Y > 1000 })
	assert.False(t, ok)
}
