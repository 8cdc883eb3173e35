package engine

import (
	"errors"

	"github.com/lixenwraith/sugar-pop/component"
	"github.com/lixenwraith/sugar-pop/core"
	"github.com/lixenwraith/sugar-pop/physics"
	"github.com/lixenwraith/sugar-pop/vmath"
)

var (
	// ErrStaleEntity is returned for handles issued by a dropped generation
	ErrStaleEntity = errors.New("engine: stale entity")
	// ErrLineFinal is returned when extending a finalized drawn line
	ErrLineFinal = errors.New("engine: line already finalized")
)

// Registry owns every level-scoped entity and its physics bodies
// Reset drops the whole generation at once, so no handle outlives its level
type Registry struct {
	world      physics.World
	generation uint32
	next       uint32

	Grains  *Store[*component.GrainComponent]
	Buckets *Store[*component.BucketComponent]
	Statics *Store[*component.StaticComponent]
	Lines   *Store[*component.DrawnLineComponent]
}

// NewRegistry creates an empty registry bound to world
func NewRegistry(world physics.World) *Registry {
	return &Registry{
		world:      world,
		generation: 1,
		Grains:     NewStore[*component.GrainComponent](),
		Buckets:    NewStore[*component.BucketComponent](),
		Statics:    NewStore[*component.StaticComponent](),
		Lines:      NewStore[*component.DrawnLineComponent](),
	}
}

// World returns the physics world bodies are created in
func (r *Registry) World() physics.World {
	return r.world
}

// Generation returns the current generation number
func (r *Registry) Generation() uint32 {
	return r.generation
}

func (r *Registry) issue() core.Entity {
	r.next++
	return core.MakeEntity(r.generation, r.next)
}

// Valid reports whether e was issued by the current generation
func (r *Registry) Valid(e core.Entity) bool {
	return e != core.NoEntity && e.Generation() == r.generation && e.Index() <= r.next
}

// Reset removes every body from the physics world and drops all entities
func (r *Registry) Reset() {
	r.world.Clear()
	r.Grains.ClearAllComponents()
	r.Buckets.ClearAllComponents()
	r.Statics.ClearAllComponents()
	r.Lines.ClearAllComponents()
	r.generation++
	r.next = 0
}

// AddGrain creates a dynamic grain body at pos
func (r *Registry) AddGrain(pos vmath.Vec2, radius float64, mat physics.Material) core.Entity {
	e := r.issue()
	body := r.world.AddCircle(pos, radius, mat)
	r.Grains.SetComponent(e, &component.GrainComponent{Body: body, Radius: radius})
	return e
}

// Grain resolves a grain handle of the current generation
func (r *Registry) Grain(e core.Entity) (*component.GrainComponent, bool) {
	if !r.Valid(e) {
		return nil, false
	}
	return r.Grains.GetComponent(e)
}

// RemoveGrains deletes a batch of grains and their bodies, returning how many were live
func (r *Registry) RemoveGrains(es []core.Entity) int {
	n := 0
	for _, e := range es {
		if !r.Valid(e) || !r.Grains.HasEntity(e) {
			continue
		}
		g, _ := r.Grains.GetComponent(e)
		r.world.Remove(g.Body)
		n++
	}
	r.Grains.RemoveBatch(es)
	return n
}

// AddStatic creates an immovable segment
func (r *Registry) AddStatic(s component.StaticComponent) core.Entity {
	e := r.issue()
	s.Body = r.world.AddSegment(s.A, s.B, s.LineWidth/2, physics.Material{
		Friction:    s.Friction,
		Restitution: s.Restitution,
	})
	r.Statics.SetComponent(e, &s)
	return e
}

// AddBucket creates an open-top bucket with left, bottom and right walls
func (r *Registry) AddBucket(bounds vmath.Rect, needed int, wallRadius float64, mat physics.Material) core.Entity {
	e := r.issue()
	bl := bounds.Min
	br := vmath.V(bounds.Max.X, bounds.Min.Y)
	tl := vmath.V(bounds.Min.X, bounds.Max.Y)
	tr := bounds.Max
	walls := []physics.BodyID{
		r.world.AddSegment(bl, tl, wallRadius, mat),
		r.world.AddSegment(bl, br, wallRadius, mat),
		r.world.AddSegment(br, tr, wallRadius, mat),
	}
	r.Buckets.SetComponent(e, &component.BucketComponent{
		Bounds:      bounds,
		NeededSugar: needed,
		Walls:       walls,
	})
	return e
}

// Bucket resolves a bucket handle of the current generation
func (r *Registry) Bucket(e core.Entity) (*component.BucketComponent, bool) {
	if !r.Valid(e) {
		return nil, false
	}
	return r.Buckets.GetComponent(e)
}

// RemoveBucketWalls deletes the wall bodies so grains fall through
func (r *Registry) RemoveBucketWalls(e core.Entity) error {
	b, ok := r.Bucket(e)
	if !ok {
		return ErrStaleEntity
	}
	for _, id := range b.Walls {
		r.world.Remove(id)
	}
	b.Walls = nil
	return nil
}

// BeginLine starts a drawn line anchored at p
func (r *Registry) BeginLine(p vmath.Vec2) core.Entity {
	e := r.issue()
	r.Lines.SetComponent(e, &component.DrawnLineComponent{
		Vertices: []vmath.Vec2{p},
	})
	return e
}

// Line resolves a drawn line handle of the current generation
func (r *Registry) Line(e core.Entity) (*component.DrawnLineComponent, bool) {
	if !r.Valid(e) {
		return nil, false
	}
	return r.Lines.GetComponent(e)
}

// ExtendLine appends p and backs the new span with a static segment
func (r *Registry) ExtendLine(e core.Entity, p vmath.Vec2, radius float64, mat physics.Material) error {
	l, ok := r.Line(e)
	if !ok {
		return ErrStaleEntity
	}
	if l.Final {
		return ErrLineFinal
	}
	body := r.world.AddSegment(l.Last(), p, radius, mat)
	l.Vertices = append(l.Vertices, p)
	l.Segments = append(l.Segments, body)
	return nil
}

// FinalizeLine closes the line to further vertices
func (r *Registry) FinalizeLine(e core.Entity) error {
	l, ok := r.Line(e)
	if !ok {
		return ErrStaleEntity
	}
	l.Final = true
	return nil
}
