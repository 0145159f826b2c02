package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const (
	collisionTypeHero cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeProjectile
	collisionTypeHazard
)

// heroGroup keeps the hero and its arrows from touching each other.
const heroGroup uint = 1

// PhysicsSystem mirrors bodies into a gravity-free Chipmunk space, walls in
// the arena and reports projectile impacts.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	kinds    map[*cp.Shape]cp.CollisionType

	// projectile -> what it hit; 0 is a wall
	impacts map[ecs.Entity]ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
		kinds:    make(map[*cp.Shape]cp.CollisionType),
		impacts:  make(map[ecs.Entity]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncArena(w)
	ps.applyVelocities(w)

	ps.space.Step(common.TickDelta)

	ps.syncTransforms(w)
	ps.flushImpacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	for _, other := range []cp.CollisionType{collisionTypeSolid, collisionTypeHazard} {
		handler := ps.space.NewCollisionHandler(collisionTypeProjectile, other)
		handler.UserData = ps
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return false
			}
			shapeA, shapeB := arb.Shapes()
			projectile, target := shapeA, shapeB
			if sys.kinds[shapeA] != collisionTypeProjectile {
				projectile, target = shapeB, shapeA
			}
			pe, ok := sys.shapes[projectile]
			if !ok {
				return false
			}
			if _, seen := sys.impacts[pe]; seen {
				return false
			}
			// walls resolve to 0, hazards to their entity
			sys.impacts[pe] = sys.shapes[target]
			return false
		}
	}

	ps.handlersReady = true
}

func collisionTypeFor(w *ecs.World, e ecs.Entity) cp.CollisionType {
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		return collisionTypeHero
	case ecs.Has(w, e, component.ProjectileComponent.Kind()):
		return collisionTypeProjectile
	case ecs.Has(w, e, component.HazardComponent.Kind()):
		return collisionTypeHazard
	default:
		return collisionTypeSolid
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			return
		}

		kind := collisionTypeFor(w, e)
		info := ps.createBodyInfo(transform, bodyComp, kind)
		if info == nil {
			return
		}
		ps.entities[e] = info
		for _, shape := range info.shapes {
			ps.shapes[shape] = e
			ps.kinds[shape] = kind
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, kind cp.CollisionType) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width = 16
		height = 16
	}

	center := cp.Vector{X: transform.X, Y: transform.Y}
	info := &bodyInfo{static: bodyComp.Static}

	var body *cp.Body
	if bodyComp.Static {
		body = ps.space.StaticBody
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// top-down bodies never spin
		body = cp.NewBody(mass, cp.INFINITY)
		body.SetPosition(center)
		body.SetAngle(transform.Rotation)
		ps.space.AddBody(body)
	}

	var shape *cp.Shape
	switch {
	case radius > 0 && bodyComp.Static:
		shape = cp.NewCircle(body, radius, center)
	case radius > 0:
		shape = cp.NewCircle(body, radius, cp.Vector{})
	case bodyComp.Static:
		bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
		shape = cp.NewBox2(body, bb, 0)
	default:
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(kind)
	shape.SetSensor(bodyComp.Sensor)
	if kind == collisionTypeHero || kind == collisionTypeProjectile {
		shape.SetFilter(cp.ShapeFilter{Group: heroGroup, Categories: cp.ALL_CATEGORIES, Mask: cp.ALL_CATEGORIES})
	}
	ps.space.AddShape(shape)

	info.body = body
	info.shapes = []*cp.Shape{shape}
	return info
}

// syncArena builds the four wall segments once per arena entity.
func (ps *PhysicsSystem) syncArena(w *ecs.World) {
	ecs.ForEach(w, component.ArenaComponent.Kind(), func(e ecs.Entity, arena *component.Arena) {
		if _, exists := ps.entities[e]; exists {
			return
		}
		if arena.Width <= 0 || arena.Height <= 0 {
			return
		}

		worldW, worldH := arena.Width, arena.Height
		thickness := arena.Thickness
		if thickness <= 0 {
			thickness = 1
		}
		segments := []struct {
			a cp.Vector
			b cp.Vector
		}{
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
			{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
			{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
		}

		info := &bodyInfo{static: true, body: ps.space.StaticBody}
		for _, seg := range segments {
			shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
			shape.SetFriction(0)
			shape.SetCollisionType(collisionTypeSolid)
			ps.space.AddShape(shape)
			ps.kinds[shape] = collisionTypeSolid
			info.shapes = append(info.shapes, shape)
		}
		ps.entities[e] = info
	})
}

func (ps *PhysicsSystem) applyVelocities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, vel *component.Velocity) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		bodyComp.Body.SetVelocityVector(cp.Vector{X: vel.X, Y: vel.Y})
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	})
}

func (ps *PhysicsSystem) flushImpacts(w *ecs.World) {
	for projectile, target := range ps.impacts {
		delete(ps.impacts, projectile)
		if !w.IsAlive(projectile) {
			continue
		}
		_ = ecs.Add(w, projectile, component.ProjectileImpactComponent.Kind(), &component.ProjectileImpact{Target: uint64(target)})
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.ArenaComponent.Kind())) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil {
				continue
			}
			ps.space.RemoveShape(shape)
			delete(ps.shapes, shape)
			delete(ps.kinds, shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
