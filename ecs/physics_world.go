package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notewood/ecs/component"
	"github.com/milk9111/notewood/levels"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeDynamic
	collisionTypeKinematic
	collisionTypeGroundSensor
)

const gravityY = 1800.0

// PhysicsWorld owns the Chipmunk space and static collision shapes.
// Chipmunk's y axis matches the level's (y grows downward here), so
// gravity is positive.
type PhysicsWorld struct {
	level         *levels.Level
	space         *cp.Space
	handlersReady bool

	groundToEntity map[*cp.Shape]Entity
	entityStates   map[Entity]*component.CollisionState
}

// NewPhysicsWorld creates a physics world for a level.
func NewPhysicsWorld(level *levels.Level) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})

	pw := &PhysicsWorld{
		level:          level,
		space:          space,
		groundToEntity: make(map[*cp.Shape]Entity),
		entityStates:   make(map[Entity]*component.CollisionState),
	}
	pw.buildStaticShapes()
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetEntityState registers a collision state for an entity.
func (pw *PhysicsWorld) SetEntityState(e Entity, state *component.CollisionState) {
	if pw == nil || !e.Valid() {
		return
	}
	if state == nil {
		delete(pw.entityStates, e)
		return
	}
	pw.entityStates[e] = state
}

// EnsureBody creates the Chipmunk body and box shape for an entity if it
// does not have one yet. Transform X/Y is the sprite's top-left corner;
// the body is centered.
func (pw *PhysicsWorld) EnsureBody(e Entity, t *component.Transform, body *component.PhysicsBody, withGroundSensor bool) {
	if pw == nil || pw.space == nil || !e.Valid() || t == nil || body == nil {
		return
	}
	if body.Body != nil {
		return
	}

	cx := t.X + body.Width/2
	cy := t.Y + body.Height/2

	var cpBody *cp.Body
	switch {
	case body.Static:
		cpBody = cp.NewStaticBody()
	case body.Kinematic:
		cpBody = cp.NewKinematicBody()
	default:
		mass := body.Mass
		if mass <= 0 {
			mass = 1
		}
		// infinite moment keeps dynamic boxes upright
		cpBody = cp.NewBody(mass, math.Inf(1))
	}
	cpBody.SetPosition(cp.Vector{X: cx, Y: cy})

	shape := cp.NewBox(cpBody, body.Width, body.Height, 0)
	friction := body.Friction
	if friction == 0 {
		friction = 0.8
	}
	shape.SetFriction(friction)
	switch {
	case body.Static:
		shape.SetCollisionType(collisionTypeSolid)
	case body.Kinematic:
		shape.SetCollisionType(collisionTypeKinematic)
	default:
		shape.SetCollisionType(collisionTypeDynamic)
	}

	if !body.Static {
		pw.space.AddBody(cpBody)
	}
	pw.space.AddShape(shape)

	if withGroundSensor {
		bb := cp.BB{
			L: -body.Width * 0.45,
			B: body.Height / 2,
			R: body.Width * 0.45,
			T: body.Height/2 + 3,
		}
		ground := cp.NewBox2(cpBody, bb, 0)
		ground.SetSensor(true)
		ground.SetCollisionType(collisionTypeGroundSensor)
		pw.space.AddShape(ground)
		pw.groundToEntity[ground] = e
	}

	body.Body = cpBody
	body.Shape = shape
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) buildStaticShapes() {
	if pw == nil || pw.space == nil || pw.level == nil {
		return
	}

	for _, r := range pw.level.Ground {
		bb := cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
		shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		pw.space.AddShape(shape)
	}

	w := pw.level.Width
	h := pw.level.Height
	if w <= 0 || h <= 0 {
		return
	}
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w, Y: 0}},
		{a: cp.Vector{X: 0, Y: h}, b: cp.Vector{X: w, Y: h}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: h}},
		{a: cp.Vector{X: w, Y: 0}, b: cp.Vector{X: w, Y: h}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		pw.space.AddShape(shape)
	}
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	ground := func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		e, ok := world.groundToEntity[shapeA]
		if !ok {
			if e, ok = world.groundToEntity[shapeB]; !ok {
				return true
			}
		}
		if state := world.entityStates[e]; state != nil {
			state.Grounded = true
			state.GroundGrace = 6
		}
		return true
	}

	for _, solid := range []cp.CollisionType{collisionTypeSolid, collisionTypeKinematic} {
		handler := pw.space.NewCollisionHandler(collisionTypeGroundSensor, solid)
		handler.UserData = pw
		handler.PreSolveFunc = ground
	}

	pw.handlersReady = true
}
