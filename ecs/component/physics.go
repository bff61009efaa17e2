package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width/Height describe the box shape; Body and Shape are filled in by the
// physics world the first time the entity is seen.
type PhysicsBody struct {
	Body      *cp.Body
	Shape     *cp.Shape
	Width     float64
	Height    float64
	Mass      float64
	Friction  float64
	Static    bool
	Kinematic bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// CollisionState is written by physics-world collision handlers and read
// by the player controller.
type CollisionState struct {
	Grounded    bool
	GroundGrace int
}

var CollisionStateComponent = NewComponent[CollisionState]()
