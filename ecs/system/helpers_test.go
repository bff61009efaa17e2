package system

import (
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

// Test worlds are assembled by hand instead of through the entity
// builders so no GPU images get allocated.

func newProgressionWorld(total int) *ecs.World {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ProgressionComponent.Kind(), &component.Progression{
		Total: total,
		Stage: component.StageExploring,
	})
	return w
}

func addTestPlayer(w *ecs.World, x, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 240, JumpSpeed: 620})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 24, Height: 48})
	return e
}

func addTestNote(w *ecs.World, index int, x, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.NoteComponent.Kind(), &component.Note{
		Index:           index,
		CollisionWidth:  28,
		CollisionHeight: 28,
		BaseY:           y,
	})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	return e
}

func addTestBoard(w *ecs.World, text string) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.MessageBoardComponent.Kind(), &component.MessageBoard{
		DefaultText: text,
		Text:        text,
	})
	return e
}

func addTestCounter(w *ecs.World, total int) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.NoteCounterComponent.Kind(), &component.NoteCounter{Total: total})
	return e
}

func addTestGate(w *ecs.World) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.GateComponent.Kind(), &component.Gate{Locked: true})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	return e
}

func addTestPlatform(w *ecs.World) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.MovingPlatformComponent.Kind(), &component.MovingPlatform{OriginX: 300, OriginY: 400})
	return e
}

func addTestPortal(w *ecs.World, x, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PortalComponent.Kind(), &component.Portal{
		CollisionWidth:  44,
		CollisionHeight: 64,
	})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	return e
}

func stageOf(w *ecs.World) component.Stage {
	prog := progression(w)
	if prog == nil {
		return component.StageExploring
	}
	return prog.Stage
}

func movePlayer(w *ecs.World, x, y float64) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && t != nil {
		t.X = x
		t.Y = y
	}
}

// rampRecorder is a LayerRamper that just records calls.
type rampRecorder struct {
	calls []rampCall
}

type rampCall struct {
	layer  int
	target float64
	frames int
}

func (r *rampRecorder) RampLayer(layer int, target float64, frames int) {
	r.calls = append(r.calls, rampCall{layer: layer, target: target, frames: frames})
}
