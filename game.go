package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/notewood/audio"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
	"github.com/milk9111/notewood/ecs/entity"
	"github.com/milk9111/notewood/ecs/system"
	"github.com/milk9111/notewood/levels"
	"github.com/milk9111/notewood/prefabs"
)

type Game struct {
	world       *ecs.World
	render      *system.RenderSystem
	platformSys *system.PlatformSystem
	engine      *audio.Engine

	levelName string
	debug     bool
	watcher   *prefabs.Watcher

	completeUI *ebitenui.UI
	uiShown    bool

	viewW, viewH int
}

func NewGame(levelName string, debug bool) (*Game, error) {
	g := &Game{
		levelName: levelName,
		debug:     debug,
		render:    system.NewRenderSystem(),
		engine:    audio.NewEngine(),
		viewW:     1280,
		viewH:     720,
	}

	if err := g.buildWorld(); err != nil {
		return nil, err
	}

	if debug {
		watcher, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) buildWorld() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(lvl))
	if err := entity.BuildLevel(w, lvl); err != nil {
		return fmt.Errorf("game: build level: %w", err)
	}

	platformSys, err := system.NewPlatformSystem()
	if err != nil {
		return err
	}
	g.platformSys = platformSys

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(platformSys)
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewNoteHoverSystem())
	w.AddSystem(system.NewNoteCollectSystem())
	w.AddSystem(system.NewGateSystem())
	w.AddSystem(system.NewPortalSystem())
	w.AddSystem(system.NewMessageSystem())
	w.AddSystem(system.NewOverlaySystem())
	w.AddSystem(system.NewAudioSystem(g.engine))
	w.AddSystem(system.NewHUDSystem())
	w.AddSystem(system.NewTTLSystem())

	g.world = w
	g.uiShown = false
	return nil
}

func (g *Game) reset() {
	if err := g.buildWorld(); err != nil {
		log.Printf("game: reset: %v", err)
		return
	}
	g.engine.Silence()
}

func (g *Game) Update() error {
	g.drainWatcher()

	// resizes feed into subsequent overlay mappings through the viewport
	if e, ok := ecs.First(g.world, component.ViewportComponent.Kind()); ok {
		if view, ok := ecs.Get(g.world, e, component.ViewportComponent.Kind()); ok && view != nil {
			view.Width = float64(g.viewW)
			view.Height = float64(g.viewH)
		}
	}

	g.world.Update()

	// the mix starts on the first explicit key press
	if !g.engine.Started() && anyKeyPressed(g.world) {
		if err := g.engine.Start(); err != nil {
			log.Printf("game: audio start: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
		return nil
	}

	if stage := currentStage(g.world); stage == component.StageCompleted {
		if g.completeUI == nil {
			g.completeUI = NewCompleteUI(g)
		}
		g.uiShown = true
	}
	if g.uiShown && g.completeUI != nil {
		g.completeUI.Update()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x14, G: 0x1a, B: 0x22, A: 0xff})
	g.render.Draw(g.world, screen)

	if g.uiShown && g.completeUI != nil {
		g.completeUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.viewW = outsideWidth
		g.viewH = outsideHeight
	}
	return g.viewW, g.viewH
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab changed: %s", name)
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("game: prefab watcher: %v", err)
			}
		default:
			if reload {
				if err := g.platformSys.Reload(); err != nil {
					log.Printf("game: script reload: %v", err)
				}
				g.reset()
			}
			return
		}
	}
}

func anyKeyPressed(w *ecs.World) bool {
	e, ok := ecs.First(w, component.InputStateComponent.Kind())
	if !ok {
		return false
	}
	in, ok := ecs.Get(w, e, component.InputStateComponent.Kind())
	return ok && in != nil && in.AnyPressed
}

func currentStage(w *ecs.World) component.Stage {
	e, ok := ecs.First(w, component.ProgressionComponent.Kind())
	if !ok {
		return component.StageExploring
	}
	prog, ok := ecs.Get(w, e, component.ProgressionComponent.Kind())
	if !ok || prog == nil {
		return component.StageExploring
	}
	return prog.Stage
}
