package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

const (
	hudPaddingX = 12.0
	hudPaddingY = 12.0
	hudSpacing  = 8.0
	hudTextW    = 64
	hudTextH    = 16
	boardTextW  = 420
	boardTextH  = 16
	boardBottom = 28.0
)

// HUDSystem lays out the note counter (top-right, icon + "collected/total")
// and the message board line (bottom-center). Text images are re-rendered
// only when the text changes.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem { return &HUDSystem{} }

func (s *HUDSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var view *component.Viewport
	if e, ok := ecs.First(w, component.ViewportComponent.Kind()); ok {
		view, _ = ecs.Get(w, e, component.ViewportComponent.Kind())
	}
	if view == nil || view.Width <= 0 {
		return
	}

	s.updateCounter(w, view)
	s.updateBoard(w, view)
}

func (s *HUDSystem) updateCounter(w *ecs.World, view *component.Viewport) {
	counterEntity, ok := ecs.First(w, component.NoteCounterComponent.Kind())
	if !ok {
		return
	}
	counter, _ := ecs.Get(w, counterEntity, component.NoteCounterComponent.Kind())
	if counter == nil {
		return
	}

	var (
		iconTransform *component.Transform
		iconSprite    *component.Sprite
		textEntity    ecs.Entity
		textTransform *component.Transform
		textSprite    *component.Sprite
	)
	if e, ok := ecs.First(w, component.NoteCounterIconComponent.Kind()); ok {
		iconTransform, _ = ecs.Get(w, e, component.TransformComponent.Kind())
		iconSprite, _ = ecs.Get(w, e, component.SpriteComponent.Kind())
	}
	if e, ok := ecs.First(w, component.NoteCounterTextComponent.Kind()); ok {
		textEntity = e
		textTransform, _ = ecs.Get(w, e, component.TransformComponent.Kind())
		textSprite, _ = ecs.Get(w, e, component.SpriteComponent.Kind())
	}
	if iconTransform == nil || iconSprite == nil || iconSprite.Image == nil || textTransform == nil || textSprite == nil {
		return
	}

	if counter.Collected < 0 {
		counter.Collected = 0
	}
	if counter.Collected > counter.Total && counter.Total > 0 {
		counter.Collected = counter.Total
	}

	nextText := fmt.Sprintf("%d / %d", counter.Collected, counter.Total)
	if textSprite.Image == nil || counter.RenderedText != nextText {
		textImage := ebiten.NewImage(hudTextW, hudTextH)
		ebitenutil.DebugPrintAt(textImage, nextText, 0, 0)
		textSprite.Image = textImage
		counter.RenderedText = nextText
		_ = ecs.Add(w, textEntity, component.SpriteComponent.Kind(), textSprite)
	}

	iconW := float64(iconSprite.Image.Bounds().Dx())
	iconH := float64(iconSprite.Image.Bounds().Dy())
	textW := float64(textSprite.Image.Bounds().Dx())
	textH := float64(textSprite.Image.Bounds().Dy())

	textX := view.Width - hudPaddingX - textW
	iconX := textX - hudSpacing - iconW
	textY := hudPaddingY + (iconH-textH)/2
	if textY < hudPaddingY {
		textY = hudPaddingY
	}

	iconTransform.X = iconX
	iconTransform.Y = hudPaddingY
	textTransform.X = textX
	textTransform.Y = textY
}

func (s *HUDSystem) updateBoard(w *ecs.World, view *component.Viewport) {
	boardEntity, ok := ecs.First(w, component.MessageBoardComponent.Kind())
	if !ok {
		return
	}
	board, _ := ecs.Get(w, boardEntity, component.MessageBoardComponent.Kind())
	if board == nil {
		return
	}

	textEntity, ok := ecs.First(w, component.MessageBoardTextComponent.Kind())
	if !ok {
		return
	}
	textTransform, _ := ecs.Get(w, textEntity, component.TransformComponent.Kind())
	textSprite, _ := ecs.Get(w, textEntity, component.SpriteComponent.Kind())
	if textTransform == nil || textSprite == nil {
		return
	}

	if textSprite.Image == nil || board.RenderedText != board.Text {
		textImage := ebiten.NewImage(boardTextW, boardTextH)
		ebitenutil.DebugPrintAt(textImage, board.Text, 0, 0)
		textSprite.Image = textImage
		board.RenderedText = board.Text
		_ = ecs.Add(w, textEntity, component.SpriteComponent.Kind(), textSprite)
	}

	textTransform.X = (view.Width - boardTextW) / 2
	textTransform.Y = view.Height - boardBottom
}
