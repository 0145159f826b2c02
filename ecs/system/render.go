package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

var wallColor = color.NRGBA{R: 0x8b, G: 0x73, B: 0x55, A: 0xff}

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	r.drawArena(w, screen)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sortByLayer(w, entities)

	hud := make([]ecs.Entity, 0, 4)
	for _, e := range entities {
		if ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
			hud = append(hud, e)
			continue
		}
		drawSprite(w, e, screen)
	}
	for _, e := range hud {
		drawSprite(w, e, screen)
	}
}

func sortByLayer(w *ecs.World, entities []ecs.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}

func drawSprite(w *ecs.World, e ecs.Entity, screen *ebiten.Image) {
	if ecs.Has(w, e, component.HiddenComponent.Kind()) {
		return
	}

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || s.Image == nil {
		return
	}

	img := s.Image
	if s.UseSource {
		if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
			img = sub
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.OriginX, -s.OriginY)

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	if s.FlipX {
		sx = -sx
	}

	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}

	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.X, t.Y)

	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawArena(w *ecs.World, screen *ebiten.Image) {
	e, ok := w.First(component.ArenaComponent.Kind())
	if !ok {
		return
	}
	arena, ok := ecs.Get(w, e, component.ArenaComponent.Kind())
	if !ok {
		return
	}

	if arena.Background != nil {
		screen.Fill(arena.Background)
	}

	thickness := float32(arena.Thickness)
	if thickness <= 0 {
		thickness = 1
	}
	vector.StrokeRect(screen, 0, 0, float32(arena.Width), float32(arena.Height), thickness*2, wallColor, false)
}
