package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const debugDotSize = 4

// DrawPhysicsDebug outlines every shape in the physics space, tinted by
// what the shape belongs to. The arena has no camera so world and screen
// coordinates coincide.
func DrawPhysicsDebug(ps *PhysicsSystem, screen *ebiten.Image) {
	if ps == nil || ps.space == nil || screen == nil {
		return
	}
	cp.DrawSpace(ps.space, &physicsDebugDrawer{screen: screen, kinds: ps.kinds})
}

func DrawHeroDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind(), component.HeroComponent.Kind())
	if !ok {
		return
	}
	hero, ok := ecs.Get(w, player, component.HeroComponent.Kind())
	if !ok || hero.Actor == nil {
		return
	}
	a := hero.Actor
	pos := a.Position()
	vel := a.Velocity()
	reload := 0
	if cd, ok := ecs.Get(w, player, component.CooldownComponent.Kind()); ok {
		reload = cd.Frames
	}
	text := fmt.Sprintf("State: %s\nFacing: %s\nHP: %d/%d\nPos: %.0f,%.0f\nVel: %.0f,%.0f\nReload: %d\nFPS: %.0f",
		a.State(), a.Facing(), a.HitPoints(), a.MaxHitPoints(), pos.X, pos.Y, vel.X, vel.Y, reload, ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, text, 10, 40)
}

var debugKindColors = map[cp.CollisionType]cp.FColor{
	collisionTypeHero:       {R: 0.3, G: 0.6, B: 1, A: 0.9},
	collisionTypeSolid:      {R: 0.2, G: 1, B: 0.2, A: 0.9},
	collisionTypeProjectile: {R: 1, G: 0.9, B: 0.2, A: 0.9},
	collisionTypeHazard:     {R: 1, G: 0.3, B: 0.3, A: 0.9},
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	kinds  map[*cp.Shape]cp.CollisionType
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := pos.Add(cp.ForAngle(angle).Mult(radius))
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(math.Max(1, radius*2)), toNRGBA(outline), false)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	vector.FillCircle(d.screen, float32(pos.X), float32(pos.Y), float32(size/2), toNRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return debugKindColors[collisionTypeSolid]
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	c, ok := debugKindColors[d.kinds[shape]]
	if !ok {
		return cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 0.9}
	}
	return c
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	vector.StrokeCircle(d.screen, float32(center.X), float32(center.Y), float32(radius), 1, toNRGBA(c), false)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
