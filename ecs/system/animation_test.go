package system

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

func TestAnimationSystem(t *testing.T) {
	tests := []struct {
		name        string
		def         component.AnimationDef
		ticks       int
		wantFrame   int
		wantPlaying bool
	}{
		{
			name:        "one frame per tick",
			def:         component.AnimationDef{Row: 1, FrameCount: 4, FrameW: 16, FrameH: 16, FPS: 60, Loop: true},
			ticks:       1,
			wantFrame:   1,
			wantPlaying: true,
		},
		{
			name:        "loops",
			def:         component.AnimationDef{Row: 1, FrameCount: 4, FrameW: 16, FrameH: 16, FPS: 60, Loop: true},
			ticks:       5,
			wantFrame:   1,
			wantPlaying: true,
		},
		{
			name:        "slow clip",
			def:         component.AnimationDef{Row: 0, FrameCount: 4, FrameW: 16, FrameH: 16, FPS: 4, Loop: true},
			ticks:       14,
			wantFrame:   0,
			wantPlaying: true,
		},
		{
			name:        "one shot holds last frame",
			def:         component.AnimationDef{Row: 2, FrameCount: 4, FrameW: 16, FrameH: 16, FPS: 60},
			ticks:       10,
			wantFrame:   3,
			wantPlaying: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			anim := &component.Animation{
				Sheet:   ebiten.NewImage(64, 48),
				Defs:    map[string]component.AnimationDef{"clip": tc.def},
				Current: "clip",
				Playing: true,
			}
			sprite := &component.Sprite{}
			_ = ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
			_ = ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)

			s := NewAnimationSystem()
			for i := 0; i < tc.ticks; i++ {
				s.Update(w)
			}

			if anim.Frame != tc.wantFrame || anim.Playing != tc.wantPlaying {
				t.Fatalf("expected frame %d playing=%v, got %d playing=%v", tc.wantFrame, tc.wantPlaying, anim.Frame, anim.Playing)
			}
			x := tc.wantFrame * tc.def.FrameW
			y := tc.def.Row * tc.def.FrameH
			want := image.Rect(x, y, x+tc.def.FrameW, y+tc.def.FrameH)
			if !sprite.UseSource || sprite.Source != want || sprite.Image != anim.Sheet {
				t.Fatalf("expected source %v from the sheet, got %v use=%v", want, sprite.Source, sprite.UseSource)
			}
		})
	}
}

func TestAnimationSystemSkipsUnknownClip(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	sprite := &component.Sprite{}
	_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Current: "nope", Playing: true, Sheet: ebiten.NewImage(16, 16)})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)

	NewAnimationSystem().Update(w)
	if sprite.Image != nil || sprite.UseSource {
		t.Fatalf("sprite changed for an unknown clip")
	}
}
