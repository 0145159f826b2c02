package assets

import (
	"testing"

	"github.com/milk9111/topdown/actor"
)

func TestHeroClipsMatchAnimations(t *testing.T) {
	want := map[string]bool{}
	for _, name := range actor.AnimationNames() {
		want[name] = true
	}
	if len(HeroClips) != len(want) {
		t.Fatalf("expected %d clips, got %d", len(want), len(HeroClips))
	}
	for _, clip := range HeroClips {
		if !want[clip] {
			t.Errorf("sheet row %q is not an actor animation", clip)
		}
	}
}

func TestGeneratedImages(t *testing.T) {
	cases := []struct {
		path string
		w, h int
	}{
		{"hero.png", HeroFrameCount * HeroFrameSize, len(HeroClips) * HeroFrameSize},
		{"assets/heart.png", 9, 8},
		{"arrow.png", 12, 3},
		{"tomb.png", 160, 160},
		{"/abs/path/assets/slime.png", 14, 10},
		{"spike.png", 14, 14},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			img, err := LoadRGBA(c.path)
			if err != nil {
				t.Fatal(err)
			}
			b := img.Bounds()
			if b.Dx() != c.w || b.Dy() != c.h {
				t.Fatalf("expected %dx%d, got %dx%d", c.w, c.h, b.Dx(), b.Dy())
			}
			opaque := false
			for y := b.Min.Y; y < b.Max.Y && !opaque; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
						opaque = true
						break
					}
				}
			}
			if !opaque {
				t.Fatalf("image is blank")
			}
		})
	}

	if _, err := LoadRGBA("missing.png"); err == nil {
		t.Fatalf("expected error for unknown asset")
	}
}

func TestSplitClip(t *testing.T) {
	cases := map[string][2]string{
		"walk-side":        {"walk", "side"},
		"attack-weapon-up": {"attack-weapon", "up"},
		"idle-down":        {"idle", "down"},
		"unknown":          {"unknown", ""},
	}
	for in, want := range cases {
		a, d := splitClip(in)
		if a != want[0] || d != want[1] {
			t.Errorf("splitClip(%q) = %q, %q", in, a, d)
		}
	}
}
