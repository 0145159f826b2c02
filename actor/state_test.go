package actor

import "testing"

func TestNextTransitions(t *testing.T) {
	cases := []struct {
		name string
		cur  ActionState
		in   Input
		want ActionState
	}{
		{"idle_empty", StateIdle, Input{}, StateIdle},
		{"idle_move", StateIdle, Input{Left: true}, StateIdle},
		{"idle_primary", StateIdle, Input{Primary: true}, StateMelee},
		{"idle_secondary", StateIdle, Input{Secondary: true}, StateLoadingRanged},
		{"both_actions", StateIdle, Input{Primary: true, Secondary: true}, StateLoadingRanged},
		{"melee_release", StateMelee, Input{}, StateIdle},
		{"melee_hold", StateMelee, Input{Primary: true}, StateMelee},
		{"loading_empty", StateLoadingRanged, Input{}, StateLoadingRanged},
		{"loading_primary", StateLoadingRanged, Input{Primary: true}, StateLoadingRanged},
		{"loading_secondary", StateLoadingRanged, Input{Secondary: true}, StateLoadingRanged},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Next(c.cur, c.in); got != c.want {
				t.Fatalf("Next(%s, %+v) = %s, want %s", c.cur, c.in, got, c.want)
			}
		})
	}
}

func TestReady(t *testing.T) {
	if Ready(StateLoadingRanged) != StateIdle {
		t.Fatalf("ready must clear the latch")
	}
	if Ready(StateMelee) != StateMelee || Ready(StateIdle) != StateIdle {
		t.Fatalf("ready must not touch other states")
	}
}

func TestAnimationForMirrorsSides(t *testing.T) {
	for kind := AnimMove; kind < animKindCount; kind++ {
		t.Run(kind.String(), func(t *testing.T) {
			left, leftFlip := AnimationFor(kind, FacingLeft)
			right, rightFlip := AnimationFor(kind, FacingRight)
			if left != right {
				t.Fatalf("left/right must share a clip, got %q and %q", left, right)
			}
			if !leftFlip || rightFlip {
				t.Fatalf("only left is mirrored")
			}
			up, upFlip := AnimationFor(kind, FacingUp)
			down, downFlip := AnimationFor(kind, FacingDown)
			if up == down || up == left || down == left || upFlip || downFlip {
				t.Fatalf("up/down need their own unflipped clips: %q %q", up, down)
			}
		})
	}
}

func TestAnimationNamesUnique(t *testing.T) {
	names := AnimationNames()
	if len(names) != 12 {
		t.Fatalf("expected 12 distinct clips, got %d: %v", len(names), names)
	}
}

func TestResolveMovementNoKeys(t *testing.T) {
	m := resolveMovement(Input{Primary: true, Secondary: true}, 100, FacingRight)
	if m.turn || m.facing != FacingRight || !m.velocity.IsZero() {
		t.Fatalf("unexpected movement %+v", m)
	}
}

func TestFacingParse(t *testing.T) {
	for f := FacingDown; f <= FacingRight; f++ {
		got, ok := ParseFacing(f.String())
		if !ok || got != f {
			t.Fatalf("ParseFacing(%q) = %s, %v", f.String(), got, ok)
		}
	}
	if _, ok := ParseFacing("north"); ok {
		t.Fatalf("expected unknown facing to fail")
	}
}
