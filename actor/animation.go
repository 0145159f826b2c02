package actor

// AnimKind selects which family of animations to play.
type AnimKind uint8

const (
	AnimMove AnimKind = iota
	AnimIdle
	AnimMelee
	AnimRanged
	animKindCount
)

func (k AnimKind) String() string {
	switch k {
	case AnimMove:
		return "move"
	case AnimIdle:
		return "idle"
	case AnimMelee:
		return "melee"
	case AnimRanged:
		return "ranged"
	default:
		return "unknown"
	}
}

// AnimationRef names an animation clip and whether it is drawn mirrored.
type AnimationRef struct {
	Name  string
	FlipX bool
}

// Left and right share the side clip; left is the mirrored one.
var animationTable = [animKindCount][4]AnimationRef{
	AnimMove: {
		FacingDown:  {Name: "walk-down"},
		FacingUp:    {Name: "walk-up"},
		FacingLeft:  {Name: "walk-side", FlipX: true},
		FacingRight: {Name: "walk-side"},
	},
	AnimIdle: {
		FacingDown:  {Name: "idle-down"},
		FacingUp:    {Name: "idle-up"},
		FacingLeft:  {Name: "idle-side", FlipX: true},
		FacingRight: {Name: "idle-side"},
	},
	AnimMelee: {
		FacingDown:  {Name: "attack-down"},
		FacingUp:    {Name: "attack-up"},
		FacingLeft:  {Name: "attack-side", FlipX: true},
		FacingRight: {Name: "attack-side"},
	},
	AnimRanged: {
		FacingDown:  {Name: "attack-weapon-down"},
		FacingUp:    {Name: "attack-weapon-up"},
		FacingLeft:  {Name: "attack-weapon-side", FlipX: true},
		FacingRight: {Name: "attack-weapon-side"},
	},
}

// AnimationFor returns the clip name and horizontal flip for kind while
// facing f. Out-of-range arguments are a programming error and panic.
func AnimationFor(kind AnimKind, f Facing) (string, bool) {
	ref := animationTable[kind][f]
	return ref.Name, ref.FlipX
}

// AnimationNames lists every clip the actor may request, in table order.
// Sprite sheet builders use it to make sure each name has frames.
func AnimationNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range animationTable {
		for _, ref := range row {
			if seen[ref.Name] {
				continue
			}
			seen[ref.Name] = true
			names = append(names, ref.Name)
		}
	}
	return names
}
