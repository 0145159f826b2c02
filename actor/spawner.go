package actor

// Projectile is the spawn contract for a ranged attack. The world owns it
// after Spawn returns.
type Projectile struct {
	Originator *Actor
	Origin     Vec
	Facing     Facing
}

// Spawner builds projectiles and hands them to the scene. It keeps no
// reference to what it created.
type Spawner struct {
	scene Scene
}

func NewSpawner(scene Scene) *Spawner {
	return &Spawner{scene: scene}
}

// Spawn seeds a projectile with the originator's current position and f.
// The originator must not be defeated.
func (s *Spawner) Spawn(originator *Actor, f Facing) Projectile {
	p := Projectile{
		Originator: originator,
		Origin:     originator.Position(),
		Facing:     f,
	}
	if s.scene != nil {
		s.scene.AddProjectile(p)
	}
	return p
}
