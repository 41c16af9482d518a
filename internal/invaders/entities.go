package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Simulation constants. The playfield is a fixed 640x480 world; the renderer
// scales it onto whatever terminal it gets. These are rules of the game, not
// tunables, so they are compile-time constants rather than config.
const (
	WorldW = 640
	WorldH = 480

	PlayerSpeed  = 5
	PlayerW      = 32
	PlayerH      = 32
	PlayerMargin = 40 // Gap between the ship and the bottom of the world
	StartLives   = 3

	BulletSpeed = 7
	BulletW     = 4
	BulletH     = 10
	MaxBullets  = 5

	AlienCount   = 8
	AlienW       = 32
	AlienH       = 32
	AlienStartX  = 50
	AlienStartY  = 50
	AlienSpacing = 50
	AlienSpeed   = 1
	AlienDescent = 20

	PointsPerKill = 10
)

// Player is the ship: a rectangle plus a horizontal velocity that is always
// one of -PlayerSpeed, 0 or +PlayerSpeed.
type Player struct {
	Rect core.Rect
	VX   int
}

// Bullet is one slot of the fixed projectile pool.
// Position is only meaningful while Active.
type Bullet struct {
	Rect   core.Rect
	Active bool
}

// Alien is one slot of the fixed formation row. Inactive aliens take no part
// in movement, collision or the win check.
type Alien struct {
	Rect   core.Rect
	Active bool
}

// startPlayer returns the ship at its centered spawn position, standing still.
func startPlayer() Player {
	return Player{
		Rect: core.NewRect((WorldW-PlayerW)/2, WorldH-(PlayerH+PlayerMargin), PlayerW, PlayerH),
	}
}

// alienHome returns the starting grid rectangle for formation slot i.
func alienHome(i int) core.Rect {
	return core.NewRect(AlienStartX+i*AlienSpacing, AlienStartY, AlienW, AlienH)
}
