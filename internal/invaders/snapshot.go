package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// EntityState is the renderable view of one pooled entity slot.
type EntityState struct {
	Rect   core.Rect
	Active bool
}

// Snapshot is the complete, read-only view of the simulation after a tick.
// The platform renders from it; tests compare whole game states through it.
type Snapshot struct {
	Tick  uint64
	Score int
	Lives int
	Phase Phase
	Dir   int

	Player   core.Rect
	PlayerVX int

	Bullets [MaxBullets]EntityState
	Aliens  [AlienCount]EntityState
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lives:    g.lives,
		Phase:    g.phase,
		Dir:      g.dir,
		Player:   g.player.Rect,
		PlayerVX: g.player.VX,
	}
	for i := range g.bullets {
		snap.Bullets[i] = EntityState{Rect: g.bullets[i].Rect, Active: g.bullets[i].Active}
	}
	for i := range g.aliens {
		snap.Aliens[i] = EntityState{Rect: g.aliens[i].Rect, Active: g.aliens[i].Active}
	}
	return snap
}

// ApplySnapshot restores the simulation from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.score = snap.Score
	g.lives = snap.Lives
	g.phase = snap.Phase
	g.dir = snap.Dir
	g.player.Rect = snap.Player
	g.player.VX = snap.PlayerVX
	for i := range g.bullets {
		g.bullets[i] = Bullet{Rect: snap.Bullets[i].Rect, Active: snap.Bullets[i].Active}
	}
	for i := range g.aliens {
		g.aliens[i] = Alien{Rect: snap.Aliens[i].Rect, Active: snap.Aliens[i].Active}
	}
}

// Hash folds the snapshot into a single value for state-equality checks.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- score is non-negative
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- lives never go below zero
	h = h*31 + uint64(snap.Phase)    //#nosec G115 -- small enum
	h = h*31 + uint64(snap.Dir+1)    //#nosec G115 -- dir is -1 or +1
	h = h*31 + uint64(snap.PlayerVX+PlayerSpeed) //#nosec G115 -- bounded velocity
	h = hashRect(h, snap.Player)

	for i := range snap.Bullets {
		h = hashRect(h, snap.Bullets[i].Rect)
		h = h*31 + boolBit(snap.Bullets[i].Active)
	}
	for i := range snap.Aliens {
		h = hashRect(h, snap.Aliens[i].Rect)
		h = h*31 + boolBit(snap.Aliens[i].Active)
	}
	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + uint64(int64(r.X)+WorldW) //#nosec G115 -- offset keeps it non-negative
	h = h*31 + uint64(int64(r.Y)+WorldH) //#nosec G115 -- offset keeps it non-negative
	h = h*31 + uint64(r.W)               //#nosec G115 -- widths are positive
	h = h*31 + uint64(r.H)               //#nosec G115 -- heights are positive
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
