// Package invaders implements the game simulation: a player ship firing at a
// horizontally oscillating row of aliens that descends on every boundary hit.
// The package is pure state-machine logic; all terminal concerns live in the
// platform layer.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Phase is the explicit game state. Victory and Defeat are both terminal;
// they differ only in how the formation was emptied.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseVictory
	PhaseDefeat
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseVictory:
		return "Victory"
	case PhaseDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// Game holds the entire simulation state. There is exactly one instance per
// session and exactly one caller; Step is a complete, atomic state
// transition and must not be re-entered.
type Game struct {
	cfg  core.RuntimeConfig
	tick uint64

	player  Player
	bullets [MaxBullets]Bullet
	aliens  [AlienCount]Alien

	score int
	lives int
	dir   int // Formation direction: +1 right, -1 left
	phase Phase

	paused   bool
	tooSmall bool
}

// New creates an uninitialized game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier used in logs.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game for the given runtime environment.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH
	g.paused = false
	g.restart()
}

// Resize updates the runtime environment without disturbing the simulation.
// The world is fixed-size; only the too-small guard depends on the terminal.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH
}

// restart reinitializes the world to the starting configuration: score 0,
// full lives, formation moving right, ship centered, empty bullet pool.
// Wave resets mid-game go through resetWave instead.
func (g *Game) restart() {
	g.tick = 0
	g.score = 0
	g.lives = StartLives
	g.dir = 1
	g.phase = PhasePlaying

	g.player = startPlayer()

	for i := range g.bullets {
		g.bullets[i] = Bullet{Rect: core.NewRect(0, 0, BulletW, BulletH)}
	}
	for i := range g.aliens {
		g.aliens[i] = Alien{Rect: alienHome(i), Active: true}
	}
}

// resetWave puts the formation back on its starting grid and clears every
// bullet. Score, lives and direction persist; this is the mid-game penalty
// for letting the row reach the ship, not a full restart.
func (g *Game) resetWave() {
	for i := range g.aliens {
		g.aliens[i] = Alien{Rect: alienHome(i), Active: true}
	}
	for i := range g.bullets {
		g.bullets[i].Active = false
	}
}

// Step advances the simulation by one tick: apply the buffered input
// intents, then run the frame update in its fixed order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Restart is only honored from a terminal phase.
	if in.Has(core.IntentRestart) && g.phase != PhasePlaying {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.IntentPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyMovement(in)
	if in.Has(core.IntentFire) {
		g.fire()
	}

	g.tick++

	if g.phase == PhasePlaying {
		g.movePlayer()
		g.moveBullets()
		g.moveFormation()
		g.resolveHits()
		g.checkRowReached()
	}

	// Trailing victory check: an emptied formation while still playing wins.
	// Defeat can never race this, since a row-reach needs an active alien.
	if g.phase == PhasePlaying && g.activeAliens() == 0 {
		g.phase = PhaseVictory
	}

	return core.StepResult{State: g.State()}
}

// applyMovement translates movement intents into ship velocity. Start
// intents overwrite the velocity; a stop intent only clears the velocity it
// was driving, so releasing the other key is a no-op. This mirrors
// independent per-key tracking, not a combined axis.
func (g *Game) applyMovement(in core.InputFrame) {
	if in.Has(core.IntentMoveLeftStart) {
		g.player.VX = -PlayerSpeed
	}
	if in.Has(core.IntentMoveRightStart) {
		g.player.VX = PlayerSpeed
	}
	if in.Has(core.IntentMoveLeftStop) && g.player.VX < 0 {
		g.player.VX = 0
	}
	if in.Has(core.IntentMoveRightStop) && g.player.VX > 0 {
		g.player.VX = 0
	}
}

// fire activates the first free bullet slot, centered on the ship's top
// edge. No-op when the game is over or the pool is exhausted.
func (g *Game) fire() {
	if g.phase != PhasePlaying {
		return
	}
	for i := range g.bullets {
		b := &g.bullets[i]
		if b.Active {
			continue
		}
		b.Active = true
		b.Rect.X = g.player.Rect.X + g.player.Rect.W/2 - BulletW/2
		b.Rect.Y = g.player.Rect.Y - BulletH
		return
	}
}

// movePlayer applies velocity and clamps the ship fully inside the world.
func (g *Game) movePlayer() {
	g.player.Rect.X = core.Clamp(g.player.Rect.X+g.player.VX, 0, WorldW-g.player.Rect.W)
}

// moveBullets advances active bullets upward and retires the ones whose
// bottom edge has crossed above the top of the world.
func (g *Game) moveBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		b.Rect.Y -= BulletSpeed
		if b.Rect.Bottom() < 0 {
			b.Active = false
		}
	}
}

// moveFormation moves the alien row as a rigid body. If any active alien
// would cross a horizontal boundary this tick, the whole row descends and
// the direction flips instead; one out-of-bounds alien commits the entire
// formation.
func (g *Game) moveFormation() {
	descend := false
	for i := range g.aliens {
		a := &g.aliens[i]
		if !a.Active {
			continue
		}
		next := a.Rect.X + AlienSpeed*g.dir
		if next < 0 || next+a.Rect.W > WorldW {
			descend = true
			break
		}
	}

	if descend {
		g.dir = -g.dir
		for i := range g.aliens {
			if g.aliens[i].Active {
				g.aliens[i].Rect.Y += AlienDescent
			}
		}
		return
	}

	for i := range g.aliens {
		if g.aliens[i].Active {
			g.aliens[i].Rect.X += AlienSpeed * g.dir
		}
	}
}

// resolveHits scans active bullets against active aliens in slot order.
// A bullet destroys at most one alien per frame; on a simultaneous overlap
// the lower alien index wins.
func (g *Game) resolveHits() {
	for b := range g.bullets {
		bullet := &g.bullets[b]
		if !bullet.Active {
			continue
		}
		for a := range g.aliens {
			alien := &g.aliens[a]
			if !alien.Active {
				continue
			}
			if bullet.Rect.Intersects(alien.Rect) {
				alien.Active = false
				bullet.Active = false
				g.score += PointsPerKill
				break
			}
		}
	}
}

// checkRowReached fires at most one life-loss event per frame: the first
// active alien whose bottom edge has reached the ship's top edge costs a
// life. At zero lives the game is lost; otherwise the wave resets.
func (g *Game) checkRowReached() {
	for i := range g.aliens {
		a := &g.aliens[i]
		if !a.Active {
			continue
		}
		if a.Rect.Bottom() >= g.player.Rect.Y {
			g.lives--
			if g.lives <= 0 {
				g.phase = PhaseDefeat
			} else {
				g.resetWave()
			}
			return
		}
	}
}

// activeAliens counts the aliens still in play.
func (g *Game) activeAliens() int {
	n := 0
	for i := range g.aliens {
		if g.aliens[i].Active {
			n++
		}
	}
	return n
}

// activeBullets counts the bullets currently in flight.
func (g *Game) activeBullets() int {
	n := 0
	for i := range g.bullets {
		if g.bullets[i].Active {
			n++
		}
	}
	return n
}

// State returns the per-tick status for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.phase != PhasePlaying,
		Victory:  g.phase == PhaseVictory,
		Paused:   g.paused,
	}
}
