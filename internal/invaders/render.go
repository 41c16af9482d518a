package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Rendering glyphs.
const (
	PlayerChar = '▲'
	AlienChar  = '▼'
	BulletChar = '|'
)

// Minimum terminal size for a playable scale-down of the 640x480 world.
const (
	minScreenW = 40
	minScreenH = 12

	hudRows = 1
)

// Render draws the current simulation state into the screen buffer.
// The world is scaled onto the cell grid below the HUD row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderAliens(dst)
	g.renderBullets(dst)
	g.renderPlayer(dst)
	g.renderOverlay(dst)
}

// cellRect maps a world rectangle onto the terminal cell grid.
func (g *Game) cellRect(r core.Rect, dst *core.Screen) core.Rect {
	fieldH := dst.Height() - hudRows
	return core.NewRect(
		r.X*dst.Width()/WorldW,
		hudRows+r.Y*fieldH/WorldH,
		core.Max(1, r.W*dst.Width()/WorldW),
		core.Max(1, r.H*fieldH/WorldH),
	)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawText(dst.Width()-len(lives)-1, 0, lives)
}

func (g *Game) renderPlayer(dst *core.Screen) {
	dst.DrawRect(g.cellRect(g.player.Rect, dst), PlayerChar, core.ColorBrightGreen)
}

func (g *Game) renderBullets(dst *core.Screen) {
	for i := range g.bullets {
		if !g.bullets[i].Active {
			continue
		}
		cell := g.cellRect(g.bullets[i].Rect, dst)
		// A bullet is thinner than a cell; a single column reads better.
		dst.DrawRect(core.NewRect(cell.X, cell.Y, 1, cell.H), BulletChar, core.ColorBrightYellow)
	}
}

func (g *Game) renderAliens(dst *core.Screen) {
	for i := range g.aliens {
		if !g.aliens[i].Active {
			continue
		}
		dst.DrawRect(g.cellRect(g.aliens[i].Rect, dst), AlienChar, core.ColorBrightRed)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.phase == PhaseVictory:
		g.drawCenteredBox(dst, "Victory!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.phase == PhaseDefeat:
		g.drawCenteredBox(dst, "Game Over!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredBox draws a bordered message box in the middle of the screen.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
