package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/sim"
)

// viewport maps arena coordinates (y-up, continuous) onto a screen cell
// rectangle (y-down, discrete).
type viewport struct {
	inner core.Rect // Cells inside the border box
	arena sim.Arena
}

// cellX projects an arena x coordinate to a screen column, clamped to the
// inner rect so positions on the right edge stay inside it.
func (v viewport) cellX(x float64) int {
	frac := (x - v.arena.Left) / v.arena.Width()
	col := v.inner.X + int(math.Floor(frac*float64(v.inner.W)))
	return core.Clamp(col, v.inner.X, v.inner.Right()-1)
}

// cellY projects an arena y coordinate to a screen row (flipping the axis).
func (v viewport) cellY(y float64) int {
	frac := (v.arena.Top - y) / v.arena.Height()
	row := v.inner.Y + int(math.Floor(frac*float64(v.inner.H)))
	return core.Clamp(row, v.inner.Y, v.inner.Bottom()-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.world == nil {
		return
	}

	g.renderHUD(dst)

	// The border box stands in for the four walls; everything inside it is
	// the projected play field.
	border := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(border)

	v := viewport{
		inner: core.NewRect(border.X+1, border.Y+1, border.W-2, border.H-2),
		arena: g.world.Arena(),
	}

	g.renderBricks(dst, v)
	g.renderPaddle(dst, v)
	g.renderBall(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws the score and remaining brick count.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.world.Score())
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)

	rows, cols := g.world.Grid()
	bricksText := fmt.Sprintf("Bricks: %d/%d", g.world.BricksAlive(), rows*cols)
	dst.DrawText(dst.Width()-len(bricksText)-1, 0, bricksText)
}

// renderBricks draws every live brick as a run of glyph cells covering its
// projected bounding box, colored by row.
func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	_, cols := g.world.Grid()
	if cols == 0 {
		return
	}

	for i, brick := range g.world.Bricks() {
		if !brick.Alive {
			continue
		}
		row := i / cols
		glyph := BrickGlyphs[row%len(BrickGlyphs)]
		color := brickColors[row%len(brickColors)]

		x0 := v.cellX(brick.Pos.X - brick.Half.X)
		x1 := v.cellX(brick.Pos.X + brick.Half.X)
		y := v.cellY(brick.Pos.Y)

		for x := x0; x <= x1; x++ {
			if v.inner.Contains(x, y) {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

// renderPaddle draws the paddle as a run of '=' at its row.
func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	p := g.world.Paddle()
	x0 := v.cellX(p.Pos.X - p.Half.X)
	x1 := v.cellX(p.Pos.X + p.Half.X)
	y := v.cellY(p.Pos.Y)

	for x := x0; x <= x1; x++ {
		if v.inner.Contains(x, y) {
			dst.SetColored(x, y, PaddleChar, core.ColorBrightCyan)
		}
	}
}

// renderBall draws the ball as a single cell.
func (g *Game) renderBall(dst *core.Screen, v viewport) {
	b := g.world.Ball()
	x := v.cellX(b.Pos.X)
	y := v.cellY(b.Pos.Y)
	if v.inner.Contains(x, y) {
		dst.SetColored(x, y, BallChar, core.ColorBrightYellow)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateCleared:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score())
		g.drawCenteredBox(dst, "BOARD CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
