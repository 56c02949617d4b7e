package colorsort

import (
	"fmt"
	"strings"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
)

const (
	tubeWidth  = 5 // Border + 3 interior columns + border
	tubeGap    = 2
	hudHeight  = 3
	footHeight = 2
)

// boardSize returns the screen size needed for n tubes of the given capacity.
// Rows: HUD, number label, lift row, capacity, bottom border, cursor, footer.
func boardSize(n, capacity int) (w, h int) {
	w = n*tubeWidth + max(n-1, 0)*tubeGap + 2
	w = max(w, 40)
	h = hudHeight + 1 + 1 + capacity + 1 + 1 + footHeight
	return w, h
}

// paletteColor maps a puzzle color to a terminal color.
func paletteColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorRed
	case core.ColorGreen:
		return platformcore.ColorGreen
	case core.ColorBlue:
		return platformcore.ColorBlue
	case core.ColorYellow:
		return platformcore.ColorYellow
	case core.ColorMagenta:
		return platformcore.ColorMagenta
	case core.ColorCyan:
		return platformcore.ColorCyan
	case core.ColorOrange:
		return platformcore.ColorOrange
	case core.ColorPurple:
		return platformcore.ColorPurple
	default:
		return platformcore.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.err != nil {
		dst.DrawTextCentered(g.screenH/2, g.err.Error())
		return
	}

	n := len(g.state.Tubes)
	boardW := n*tubeWidth + max(n-1, 0)*tubeGap
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst)
	for i, tube := range g.state.Tubes {
		x := boardX + i*(tubeWidth+tubeGap)
		g.renderTube(dst, tube, i, x, boardY)
	}
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	minW, minH := boardSize(len(g.state.Tubes), g.capacity())
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title, move count and progress.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCenteredColored(0, g.title, platformcore.ColorBrightWhite)

	moves := fmt.Sprintf("Moves: %d", g.state.Moves)
	dst.DrawText(1, 1, moves)

	sorted := fmt.Sprintf("Sorted: %d/%d", g.state.SortedCount(), g.targetTubes())
	dst.DrawText(g.screenW-utf8.RuneCountInString(sorted)-1, 1, sorted)

	if g.state.ColorblindMode {
		dst.DrawTextCenteredColored(1, "[colorblind]", platformcore.ColorGray)
	}
}

// targetTubes is the number of full single-color tubes a solved board has.
func (g *Game) targetTubes() int {
	capacity := g.capacity()
	if capacity <= 0 {
		return 0
	}
	return g.state.TotalUnits() / capacity
}

// renderTube draws one tube with its number, contents and cursor marker.
func (g *Game) renderTube(dst *platformcore.Screen, tube core.Tube, index, x, boardY int) {
	capacity := tube.MaxCapacity
	lifted := tube.ID == g.state.Selected || tube.ID == g.pouring

	// Number label for direct picks
	if index < 9 {
		dst.DrawTextColored(x+2, boardY, fmt.Sprintf("%d", index+1), platformcore.ColorGray)
	}

	top := boardY + 2 // First interior row when not lifted
	if lifted {
		top--
	}

	border := g.borderColor(tube)
	for row := 0; row < capacity; row++ {
		y := top + row
		dst.SetColored(x, y, '│', border)
		dst.SetColored(x+tubeWidth-1, y, '│', border)

		// Row 0 is the top of the tube; units fill from the bottom.
		unit := capacity - 1 - row
		if unit < tube.Len() {
			g.drawUnit(dst, x+1, y, tube.Colors[unit])
		}
	}
	bottom := top + capacity
	dst.SetColored(x, bottom, '└', border)
	dst.DrawTextColored(x+1, bottom, "───", border)
	dst.SetColored(x+tubeWidth-1, bottom, '┘', border)

	if index == g.cursor && !g.state.IsWon {
		dst.DrawTextColored(x+1, boardY+2+capacity+1, " ^ ", platformcore.ColorBrightWhite)
	}
}

// drawUnit draws one unit of liquid, three cells wide.
func (g *Game) drawUnit(dst *platformcore.Screen, x, y int, c core.Color) {
	col := paletteColor(c)
	if g.state.ColorblindMode {
		p := c.Pattern()
		dst.SetColored(x, y, p, col)
		dst.DrawTextColored(x+1, y, c.Label(), col)
		dst.SetColored(x+2, y, p, col)
		return
	}
	dst.DrawTextColored(x, y, "███", col)
}

func (g *Game) borderColor(tube core.Tube) platformcore.Color {
	switch {
	case tube.ID == g.pouring || tube.ID == g.receiving:
		return platformcore.ColorCyan
	case tube.ID == g.state.Selected:
		return platformcore.ColorYellow
	case tube.IsSorted():
		return platformcore.ColorGreen
	default:
		return platformcore.ColorWhite
	}
}

// renderFooter draws control hints.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	dst.DrawTextCenteredColored(g.screenH-1, g.Controls(), platformcore.ColorGray)
}

// renderOverlays draws pause and win overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	centerX := g.screenW / 2
	centerY := g.screenH / 2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.state.IsWon {
		word := "moves"
		if g.state.Moves == 1 {
			word = "move"
		}
		g.drawOverlay(dst, centerX, centerY,
			"SORTED!",
			fmt.Sprintf("Solved in %d %s", g.state.Moves, word),
			"N: new layout | R: replay")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, platformcore.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return strings.Join([]string{
		"←/→ Space 1-9: Pour",
		"Esc: Drop",
		"R: Replay",
		"N: New",
		"C: Colorblind",
		"P: Pause",
		"Q: Quit",
	}, " | ")
}
