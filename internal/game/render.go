package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"territorial/internal/engine"
)

var hudFace font.Face = basicfont.Face7x13

var (
	colNeutral     = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	colPlayer      = color.RGBA{R: 50, G: 100, B: 220, A: 255}
	colOpponent    = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	colGridLine    = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	colLegalHint   = color.RGBA{R: 250, G: 220, B: 40, A: 255}
	colHUD         = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	colPrompt      = color.RGBA{R: 250, G: 220, B: 40, A: 255}
	colMusicOn     = color.RGBA{R: 80, G: 200, B: 80, A: 255}
	colMusicOff    = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	colMenuButton  = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	colMenuChosen  = color.RGBA{R: 250, G: 220, B: 40, A: 255}
	colOverlayDim  = color.RGBA{A: 180}
	colResultWin   = color.RGBA{R: 80, G: 220, B: 80, A: 255}
	colResultLose  = color.RGBA{R: 230, G: 70, B: 60, A: 255}
	colResultDraw  = color.RGBA{R: 250, G: 220, B: 40, A: 255}
	colMenuLabel   = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colInstruction = color.RGBA{R: 180, G: 180, B: 180, A: 255}
)

func (g *Game) Draw(dst *ebiten.Image) {
	switch g.scr {
	case screenMenu:
		g.drawMenu(dst)
	case screenPlaying:
		g.drawPlaying(dst)
	case screenGameOver:
		g.drawPlaying(dst)
		g.drawGameOver(dst)
	}
}

func drawTextAt(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, hudFace, x, y, clr)
}

func drawTextCentered(dst *ebiten.Image, s string, cx, y int, clr color.Color) {
	w := text.BoundString(hudFace, s).Dx()
	text.Draw(dst, s, hudFace, cx-w/2, y, clr)
}

// --- Menu ---

func (g *Game) drawMenu(dst *ebiten.Image) {
	cx := g.cfg.WindowW / 2
	drawTextCentered(dst, "TERRITORIAL CONTROL", cx, 70, colHUD)

	l := g.menuLayout()
	drawTextAt(dst, "Grid size:", 150, 175, colHUD)
	g.drawMenuButton(dst, l.size7, "7x7", g.menu.gridSize == 7)
	g.drawMenuButton(dst, l.size10, "10x10", g.menu.gridSize == 10)
	g.drawMenuButton(dst, l.size12, "12x12", g.menu.gridSize == 12)

	musicLabel := "MUSIC: OFF"
	if g.menu.musicOn {
		musicLabel = "MUSIC: ON"
	}
	g.drawMenuButton(dst, l.music, musicLabel, g.menu.musicOn)
	g.drawMenuButton(dst, l.start, "START GAME", true)
	g.drawMenuButton(dst, l.exit, "EXIT", false)

	drawTextCentered(dst, "Click buttons, Space starts, M toggles music", cx, 520, colInstruction)
	drawTextAt(dst, "Rules:", cx-100, 570, colHUD)
	drawTextAt(dst, "- Capture neutral cells adjacent to your territory", 100, 610, colInstruction)
	drawTextAt(dst, "- Each capture earns 1 charge; impulses cost 3", 100, 630, colInstruction)
	drawTextAt(dst, "- A: ATTACK impulse, flip 2 enemy border cells", 100, 650, colInstruction)
	drawTextAt(dst, "- S: SPEED impulse, claim 3 neutral cells at once", 100, 670, colInstruction)
	drawTextAt(dst, "- First to 45% of the board wins", 100, 690, colResultWin)
}

func (g *Game) drawMenuButton(dst *ebiten.Image, b button, label string, active bool) {
	fill := colMenuButton
	if active {
		fill = colMenuChosen
	}
	vector.FillRect(dst, float32(b.x), float32(b.y), float32(b.w), float32(b.h), fill, false)
	drawTextCentered(dst, label, int(b.x+b.w/2), int(b.y+b.h/2)+4, colMenuLabel)
}

// --- Playing ---

func (g *Game) drawPlaying(dst *ebiten.Image) {
	m := g.match
	size := m.Size()
	mode, selections, impulsePending := m.PendingImpulse()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.drawCell(dst, x, y, selections, impulsePending)
		}
	}
	g.drawHUD(dst, mode, selections, impulsePending)
}

func (g *Game) drawCell(dst *ebiten.Image, x, y int, selections []engine.Coord, impulsePending bool) {
	m := g.match
	px := float32(g.geom.offX + float64(x)*g.geom.cellSize)
	py := float32(g.geom.offY + float64(y)*g.geom.cellSize)
	cs := float32(g.geom.cellSize)

	selected := false
	for _, c := range selections {
		if c.X == x && c.Y == y {
			selected = true
			break
		}
	}

	var fill color.RGBA
	switch m.Board().At(x, y) {
	case engine.CellPlayer:
		fill = colPlayer
	case engine.CellOpponent:
		fill = colOpponent
	default:
		fill = colNeutral
	}
	if selected {
		fill.A = 90
	} else if impulsePending {
		fill.A = 140 // dim everything not yet selected
	}

	vector.FillRect(dst, px, py, cs-1, cs-1, fill, false)
	vector.StrokeRect(dst, px, py, cs, cs, 1.0, colGridLine, false)

	// Hint the player's legal ordinary targets outside impulse mode.
	if m.Turn() == engine.SidePlayer && !impulsePending &&
		m.Result() == engine.ResultNone &&
		m.IsLegalCapture(x, y, engine.SidePlayer) {
		vector.StrokeRect(dst, px+2, py+2, cs-4, cs-4, 1.0, colLegalHint, false)
	}
}

func (g *Game) drawHUD(dst *ebiten.Image, mode engine.ImpulseMode, selections []engine.Coord, impulsePending bool) {
	m := g.match
	cx := g.cfg.WindowW / 2
	target := m.WinTarget()

	turnStr := "YOUR TURN"
	turnCol := colPlayer
	if m.Turn() == engine.SideOpponent {
		turnStr = "OPPONENT TURN"
		turnCol = colOpponent
	}
	drawTextCentered(dst, turnStr, cx, 30, turnCol)

	drawTextCentered(dst, fmt.Sprintf("Target: %d cells (45%%)", target), cx, int(g.geom.offY)-40, colHUD)
	drawTextCentered(dst, fmt.Sprintf("Opponent: %d/%d", m.CellCount(engine.SideOpponent), target),
		cx, int(g.geom.offY)-22, colOpponent)
	boardBottom := int(g.geom.offY + g.geom.cellSize*float64(m.Size()))
	drawTextCentered(dst, fmt.Sprintf("Player: %d/%d", m.CellCount(engine.SidePlayer), target),
		cx, boardBottom+20, colPlayer)

	drawTextAt(dst, fmt.Sprintf("Charges: %d", m.Charge(engine.SidePlayer)), g.cfg.WindowW-200, 50, colPlayer)
	drawTextAt(dst, fmt.Sprintf("Opponent charges: %d", m.Charge(engine.SideOpponent)), 50, 50, colOpponent)

	if impulsePending {
		prompt := "SPEED MODE: select 3 neutral cells (right click cancels)"
		if mode == engine.ImpulseAttack {
			prompt = "ATTACK MODE: select 2 enemy cells (right click cancels)"
		}
		drawTextCentered(dst, prompt, cx, g.cfg.WindowH-40, colPrompt)
		drawTextCentered(dst, fmt.Sprintf("Selected: %d/%d", len(selections), mode.SelectionCount()),
			cx, g.cfg.WindowH-62, colHUD)
	}

	musicStr := "MUSIC: OFF"
	musicCol := colMusicOff
	if g.menu.musicOn {
		musicStr = "MUSIC: ON"
		musicCol = colMusicOn
	}
	drawTextAt(dst, musicStr, g.cfg.WindowW-150, g.cfg.WindowH-20, musicCol)
}

// --- Game over ---

func (g *Game) drawGameOver(dst *ebiten.Image) {
	vector.FillRect(dst, 0, 0, float32(g.cfg.WindowW), float32(g.cfg.WindowH), colOverlayDim, false)

	cx := g.cfg.WindowW / 2
	cy := g.cfg.WindowH / 2

	var banner string
	var bannerCol color.RGBA
	switch g.match.Result() {
	case engine.ResultPlayerWin:
		banner, bannerCol = "VICTORY!", colResultWin
	case engine.ResultOpponentWin:
		banner, bannerCol = "DEFEAT!", colResultLose
	default:
		banner, bannerCol = "DRAW!", colResultDraw
	}
	drawTextCentered(dst, banner, cx, cy-100, bannerCol)

	score := fmt.Sprintf("Final score: Player %d - Opponent %d",
		g.match.CellCount(engine.SidePlayer), g.match.CellCount(engine.SideOpponent))
	drawTextCentered(dst, score, cx, cy, colHUD)
	drawTextCentered(dst, "R or Escape returns to menu, C copies the report", cx, cy+80, colPrompt)
	if g.copiedNotice {
		drawTextCentered(dst, "Report copied to clipboard", cx, cy+100, colInstruction)
	}
}
