package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// menuState is the pre-match setup screen: grid size choice and the music
// toggle, kept across matches.
type menuState struct {
	gridSize int
	musicOn  bool
}

func newMenuState(gridSize int, musicOn bool) menuState {
	return menuState{gridSize: gridSize, musicOn: musicOn}
}

// button is a clickable screen rectangle.
type button struct {
	x, y, w, h float64
}

func (b button) contains(mx, my int) bool {
	fx, fy := float64(mx), float64(my)
	return fx >= b.x && fx < b.x+b.w && fy >= b.y && fy < b.y+b.h
}

// menuButtons returns the fixed menu layout for the window width.
type menuLayout struct {
	size7, size10, size12 button
	music                 button
	start                 button
	exit                  button
}

func (g *Game) menuLayout() menuLayout {
	cx := float64(g.cfg.WindowW) / 2
	return menuLayout{
		size7:  button{200, 200, 100, 40},
		size10: button{320, 200, 100, 40},
		size12: button{440, 200, 100, 40},
		music:  button{200, 260, 200, 40},
		start:  button{cx - 100, 350, 200, 50},
		exit:   button{cx - 100, 420, 200, 50},
	}
}

func (g *Game) updateMenu() error {
	if g.keyJustPressed(ebiten.KeyM) {
		g.toggleMusic()
	}
	if g.keyJustPressed(ebiten.KeySpace) {
		g.startMatch()
		return nil
	}
	if g.keyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if !g.mouseJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	l := g.menuLayout()
	switch {
	case l.size7.contains(mx, my):
		g.menu.gridSize = 7
	case l.size10.contains(mx, my):
		g.menu.gridSize = 10
	case l.size12.contains(mx, my):
		g.menu.gridSize = 12
	case l.music.contains(mx, my):
		g.toggleMusic()
	case l.start.contains(mx, my):
		g.startMatch()
	case l.exit.contains(mx, my):
		return ebiten.Termination
	}
	return nil
}
