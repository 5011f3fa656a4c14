package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"territorial/internal/engine"
)

// watchedKeys are all keys the shell edge-detects.
var watchedKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyM, ebiten.KeyR,
	ebiten.KeyC, ebiten.KeySpace, ebiten.KeyEscape,
}

// keyJustPressed reports a key down this frame that was up last frame.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k) && !g.prevKeys[k]
}

func (g *Game) mouseJustPressed(b ebiten.MouseButton) bool {
	if !ebiten.IsMouseButtonPressed(b) {
		return false
	}
	if b == ebiten.MouseButtonLeft {
		return !g.prevMouseLeft
	}
	return !g.prevMouseRight
}

// storeInputState snapshots key/button state for next frame's edge
// detection. Runs at the end of every Update.
func (g *Game) storeInputState() {
	for _, k := range watchedKeys {
		g.prevKeys[k] = ebiten.IsKeyPressed(k)
	}
	g.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.prevMouseRight = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
}

func (g *Game) handlePlayingInput() {
	if g.keyJustPressed(ebiten.KeyM) {
		g.toggleMusic()
	}

	m := g.match
	_, _, impulsePending := m.PendingImpulse()

	// Escape or right click abandons a selection in progress.
	if impulsePending &&
		(g.keyJustPressed(ebiten.KeyEscape) || g.mouseJustPressed(ebiten.MouseButtonRight)) {
		m.CancelImpulse()
		return
	}

	if m.Turn() != engine.SidePlayer {
		return
	}

	if !impulsePending && m.Charge(engine.SidePlayer) >= engine.ImpulseCost {
		if g.keyJustPressed(ebiten.KeyA) {
			if err := m.BeginImpulse(engine.ImpulseAttack); err == nil {
				g.sounds.Attack()
			}
			return
		}
		if g.keyJustPressed(ebiten.KeyS) {
			if err := m.BeginImpulse(engine.ImpulseSpeed); err == nil {
				g.sounds.Speed()
			}
			return
		}
	}

	if !g.mouseJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := g.geom.cellAt(mx, my, m.Size())
	if !ok {
		return
	}

	if impulsePending {
		if err := m.SelectImpulseCell(x, y); err != nil {
			// Only possible if the impulse vanished between frames.
			log.Printf("impulse selection: %v", err)
		}
		return
	}

	// Clicks on illegal cells just do nothing, like the original game.
	if m.IsLegalCapture(x, y, engine.SidePlayer) {
		if err := m.ApplyCapture(x, y); err != nil {
			log.Printf("capture: %v", err)
		}
	}
}
