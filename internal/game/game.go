// Package game is the ebiten presentation shell: menu, board rendering,
// input, pacing and sound. All rules live in internal/engine; this package
// only issues engine commands and polls engine state once per frame.
package game

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"territorial/internal/audio"
	"territorial/internal/config"
	"territorial/internal/engine"
)

// aiDelay is the opponent's thinking pause in seconds. Pure pacing: the
// engine resolves the turn instantly once asked.
const aiDelay = 1.0

type screen uint8

const (
	screenMenu screen = iota
	screenPlaying
	screenGameOver
)

// boardGeom is the pixel layout of the board for the current match.
type boardGeom struct {
	cellSize float64
	offX     float64
	offY     float64
}

type Game struct {
	cfg    config.Config
	rng    *rand.Rand
	sounds *audio.Player

	scr   screen
	menu  menuState
	match *engine.Match
	geom  boardGeom

	aiTimer float64

	prevKeys       map[ebiten.Key]bool
	prevMouseLeft  bool
	prevMouseRight bool

	copiedNotice bool // report copied to clipboard this game-over
}

// New builds the shell from resolved configuration. Audio failure is not
// fatal: the game runs silent.
func New(cfg config.Config) *Game {
	g := &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)), // #nosec G404 -- game only
		sounds:   audio.NewPlayer(),
		menu:     newMenuState(cfg.GridSize, cfg.Music),
		prevKeys: make(map[ebiten.Key]bool),
	}
	if err := g.sounds.Init(cfg.Music); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	return g
}

// startMatch begins a fresh match at the menu's chosen size.
func (g *Game) startMatch() {
	m, err := engine.New(g.menu.gridSize, g.rng)
	if err != nil {
		// The menu only offers supported sizes; reaching this is a bug.
		log.Printf("start match: %v", err)
		return
	}
	g.match = m
	g.geom = layoutBoard(g.cfg.WindowW, g.cfg.WindowH, m.Size())
	g.aiTimer = 0
	g.copiedNotice = false
	g.scr = screenPlaying
}

// layoutBoard centres a size×size board in the window, filling at most
// 80% of the smaller dimension, shifted down to leave room for the HUD.
func layoutBoard(w, h, size int) boardGeom {
	maxPx := float64(w) * 0.8
	if hp := float64(h) * 0.8; hp < maxPx {
		maxPx = hp
	}
	cell := maxPx / float64(size)
	return boardGeom{
		cellSize: cell,
		offX:     (float64(w) - cell*float64(size)) / 2,
		offY:     (float64(h)-cell*float64(size))/2 + 50,
	}
}

// cellAt maps a window pixel to a board coordinate. ok is false outside
// the board rectangle.
func (g boardGeom) cellAt(mx, my, size int) (x, y int, ok bool) {
	fx := (float64(mx) - g.offX) / g.cellSize
	fy := (float64(my) - g.offY) / g.cellSize
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	x, y = int(fx), int(fy)
	if x >= size || y >= size {
		return 0, 0, false
	}
	return x, y, true
}

func (g *Game) Update() error {
	var err error
	switch g.scr {
	case screenMenu:
		err = g.updateMenu()
	case screenPlaying:
		g.updatePlaying()
	case screenGameOver:
		g.updateGameOver()
	}
	g.storeInputState()
	return err
}

func (g *Game) updatePlaying() {
	g.drainEngineEvents()

	if g.match.Result() != engine.ResultNone {
		g.scr = screenGameOver
		return
	}

	g.handlePlayingInput()

	if g.match.Turn() == engine.SideOpponent {
		g.aiTimer += 1.0 / float64(ebiten.TPS())
		if g.aiTimer >= aiDelay {
			if err := g.match.StepOpponent(); err != nil {
				log.Printf("opponent step: %v", err)
			}
			g.aiTimer = 0
		}
	} else {
		g.aiTimer = 0
	}
}

func (g *Game) updateGameOver() {
	if g.keyJustPressed(ebiten.KeyM) {
		g.toggleMusic()
	}
	if g.keyJustPressed(ebiten.KeyC) {
		if err := copyMatchReport(g.match); err != nil {
			log.Printf("copy report: %v", err)
		} else {
			g.copiedNotice = true
		}
	}
	if g.keyJustPressed(ebiten.KeyR) || g.keyJustPressed(ebiten.KeyEscape) {
		g.scr = screenMenu
	}
}

// drainEngineEvents maps engine notifications to sounds.
func (g *Game) drainEngineEvents() {
	for _, ev := range g.match.TakeEvents() {
		switch ev.Kind {
		case engine.EventCapture:
			g.sounds.Capture()
		case engine.EventImpulse:
			if ev.Mode == engine.ImpulseAttack {
				g.sounds.Attack()
			} else {
				g.sounds.Speed()
			}
		case engine.EventMatchOver:
			switch ev.Result {
			case engine.ResultPlayerWin:
				g.sounds.Win()
			case engine.ResultOpponentWin:
				g.sounds.Lose()
			default:
				g.sounds.Draw()
			}
		}
	}
}

func (g *Game) toggleMusic() {
	g.menu.musicOn = !g.menu.musicOn
	g.sounds.SetMusic(g.menu.musicOn)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowW, g.cfg.WindowH
}
