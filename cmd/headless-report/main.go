// Command headless-report plays seeded self-play matches without a window
// and prints per-match and aggregate statistics. The scripted "player"
// mirrors the opponent heuristic through the engine's public operations,
// so both halves of the API get exercised.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	"territorial/internal/engine"
)

// turnCap aborts degenerate matches that never reach the win target.
const turnCap = 10000

type matchStats struct {
	run    int
	seed   int64
	result engine.Result
	turns  int

	playerImpulses   int
	opponentImpulses int
	finished         bool
}

func main() {
	var matches int
	var size int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&matches, "matches", 10, "number of self-play matches")
	flag.IntVar(&size, "size", 10, "grid size (7, 10 or 12)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for match 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between matches")
	flag.Parse()

	if matches <= 0 {
		fmt.Println("error: -matches must be > 0")
		return
	}
	if !engine.ValidGridSize(size) {
		fmt.Println("error: -size must be 7, 10 or 12")
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("matches: %d | grid: %dx%d | seed base: %d step: %d\n\n",
		matches, size, size, seedBase, seedStep)

	all := make([]matchStats, 0, matches)
	for i := 0; i < matches; i++ {
		seed := seedBase + int64(i)*seedStep
		st := playMatch(i+1, seed, size)
		all = append(all, st)

		outcome := st.result.String()
		if !st.finished {
			outcome = "unfinished (turn cap)"
		}
		fmt.Printf("match %2d seed %4d: %-13s in %4d turns (impulses P:%d O:%d)\n",
			st.run, st.seed, outcome, st.turns, st.playerImpulses, st.opponentImpulses)
	}

	fmt.Printf("\n--- Aggregate ---\n")
	var playerWins, opponentWins, draws, unfinished, totalTurns int
	for _, st := range all {
		totalTurns += st.turns
		switch {
		case !st.finished:
			unfinished++
		case st.result == engine.ResultPlayerWin:
			playerWins++
		case st.result == engine.ResultOpponentWin:
			opponentWins++
		default:
			draws++
		}
	}
	fmt.Printf("player wins:   %d\n", playerWins)
	fmt.Printf("opponent wins: %d\n", opponentWins)
	fmt.Printf("draws:         %d\n", draws)
	if unfinished > 0 {
		fmt.Printf("unfinished:    %d\n", unfinished)
	}
	fmt.Printf("average turns: %.1f\n", float64(totalTurns)/float64(len(all)))
}

func playMatch(run int, seed int64, size int) matchStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation only
	m, err := engine.New(size, rng)
	if err != nil {
		panic(err) // size validated above
	}

	st := matchStats{run: run, seed: seed}
	for m.Result() == engine.ResultNone && st.turns < turnCap {
		st.turns++
		if m.Turn() == engine.SidePlayer {
			if !playerAct(m, rng) {
				break // player has no possible action
			}
		} else {
			if err := m.StepOpponent(); err != nil {
				panic(err)
			}
		}
		for _, ev := range m.TakeEvents() {
			if ev.Kind != engine.EventImpulse {
				continue
			}
			if ev.Side == engine.SidePlayer {
				st.playerImpulses++
			} else {
				st.opponentImpulses++
			}
		}
	}
	st.result = m.Result()
	st.finished = st.result != engine.ResultNone
	return st
}

// playerAct mirrors the opponent heuristic through the public API: with a
// full charge try a random impulse mode, otherwise capture a random legal
// cell. Reports false when no action is possible.
func playerAct(m *engine.Match, rng *rand.Rand) bool {
	if m.Charge(engine.SidePlayer) >= engine.ImpulseCost {
		mode := engine.ImpulseAttack
		if rng.Intn(2) == 1 {
			mode = engine.ImpulseSpeed
		}
		if tryPlayerImpulse(m, rng, mode) {
			return true
		}
	}

	targets := m.LegalCaptureTargets(engine.SidePlayer)
	if len(targets) == 0 {
		return false
	}
	c := targets[rng.Intn(len(targets))]
	if err := m.ApplyCapture(c.X, c.Y); err != nil {
		panic(err)
	}
	return true
}

// tryPlayerImpulse begins and fully resolves an impulse when enough
// eligible cells exist; otherwise it leaves the match untouched.
func tryPlayerImpulse(m *engine.Match, rng *rand.Rand, mode engine.ImpulseMode) bool {
	var candidates []engine.Coord
	if mode == engine.ImpulseAttack {
		candidates = attackableByPlayer(m)
	} else {
		candidates = m.LegalCaptureTargets(engine.SidePlayer)
	}
	// The human impulse needs the full selection count to resolve.
	if len(candidates) < mode.SelectionCount() {
		return false
	}

	if err := m.BeginImpulse(mode); err != nil {
		return false
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, c := range candidates[:mode.SelectionCount()] {
		if err := m.SelectImpulseCell(c.X, c.Y); err != nil {
			panic(err)
		}
	}
	return true
}

// attackableByPlayer lists opponent cells bordering player territory.
func attackableByPlayer(m *engine.Match) []engine.Coord {
	b := m.Board()
	var cells []engine.Coord
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if b.At(x, y) != engine.CellOpponent {
				continue
			}
			for _, a := range b.AdjacentCells(x, y) {
				if b.At(a.X, a.Y) == engine.CellPlayer {
					cells = append(cells, engine.Coord{X: x, Y: y})
					break
				}
			}
		}
	}
	return cells
}
