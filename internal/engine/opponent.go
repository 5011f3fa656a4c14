package engine

// StepOpponent resolves the scripted opponent's whole turn and hands the
// turn back to the player. The shell invokes it once its thinking delay
// elapses; the engine itself has no timer and the step runs to completion
// in one call.
//
// Policy, in fixed priority order:
//
//  1. With a full charge, draw the impulse mode once, 50/50. Attack flips
//     up to 2 random player cells bordering opponent territory; Speed
//     claims up to 3 random legal neutral cells. Either deducts the full
//     cost. A mode with no eligible targets falls through to 2.
//  2. Capture one legal neutral cell uniformly at random, gaining a
//     charge. With no legal cell the opponent passes.
//
// No lookahead, no evaluation beyond random choice among legal targets.
func (m *Match) StepOpponent() error {
	if m.result != ResultNone {
		return ErrMatchOver
	}
	if m.turn != SideOpponent {
		return ErrIllegalMove
	}
	m.opponentAct()
	m.turn = SidePlayer
	m.evaluateResult()
	return nil
}

func (m *Match) opponentAct() {
	if m.opponentCharge >= ImpulseCost {
		// One mode draw per turn, branched on once.
		mode := ImpulseAttack
		if m.rng.Intn(2) == 1 {
			mode = ImpulseSpeed
		}
		if m.opponentImpulse(mode) {
			return
		}
	}

	targets := m.LegalCaptureTargets(SideOpponent)
	if len(targets) == 0 {
		return // pass
	}
	c := targets[m.rng.Intn(len(targets))]
	m.board.set(c.X, c.Y, CellOpponent)
	m.opponentCells++
	m.opponentCharge++
	m.emit(Event{Kind: EventCapture, Side: SideOpponent})
}

// opponentImpulse fires the drawn mode against a random batch of eligible
// cells. It reports false, leaving all state untouched, when the mode has
// no targets at all.
func (m *Match) opponentImpulse(mode ImpulseMode) bool {
	var candidates []Coord
	if mode == ImpulseAttack {
		candidates = m.attackableCells(SideOpponent)
	} else {
		candidates = m.LegalCaptureTargets(SideOpponent)
	}
	if len(candidates) == 0 {
		return false
	}

	m.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	take := mode.SelectionCount()
	if take > len(candidates) {
		take = len(candidates)
	}
	for _, c := range candidates[:take] {
		m.board.set(c.X, c.Y, CellOpponent)
		m.opponentCells++
		if mode == ImpulseAttack {
			m.playerCells--
		}
	}
	m.opponentCharge -= ImpulseCost
	m.emit(Event{Kind: EventImpulse, Side: SideOpponent, Mode: mode})
	return true
}
