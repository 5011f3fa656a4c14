package engine

// ImpulseCost is the charge price of either impulse mode.
const ImpulseCost = 3

// winPercent is the share of the board a side must hold to end the match.
const winPercent = 45

// ImpulseMode selects the special action a full charge buys.
type ImpulseMode uint8

const (
	// ImpulseAttack flips 2 enemy cells bordering friendly territory.
	ImpulseAttack ImpulseMode = iota
	// ImpulseSpeed claims 3 legal neutral cells in one turn.
	ImpulseSpeed
)

// SelectionCount returns how many distinct cells the mode resolves with.
func (m ImpulseMode) SelectionCount() int {
	if m == ImpulseAttack {
		return 2
	}
	return 3
}

// String returns the display name of the mode.
func (m ImpulseMode) String() string {
	if m == ImpulseAttack {
		return "Attack"
	}
	return "Speed"
}

// Result is the terminal state of a match. Once non-None it never changes.
type Result uint8

const (
	ResultNone Result = iota
	ResultPlayerWin
	ResultOpponentWin
	ResultDraw
)

// String returns the display name of the result.
func (r Result) String() string {
	switch r {
	case ResultPlayerWin:
		return "Player wins"
	case ResultOpponentWin:
		return "Opponent wins"
	case ResultDraw:
		return "Draw"
	default:
		return "Undecided"
	}
}

// Rand is the random source a match draws from. *math/rand.Rand satisfies
// it; tests substitute scripted sequences to pin down opponent behaviour.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// ValidGridSize reports whether the match supports an n×n board.
func ValidGridSize(n int) bool {
	return n == 7 || n == 10 || n == 12
}

type pendingImpulse struct {
	mode       ImpulseMode
	selections []Coord
}

// Match is the full state of one game: board, incremental cell counts,
// charges, turn owner, optional in-progress impulse selection and the
// terminal result. A Match is owned by a single session and is not safe
// for concurrent use; the game is strictly turn-based so none is needed.
type Match struct {
	board *Board

	playerCells   int
	opponentCells int

	playerCharge   int
	opponentCharge int

	turn    Side
	pending *pendingImpulse
	result  Result

	rng    Rand
	events []Event
}

// New starts a match on a size×size board. The player seeds the top-left
// corner, the opponent the bottom-right, and the player moves first.
// Size must be one of 7, 10 or 12.
func New(size int, rng Rand) (*Match, error) {
	if !ValidGridSize(size) {
		return nil, ErrInvalidConfig
	}
	m := &Match{
		board: newBoard(size),
		turn:  SidePlayer,
		rng:   rng,
	}
	m.board.set(0, 0, CellPlayer)
	m.board.set(size-1, size-1, CellOpponent)
	m.playerCells = 1
	m.opponentCells = 1
	return m, nil
}

// --- Read accessors (polled by the shell once per frame) ---

// Board returns the live board for read access.
func (m *Match) Board() *Board { return m.board }

// Size returns the board edge length.
func (m *Match) Size() int { return m.board.size }

// Turn returns the side to move.
func (m *Match) Turn() Side { return m.turn }

// Result returns the match outcome, ResultNone while undecided.
func (m *Match) Result() Result { return m.result }

// CellCount returns the number of cells a side holds.
func (m *Match) CellCount(s Side) int {
	if s == SidePlayer {
		return m.playerCells
	}
	return m.opponentCells
}

// Charge returns a side's accumulated impulse charge.
func (m *Match) Charge(s Side) int {
	if s == SidePlayer {
		return m.playerCharge
	}
	return m.opponentCharge
}

// WinTarget returns the cell count that ends the match:
// ceil(N² · 45 / 100).
func (m *Match) WinTarget() int {
	total := m.board.size * m.board.size
	return (total*winPercent + 99) / 100
}

// PendingImpulse returns the in-progress impulse mode and a copy of the
// cells selected so far. ok is false when no impulse is pending.
func (m *Match) PendingImpulse() (mode ImpulseMode, selections []Coord, ok bool) {
	if m.pending == nil {
		return 0, nil, false
	}
	sel := make([]Coord, len(m.pending.selections))
	copy(sel, m.pending.selections)
	return m.pending.mode, sel, true
}

// --- Move legality ---

// IsLegalCapture reports whether side may ordinarily capture (x,y): in
// bounds, neutral, and bordering at least one cell the side already owns.
// Territory only grows by contiguous expansion.
func (m *Match) IsLegalCapture(x, y int, side Side) bool {
	if !m.board.InBounds(x, y) || m.board.At(x, y) != CellNeutral {
		return false
	}
	return m.board.hasNeighbour(x, y, side.cell())
}

// LegalCaptureTargets returns every cell side may ordinarily capture, in
// row-major order.
func (m *Match) LegalCaptureTargets(side Side) []Coord {
	var targets []Coord
	for y := 0; y < m.board.size; y++ {
		for x := 0; x < m.board.size; x++ {
			if m.IsLegalCapture(x, y, side) {
				targets = append(targets, Coord{x, y})
			}
		}
	}
	return targets
}

// attackableCells returns the cells the attacker may flip with an Attack
// impulse: enemy-owned cells bordering at least one attacker cell, in
// row-major order.
func (m *Match) attackableCells(attacker Side) []Coord {
	enemy := attacker.Enemy().cell()
	var cells []Coord
	for y := 0; y < m.board.size; y++ {
		for x := 0; x < m.board.size; x++ {
			if m.board.At(x, y) == enemy && m.board.hasNeighbour(x, y, attacker.cell()) {
				cells = append(cells, Coord{x, y})
			}
		}
	}
	return cells
}

// --- Player operations ---

// ApplyCapture performs the player's ordinary capture of (x,y): the cell
// becomes player-owned, the player gains one charge and the turn passes
// to the opponent. It is only legal on the player's turn with no impulse
// pending.
func (m *Match) ApplyCapture(x, y int) error {
	if m.result != ResultNone {
		return ErrMatchOver
	}
	if m.turn != SidePlayer || m.pending != nil {
		return ErrIllegalMove
	}
	if !m.IsLegalCapture(x, y, SidePlayer) {
		return ErrIllegalMove
	}
	m.board.set(x, y, CellPlayer)
	m.playerCells++
	m.playerCharge++
	m.emit(Event{Kind: EventCapture, Side: SidePlayer})
	m.turn = SideOpponent
	m.evaluateResult()
	return nil
}

// BeginImpulse opens impulse selection for the player. It requires the
// player's turn, no impulse already pending, and at least ImpulseCost
// charge. Charge is only deducted when the impulse resolves.
func (m *Match) BeginImpulse(mode ImpulseMode) error {
	if m.result != ResultNone {
		return ErrMatchOver
	}
	if m.turn != SidePlayer || m.pending != nil {
		return ErrIllegalMove
	}
	if m.playerCharge < ImpulseCost {
		return ErrInsufficientCharge
	}
	m.pending = &pendingImpulse{mode: mode}
	return nil
}

// SelectImpulseCell adds (x,y) to the pending impulse selection.
// Ineligible cells and duplicates are silent no-ops: a stray click simply
// does nothing, it neither errors nor consumes a slot. When the mode's
// selection count is reached the impulse resolves atomically.
func (m *Match) SelectImpulseCell(x, y int) error {
	if m.pending == nil {
		return ErrNoPendingImpulse
	}
	if !m.impulseEligible(x, y) || m.alreadySelected(x, y) {
		return nil
	}
	m.pending.selections = append(m.pending.selections, Coord{x, y})
	if len(m.pending.selections) >= m.pending.mode.SelectionCount() {
		m.resolveImpulse()
	}
	return nil
}

// CancelImpulse abandons the pending impulse without touching board,
// charges or turn. Calling it with nothing pending is a no-op.
func (m *Match) CancelImpulse() {
	m.pending = nil
}

func (m *Match) impulseEligible(x, y int) bool {
	switch m.pending.mode {
	case ImpulseAttack:
		// An enemy cell bordering player territory.
		return m.board.At(x, y) == CellOpponent &&
			m.board.hasNeighbour(x, y, CellPlayer)
	default:
		return m.IsLegalCapture(x, y, SidePlayer)
	}
}

func (m *Match) alreadySelected(x, y int) bool {
	for _, c := range m.pending.selections {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

func (m *Match) resolveImpulse() {
	mode := m.pending.mode
	for _, c := range m.pending.selections {
		m.board.set(c.X, c.Y, CellPlayer)
		m.playerCells++
		if mode == ImpulseAttack {
			m.opponentCells--
		}
	}
	m.playerCharge -= ImpulseCost
	m.pending = nil
	m.emit(Event{Kind: EventImpulse, Side: SidePlayer, Mode: mode})
	m.turn = SideOpponent
	m.evaluateResult()
}

// --- Result ---

// evaluateResult sets the terminal result once either side reaches the
// win target. It runs after every mutating action and never reconsiders
// a decided match.
func (m *Match) evaluateResult() {
	if m.result != ResultNone {
		return
	}
	target := m.WinTarget()
	playerWin := m.playerCells >= target
	opponentWin := m.opponentCells >= target
	switch {
	case playerWin && opponentWin:
		m.result = ResultDraw
	case playerWin:
		m.result = ResultPlayerWin
	case opponentWin:
		m.result = ResultOpponentWin
	default:
		return
	}
	m.emit(Event{Kind: EventMatchOver, Result: m.result})
}
