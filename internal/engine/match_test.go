package engine

import (
	"math/rand"
	"testing"
)

// --- Helpers ---

func newTestMatch(t *testing.T, size int) *Match {
	t.Helper()
	m, err := New(size, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return m
}

// checkCounts verifies the incremental counters against a live recount of
// the board, and the occupancy bound.
func checkCounts(t *testing.T, m *Match) {
	t.Helper()
	if got := m.board.count(CellPlayer); got != m.playerCells {
		t.Fatalf("player counter %d, board holds %d", m.playerCells, got)
	}
	if got := m.board.count(CellOpponent); got != m.opponentCells {
		t.Fatalf("opponent counter %d, board holds %d", m.opponentCells, got)
	}
	total := m.board.size * m.board.size
	if m.playerCells+m.opponentCells > total {
		t.Fatalf("counts %d+%d exceed board size %d", m.playerCells, m.opponentCells, total)
	}
	if m.playerCharge < 0 || m.opponentCharge < 0 {
		t.Fatalf("negative charge: player %d, opponent %d", m.playerCharge, m.opponentCharge)
	}
}

// --- Match start ---

func TestNew_SeedsOppositeCorners(t *testing.T) {
	for _, size := range []int{7, 10, 12} {
		m := newTestMatch(t, size)
		if m.Board().At(0, 0) != CellPlayer {
			t.Fatalf("size %d: (0,0) should be player-owned", size)
		}
		if m.Board().At(size-1, size-1) != CellOpponent {
			t.Fatalf("size %d: (%d,%d) should be opponent-owned", size, size-1, size-1)
		}
		if m.CellCount(SidePlayer) != 1 || m.CellCount(SideOpponent) != 1 {
			t.Fatalf("size %d: counts should start 1/1", size)
		}
		if m.Charge(SidePlayer) != 0 || m.Charge(SideOpponent) != 0 {
			t.Fatalf("size %d: charges should start at 0", size)
		}
		if m.Turn() != SidePlayer {
			t.Fatalf("size %d: player should move first", size)
		}
		if m.Result() != ResultNone {
			t.Fatalf("size %d: result should start undecided", size)
		}
		checkCounts(t, m)
	}
}

func TestNew_RejectsUnsupportedSizes(t *testing.T) {
	for _, size := range []int{0, 1, 6, 8, 11, 13, -7} {
		if _, err := New(size, rand.New(rand.NewSource(1))); err != ErrInvalidConfig {
			t.Fatalf("New(%d): want ErrInvalidConfig, got %v", size, err)
		}
	}
}

func TestWinTarget(t *testing.T) {
	m := newTestMatch(t, 7)
	if got := m.WinTarget(); got != 23 {
		t.Fatalf("7x7 target should be ceil(49*0.45)=23, got %d", got)
	}
	if got := newTestMatch(t, 10).WinTarget(); got != 45 {
		t.Fatalf("10x10 target should be 45, got %d", got)
	}
	if got := newTestMatch(t, 12).WinTarget(); got != 65 {
		t.Fatalf("12x12 target should be ceil(144*0.45)=65, got %d", got)
	}
}

// --- Capture legality ---

func TestIsLegalCapture(t *testing.T) {
	m := newTestMatch(t, 7)

	if !m.IsLegalCapture(1, 0, SidePlayer) {
		t.Fatal("(1,0) borders the player seed and should be legal")
	}
	if !m.IsLegalCapture(0, 1, SidePlayer) {
		t.Fatal("(0,1) borders the player seed and should be legal")
	}
	if m.IsLegalCapture(3, 3, SidePlayer) {
		t.Fatal("(3,3) touches nothing and should be illegal")
	}
	if m.IsLegalCapture(0, 0, SidePlayer) {
		t.Fatal("an owned cell is never a capture target")
	}
	if m.IsLegalCapture(-1, 0, SidePlayer) || m.IsLegalCapture(7, 3, SidePlayer) {
		t.Fatal("out of bounds is never legal")
	}
	if m.IsLegalCapture(1, 0, SideOpponent) {
		t.Fatal("(1,0) has no opponent neighbour")
	}
	if !m.IsLegalCapture(5, 6, SideOpponent) {
		t.Fatal("(5,6) borders the opponent seed and should be legal")
	}
}

func TestLegalCaptureTargets_RowMajorAndSideSpecific(t *testing.T) {
	m := newTestMatch(t, 7)

	p := m.LegalCaptureTargets(SidePlayer)
	if len(p) != 2 {
		t.Fatalf("player should have 2 opening targets, got %d", len(p))
	}
	if p[0] != (Coord{1, 0}) || p[1] != (Coord{0, 1}) {
		t.Fatalf("expected row-major [(1,0) (0,1)], got %v", p)
	}

	o := m.LegalCaptureTargets(SideOpponent)
	if len(o) != 2 {
		t.Fatalf("opponent should have 2 opening targets, got %d", len(o))
	}
	for _, c := range p {
		for _, oc := range o {
			if c == oc {
				t.Fatalf("cell %v legal for both sides in the opening", c)
			}
		}
	}
}

// --- Ordinary capture ---

func TestApplyCapture(t *testing.T) {
	m := newTestMatch(t, 7)
	if err := m.ApplyCapture(1, 0); err != nil {
		t.Fatalf("legal capture rejected: %v", err)
	}
	if m.Board().At(1, 0) != CellPlayer {
		t.Fatal("captured cell should be player-owned")
	}
	if m.CellCount(SidePlayer) != 2 {
		t.Fatalf("player count should be 2, got %d", m.CellCount(SidePlayer))
	}
	if m.Charge(SidePlayer) != 1 {
		t.Fatalf("capture should grant 1 charge, got %d", m.Charge(SidePlayer))
	}
	if m.Turn() != SideOpponent {
		t.Fatal("capture should end the player's turn")
	}
	checkCounts(t, m)
}

func TestApplyCapture_RejectsIllegalTargets(t *testing.T) {
	m := newTestMatch(t, 7)
	for _, c := range []Coord{{3, 3}, {0, 0}, {6, 6}, {-1, 2}, {7, 0}} {
		if err := m.ApplyCapture(c.X, c.Y); err != ErrIllegalMove {
			t.Fatalf("capture of %v: want ErrIllegalMove, got %v", c, err)
		}
	}
	if m.Turn() != SidePlayer || m.CellCount(SidePlayer) != 1 {
		t.Fatal("rejected captures must not mutate state")
	}
}

func TestApplyCapture_RejectsOutOfTurn(t *testing.T) {
	m := newTestMatch(t, 7)
	m.turn = SideOpponent
	if err := m.ApplyCapture(1, 0); err != ErrIllegalMove {
		t.Fatalf("want ErrIllegalMove out of turn, got %v", err)
	}
}

func TestChargeArithmetic_OrdinaryCaptures(t *testing.T) {
	m := newTestMatch(t, 10)
	for i := 0; i < 5; i++ {
		targets := m.LegalCaptureTargets(SidePlayer)
		if err := m.ApplyCapture(targets[0].X, targets[0].Y); err != nil {
			t.Fatalf("capture %d: %v", i, err)
		}
		m.turn = SidePlayer // keep the opponent out of this test
	}
	if m.Charge(SidePlayer) != 5 {
		t.Fatalf("5 captures should yield charge 5, got %d", m.Charge(SidePlayer))
	}
	checkCounts(t, m)
}

// --- Impulses ---

// chargedMatch returns a 7x7 match where the player holds (0,0),(1,0),(2,0)
// with 3 charge, the opponent holds its corner, and it is the player's turn.
func chargedMatch(t *testing.T) *Match {
	t.Helper()
	m := newTestMatch(t, 7)
	m.board.set(1, 0, CellPlayer)
	m.board.set(2, 0, CellPlayer)
	m.playerCells = 3
	m.playerCharge = 3
	checkCounts(t, m)
	return m
}

func TestBeginImpulse_InsufficientCharge(t *testing.T) {
	m := newTestMatch(t, 7)
	m.playerCharge = 2
	if err := m.BeginImpulse(ImpulseAttack); err != ErrInsufficientCharge {
		t.Fatalf("want ErrInsufficientCharge, got %v", err)
	}
	if _, _, ok := m.PendingImpulse(); ok {
		t.Fatal("failed begin must not leave an impulse pending")
	}
	if m.Charge(SidePlayer) != 2 || m.Turn() != SidePlayer {
		t.Fatal("failed begin must not mutate state")
	}
}

func TestBeginImpulse_RejectsSecondBegin(t *testing.T) {
	m := chargedMatch(t)
	if err := m.BeginImpulse(ImpulseSpeed); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := m.BeginImpulse(ImpulseAttack); err != ErrIllegalMove {
		t.Fatalf("second begin: want ErrIllegalMove, got %v", err)
	}
}

func TestSelectImpulseCell_NoPending(t *testing.T) {
	m := newTestMatch(t, 7)
	if err := m.SelectImpulseCell(1, 0); err != ErrNoPendingImpulse {
		t.Fatalf("want ErrNoPendingImpulse, got %v", err)
	}
}

func TestAttackImpulse_ResolvesOnSecondSelection(t *testing.T) {
	m := chargedMatch(t)
	// Two enemy cells bordering player territory.
	m.board.set(0, 1, CellOpponent)
	m.board.set(2, 1, CellOpponent)
	m.opponentCells = 3
	checkCounts(t, m)

	if err := m.BeginImpulse(ImpulseAttack); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := m.SelectImpulseCell(0, 1); err != nil {
		t.Fatalf("first selection: %v", err)
	}
	if _, sel, ok := m.PendingImpulse(); !ok || len(sel) != 1 {
		t.Fatalf("one eligible selection should be held, got pending=%v len=%d", ok, len(sel))
	}
	if m.Turn() != SidePlayer {
		t.Fatal("impulse must not resolve before the full selection")
	}

	if err := m.SelectImpulseCell(2, 1); err != nil {
		t.Fatalf("second selection: %v", err)
	}
	if m.Board().At(0, 1) != CellPlayer || m.Board().At(2, 1) != CellPlayer {
		t.Fatal("both selected cells should flip to the player")
	}
	if m.Charge(SidePlayer) != 0 {
		t.Fatalf("attack should cost %d charge, %d left", ImpulseCost, m.Charge(SidePlayer))
	}
	if m.CellCount(SidePlayer) != 5 || m.CellCount(SideOpponent) != 1 {
		t.Fatalf("counts after attack: %d/%d", m.CellCount(SidePlayer), m.CellCount(SideOpponent))
	}
	if _, _, ok := m.PendingImpulse(); ok {
		t.Fatal("resolution should clear the pending impulse")
	}
	if m.Turn() != SideOpponent {
		t.Fatal("resolution should pass the turn")
	}
	checkCounts(t, m)
}

func TestAttackImpulse_IneligibleSelectionIsSilentNoOp(t *testing.T) {
	m := chargedMatch(t)
	m.board.set(0, 1, CellOpponent) // eligible
	m.opponentCells = 2

	if err := m.BeginImpulse(ImpulseAttack); err != nil {
		t.Fatalf("begin: %v", err)
	}
	// Neutral cell, detached enemy corner, out of bounds: all no-ops.
	for _, c := range []Coord{{3, 3}, {6, 6}, {-1, 0}} {
		if err := m.SelectImpulseCell(c.X, c.Y); err != nil {
			t.Fatalf("ineligible selection %v should not error, got %v", c, err)
		}
	}
	if _, sel, _ := m.PendingImpulse(); len(sel) != 0 {
		t.Fatalf("ineligible selections must not consume slots, got %d", len(sel))
	}
}

func TestSpeedImpulse_DuplicatesIgnored(t *testing.T) {
	m := chargedMatch(t)
	if err := m.BeginImpulse(ImpulseSpeed); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := m.SelectImpulseCell(3, 0); err != nil {
		t.Fatalf("selection: %v", err)
	}
	if err := m.SelectImpulseCell(3, 0); err != nil {
		t.Fatalf("duplicate selection should not error, got %v", err)
	}
	if _, sel, _ := m.PendingImpulse(); len(sel) != 1 {
		t.Fatalf("duplicate should not add a slot, got %d", len(sel))
	}
}

func TestSpeedImpulse_ResolvesOnThirdSelection(t *testing.T) {
	m := chargedMatch(t)
	if err := m.BeginImpulse(ImpulseSpeed); err != nil {
		t.Fatalf("begin: %v", err)
	}
	for _, c := range []Coord{{3, 0}, {0, 1}, {1, 1}} {
		if err := m.SelectImpulseCell(c.X, c.Y); err != nil {
			t.Fatalf("selection %v: %v", c, err)
		}
	}
	if m.CellCount(SidePlayer) != 6 {
		t.Fatalf("speed should claim 3 cells, player count %d", m.CellCount(SidePlayer))
	}
	if m.Charge(SidePlayer) != 0 {
		t.Fatalf("speed should cost %d charge, %d left", ImpulseCost, m.Charge(SidePlayer))
	}
	if m.Turn() != SideOpponent {
		t.Fatal("resolution should pass the turn")
	}
	checkCounts(t, m)
}

func TestCancelImpulse_Idempotent(t *testing.T) {
	m := chargedMatch(t)
	m.CancelImpulse() // nothing pending: no-op
	if err := m.BeginImpulse(ImpulseSpeed); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := m.SelectImpulseCell(3, 0); err != nil {
		t.Fatalf("selection: %v", err)
	}
	m.CancelImpulse()
	m.CancelImpulse()
	if _, _, ok := m.PendingImpulse(); ok {
		t.Fatal("cancel should clear the pending impulse")
	}
	if m.Charge(SidePlayer) != 3 || m.CellCount(SidePlayer) != 3 || m.Turn() != SidePlayer {
		t.Fatal("cancel must not touch board, charge or turn")
	}
	checkCounts(t, m)
}

func TestApplyCapture_RejectedWhileImpulsePending(t *testing.T) {
	m := chargedMatch(t)
	if err := m.BeginImpulse(ImpulseSpeed); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := m.ApplyCapture(3, 0); err != ErrIllegalMove {
		t.Fatalf("capture during impulse selection: want ErrIllegalMove, got %v", err)
	}
}

// --- Win condition ---

func TestWinCondition_PlayerCrossesThresholdImmediately(t *testing.T) {
	m := newTestMatch(t, 7)
	for m.CellCount(SidePlayer) < 23 {
		targets := m.LegalCaptureTargets(SidePlayer)
		if len(targets) == 0 {
			t.Fatal("ran out of capture targets before the threshold")
		}
		if err := m.ApplyCapture(targets[0].X, targets[0].Y); err != nil {
			t.Fatalf("capture: %v", err)
		}
		checkCounts(t, m)
		if m.Result() == ResultNone {
			m.turn = SidePlayer // opponent sits this test out
		}
	}
	if m.CellCount(SidePlayer) != 23 {
		t.Fatalf("player count should be exactly 23, got %d", m.CellCount(SidePlayer))
	}
	// The win lands on the crossing capture, before any opponent turn.
	if m.Result() != ResultPlayerWin {
		t.Fatalf("want PlayerWin at the threshold, got %v", m.Result())
	}
}

func TestWinCondition_TerminalStateRejectsMutation(t *testing.T) {
	m := newTestMatch(t, 7)
	m.result = ResultPlayerWin
	m.playerCharge = 5

	if err := m.ApplyCapture(1, 0); err != ErrMatchOver {
		t.Fatalf("capture after result: want ErrMatchOver, got %v", err)
	}
	if err := m.BeginImpulse(ImpulseSpeed); err != ErrMatchOver {
		t.Fatalf("impulse after result: want ErrMatchOver, got %v", err)
	}
	if err := m.StepOpponent(); err != ErrMatchOver {
		t.Fatalf("opponent step after result: want ErrMatchOver, got %v", err)
	}
	if m.CellCount(SidePlayer) != 1 || m.CellCount(SideOpponent) != 1 {
		t.Fatal("terminal state must stay frozen")
	}
}

func TestWinCondition_ResultNeverReverts(t *testing.T) {
	m := newTestMatch(t, 7)
	m.result = ResultDraw
	m.evaluateResult()
	if m.Result() != ResultDraw {
		t.Fatalf("result should be sticky, got %v", m.Result())
	}
}

func TestWinCondition_Draw(t *testing.T) {
	m := newTestMatch(t, 7)
	m.playerCells = 23
	m.opponentCells = 23
	m.evaluateResult()
	if m.Result() != ResultDraw {
		t.Fatalf("both sides at target should draw, got %v", m.Result())
	}
}

// --- Events ---

func TestTakeEvents_DrainsQueue(t *testing.T) {
	m := newTestMatch(t, 7)
	if err := m.ApplyCapture(1, 0); err != nil {
		t.Fatalf("capture: %v", err)
	}
	ev := m.TakeEvents()
	if len(ev) != 1 || ev[0].Kind != EventCapture || ev[0].Side != SidePlayer {
		t.Fatalf("want one player capture event, got %v", ev)
	}
	if len(m.TakeEvents()) != 0 {
		t.Fatal("second drain should be empty")
	}
}

func TestEvents_ImpulseAndMatchOver(t *testing.T) {
	m := chargedMatch(t)
	m.playerCells = 20
	// Fake the extra territory the counter claims so the recount holds.
	for i := 0; i < 17; i++ {
		m.board.set(i%7, 2+i/7, CellPlayer)
	}
	checkCounts(t, m)

	if err := m.BeginImpulse(ImpulseSpeed); err != nil {
		t.Fatalf("begin: %v", err)
	}
	m.TakeEvents()
	for _, c := range []Coord{{3, 0}, {0, 1}, {1, 1}} {
		if err := m.SelectImpulseCell(c.X, c.Y); err != nil {
			t.Fatalf("selection %v: %v", c, err)
		}
	}
	ev := m.TakeEvents()
	if len(ev) != 2 {
		t.Fatalf("want impulse + match-over events, got %v", ev)
	}
	if ev[0].Kind != EventImpulse || ev[0].Mode != ImpulseSpeed || ev[0].Side != SidePlayer {
		t.Fatalf("first event should be the player speed impulse, got %v", ev[0])
	}
	if ev[1].Kind != EventMatchOver || ev[1].Result != ResultPlayerWin {
		t.Fatalf("second event should be the player win, got %v", ev[1])
	}
}
