package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"territorial/internal/engine"
)

// matchReport renders a plain-text summary of a finished (or running)
// match for sharing.
func matchReport(m *engine.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Territorial Control — match report\n")
	fmt.Fprintf(&b, "Grid: %dx%d, target %d cells (45%%)\n", m.Size(), m.Size(), m.WinTarget())
	fmt.Fprintf(&b, "Result: %s\n", m.Result())
	fmt.Fprintf(&b, "Player:   %d cells, %d charge left\n",
		m.CellCount(engine.SidePlayer), m.Charge(engine.SidePlayer))
	fmt.Fprintf(&b, "Opponent: %d cells, %d charge left\n",
		m.CellCount(engine.SideOpponent), m.Charge(engine.SideOpponent))
	return b.String()
}

// copyMatchReport puts the report on the system clipboard.
func copyMatchReport(m *engine.Match) error {
	return clipboard.WriteAll(matchReport(m))
}
