package engine

import "errors"

// Validation errors returned by match operations. The engine rejects bad
// moves instead of clamping or silently ignoring them; the one deliberate
// exception is impulse cell selection, where an ineligible pick is a
// silent no-op (see Match.SelectImpulseCell).
var (
	// ErrInvalidConfig reports an unsupported grid size at match start.
	ErrInvalidConfig = errors.New("engine: unsupported grid size")

	// ErrIllegalMove reports a capture or impulse attempted out of turn
	// or on an ineligible cell.
	ErrIllegalMove = errors.New("engine: illegal move")

	// ErrInsufficientCharge reports an impulse requested below the
	// charge cost.
	ErrInsufficientCharge = errors.New("engine: insufficient charge")

	// ErrNoPendingImpulse reports a cell selection with no impulse
	// in progress.
	ErrNoPendingImpulse = errors.New("engine: no impulse pending")

	// ErrMatchOver reports a mutating call after the result is decided.
	ErrMatchOver = errors.New("engine: match already decided")
)
