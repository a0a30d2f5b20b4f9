package game

import "errors"

var (
	// ErrProtocolViolation marks actions submitted out of turn, out of
	// phase, or outside the current legal set. This is the only error
	// class a driving harness is expected to catch and retry; everything
	// else signals an engine bug or bad construction input.
	ErrProtocolViolation = errors.New("protocol violation")

	// ErrInvalidBoardID rejects board ids outside [0,3] at construction.
	ErrInvalidBoardID = errors.New("invalid board id")

	// ErrInvalidBid rejects malformed bids before they reach the ledger.
	ErrInvalidBid = errors.New("invalid bid")

	// ErrInvalidActionID rejects action ids outside the 75-id space,
	// including the reserved id 0.
	ErrInvalidActionID = errors.New("invalid action id")
)
