package chess

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSquare      = errors.New("chess: square off the board")
	ErrSourceEmpty        = errors.New("chess: no piece on the source square")
	ErrWrongTurn          = errors.New("chess: piece does not belong to the side to move")
	ErrOwnPiece           = errors.New("chess: destination holds a piece of the same color")
	ErrUnreachable        = errors.New("chess: piece cannot reach the destination")
	ErrKingInCheck        = errors.New("chess: move leaves own king in check")
	ErrInvalidPromotion   = errors.New("chess: invalid promotion")
	ErrCastleRights       = errors.New("chess: castling right lost")
	ErrCastleBlocked      = errors.New("chess: castling path is occupied")
	ErrCastleAttacked     = errors.New("chess: king would cross an attacked square")
	ErrCorrupt            = errors.New("chess: board invariants violated")
	ErrInvalidDescription = errors.New("chess: invalid position description")
)

// MoveError reports why a move was rejected.
type MoveError struct {
	From, To Square
	Err      error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v%v: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
