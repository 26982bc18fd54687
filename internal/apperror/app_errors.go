package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")

	ErrBadMoveFormat  = errors.New("bad move format")
	ErrMoveOutOfRange = errors.New("move out of range")

	ErrMalformedRecord = errors.New("malformed lose record")
	ErrNoLegalMoves    = errors.New("no legal moves left")
)
