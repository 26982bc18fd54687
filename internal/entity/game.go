package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is one play session. The move record is the only state mutated turn
// by turn; it is frozen once the game is finished.
type Game struct {
	Record  MoveRecord
	Status  string
	Verdict Verdict
}

func NewGame() *Game {
	return &Game{
		Record: make(MoveRecord, 0, MaxMoves),
		Status: StatusOngoing,
	}
}

// Turn is the side expected to play next.
func (that *Game) Turn() Mover {
	if that.IsFinished() {
		return Nobody
	}

	return MoverAt(len(that.Record))
}

func (that *Game) MakeTurn(mover Mover, code Code) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !code.Valid() {
		return fmt.Errorf("%w: code %d", ErrInvalidCell, code)
	}

	if that.Turn() != mover {
		return apperror.ErrNotYourTurn
	}

	next, err := that.Record.With(code)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Record = next
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	that.Verdict = Evaluate(that.Record)
	if that.Verdict.Ended {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// Winner returns the mark of the winner, PlayerTie, or "" while ongoing.
func (that *Game) Winner() string {
	switch {
	case !that.Verdict.Ended:
		return ""
	case that.Verdict.Tie():
		return PlayerTie
	default:
		return that.Verdict.Winner.Mark()
	}
}

// Marks returns the board as marks indexed by code-1.
func (that *Game) Marks() [MaxMoves]string {
	var board [MaxMoves]string
	for i, code := range that.Record {
		board[code-1] = MoverAt(i).Mark()
	}

	return board
}
