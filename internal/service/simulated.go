package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

// SimulatedPersonService plays the person side by picking any free cell. It
// is used to feed the lose-record store without a human.
type SimulatedPersonService interface {
	MakeTurn(game *entity.Game) (Turn, error)
}

type simulatedPersonService struct {
	rand *rand.Rand
}

func NewSimulatedPersonService(rnd *rand.Rand) SimulatedPersonService {
	return &simulatedPersonService{rand: rnd}
}

func (that *simulatedPersonService) MakeTurn(game *entity.Game) (Turn, error) {
	availableCells := game.Record.Free()
	if len(availableCells) == 0 {
		return Turn{}, apperror.ErrNoLegalMoves
	}

	chosenCell := availableCells[that.rand.Intn(len(availableCells))] //nolint: gosec // it's ok

	if err := game.MakeTurn(entity.Person, chosenCell); err != nil {
		return Turn{}, fmt.Errorf("simulated person failed to make turn: %w", err)
	}

	return Turn{Code: chosenCell}, nil
}
