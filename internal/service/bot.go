package service

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/pattern"
)

// Turn is a move picked by a computer-driven side.
type Turn struct {
	Code entity.Code
	// Skipped is the full set of free cells avoided because they follow a lose
	// pattern, not only those passed over before Code.
	Skipped []entity.Code
}

type BotService interface {
	MakeTurn(game *entity.Game) (Turn, error)
}

type botService struct {
	logger   *slog.Logger
	patterns *pattern.Set
	rand     *rand.Rand
}

// NewBotService returns the computer player. It avoids every move that
// continues a known lose pattern.
func NewBotService(logger *slog.Logger, patterns *pattern.Set, rnd *rand.Rand) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		patterns: patterns,
		rand:     rnd,
	}
}

func (that *botService) MakeTurn(game *entity.Game) (Turn, error) {
	log := that.logger.With("method", "MakeTurn", "record", game.Record.String())

	loseMoves := that.patterns.LoseMoves(game.Record)

	// ChooseMove needs at least one free cell outside loseMoves.
	if len(game.Record)+len(loseMoves) >= entity.MaxMoves {
		log.Info("every free cell follows a lose pattern, ignoring patterns", "lose_moves", len(loseMoves))
		loseMoves = nil
	}

	code, err := ChooseMove(game.Record, loseMoves, that.rand)
	if err != nil {
		return Turn{}, fmt.Errorf("failed to choose move: %w", err)
	}

	if err = game.MakeTurn(entity.Computer, code); err != nil {
		return Turn{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot moved", "code", code, "skipped", len(loseMoves))

	return Turn{Code: code, Skipped: loseMoves}, nil
}

// ChooseMove picks uniformly among the cells that are neither played nor in
// loseMoves.
func ChooseMove(record entity.MoveRecord, loseMoves []entity.Code, rnd *rand.Rand) (entity.Code, error) {
	legal := make([]entity.Code, 0, entity.MaxMoves)
	for _, code := range record.Free() {
		if !containsCode(loseMoves, code) {
			legal = append(legal, code)
		}
	}

	if len(legal) == 0 {
		return 0, fmt.Errorf("%w: record %s, lose moves %v", apperror.ErrNoLegalMoves, record, loseMoves)
	}

	return legal[rnd.Intn(len(legal))], nil //nolint: gosec // move choice is not security sensitive
}

func containsCode(codes []entity.Code, code entity.Code) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}

	return false
}
