package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/pattern"
	"github.com/rocketscienceinc/tictactoe-learner/internal/repository"
	"github.com/rocketscienceinc/tictactoe-learner/internal/service"
)

type loseRecordRepo interface {
	Load(ctx context.Context) (*repository.LoadResult, error)
	Save(ctx context.Context, record entity.MoveRecord) error
}

// presenter is the text interface the game talks through.
type presenter interface {
	Announce(msg string)
	Prompt(msg string)
	ReadLine(ctx context.Context) (string, error)
	ShowBoard(game *entity.Game)
}

type personService interface {
	MakeTurn(game *entity.Game) (service.Turn, error)
}

// BotFactory builds the computer player for one session's lose patterns.
type BotFactory func(patterns *pattern.Set) service.BotService

// Session is one game with the lose patterns known when it started.
type Session struct {
	Game     *entity.Game
	Patterns *pattern.Set
	Bot      service.BotService
}

type GameManager struct {
	logger *slog.Logger

	loseRecordRepo loseRecordRepo
	presenter      presenter
	newBot         BotFactory

	// simulated plays the person side when set; otherwise the person is read
	// from the presenter.
	simulated personService
}

func NewGameManager(logger *slog.Logger, loseRecordRepo loseRecordRepo, presenter presenter, newBot BotFactory, simulated personService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		loseRecordRepo: loseRecordRepo,
		presenter:      presenter,
		newBot:         newBot,
		simulated:      simulated,
	}
}

// NewSession loads the lose records and derives the patterns for one game.
// A store that cannot be read is treated as empty.
func (that *GameManager) NewSession(ctx context.Context) *Session {
	records := that.loadLoseRecords(ctx)
	patterns := pattern.Derive(records)

	that.logger.Debug("lose patterns derived", "records", len(records), "patterns", patterns.Len())

	return &Session{
		Game:     entity.NewGame(),
		Patterns: patterns,
		Bot:      that.newBot(patterns),
	}
}

func (that *GameManager) loadLoseRecords(ctx context.Context) []entity.MoveRecord {
	log := that.logger.With("method", "loadLoseRecords")

	result, err := that.loseRecordRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load lose records, starting without them", "error", err)
		return nil
	}

	switch result.Outcome {
	case repository.LoadAbsent:
		log.Info("no lose records yet")
	case repository.LoadCorrupt:
		for _, diag := range result.Diagnostics {
			log.Warn("skipped malformed lose record", "line", diag.Line, "text", diag.Text, "error", diag.Err)
		}
	case repository.LoadOK:
		log.Debug("lose records loaded", "records", len(result.Records))
	}

	return result.Records
}

// Play runs one game to the end. A game the person wins is saved as a lose
// record. Once ctx is done the game is abandoned unsaved and ctx.Err() is
// returned.
func (that *GameManager) Play(ctx context.Context) (*entity.Game, error) {
	session := that.NewSession(ctx)
	game := session.Game

	that.announceRules()

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("game abandoned: %w", err)
		}

		var err error
		if game.Turn() == entity.Computer {
			err = that.computerTurn(session)
		} else {
			err = that.personTurn(ctx, game)
		}

		if err != nil {
			return game, err
		}

		that.presenter.ShowBoard(game)
	}

	if err := ctx.Err(); err != nil {
		return game, fmt.Errorf("game abandoned: %w", err)
	}

	that.finish(ctx, game)

	return game, nil
}

func (that *GameManager) announceRules() {
	that.presenter.Announce("****************************************************************")
	that.presenter.Announce(`Play game: a move is expressed as "row#,col#", such as "1,2"`)
	that.presenter.Announce(fmt.Sprintf("Computer: %s   Person: %s", entity.PlayerX, entity.PlayerO))
	that.presenter.Announce("****************************************************************")
}

func (that *GameManager) computerTurn(session *Session) error {
	turn, err := session.Bot.MakeTurn(session.Game)
	if err != nil {
		return fmt.Errorf("failed computer turn: %w", err)
	}

	for _, code := range turn.Skipped {
		that.presenter.Announce("Skip a historical lose move: " + moveText(code))
	}

	that.presenter.Announce("Computer move: " + moveText(turn.Code))

	return nil
}

func (that *GameManager) personTurn(ctx context.Context, game *entity.Game) error {
	if that.simulated != nil {
		turn, err := that.simulated.MakeTurn(game)
		if err != nil {
			return fmt.Errorf("failed simulated person turn: %w", err)
		}

		that.presenter.Announce("Person move simulated: " + moveText(turn.Code))

		return nil
	}

	that.presenter.Prompt("Please enter your move:")

	for {
		line, err := that.presenter.ReadLine(ctx)
		if err != nil {
			return fmt.Errorf("failed to read person move: %w", err)
		}

		code, err := entity.ParseMove(line, game.Record)
		if err != nil {
			that.presenter.Prompt(RepromptMessage(err))
			continue
		}

		if err = game.MakeTurn(entity.Person, code); err != nil {
			return fmt.Errorf("failed person turn: %w", err)
		}

		return nil
	}
}

func (that *GameManager) finish(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finish", "record", game.Record.String())

	switch {
	case game.Verdict.Winner == entity.Person:
		that.presenter.Announce("Person Wins!")

		if err := that.loseRecordRepo.Save(ctx, game.Record); err != nil {
			log.Error("failed to save lose record", "error", err)
			return
		}

		log.Info("lose record saved")
	case game.Verdict.Winner == entity.Computer:
		that.presenter.Announce("Computer Wins!")
	default:
		that.presenter.Announce("Tie!")
	}
}

// RepromptMessage turns a rejected entry into the text asking for another.
func RepromptMessage(err error) string {
	var inputErr *entity.InputError
	if !errors.As(err, &inputErr) {
		return "Bad move format, please re-enter:"
	}

	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return fmt.Sprintf("Move %s already used, please re-enter:", inputErr.Cell)
	case errors.Is(err, apperror.ErrMoveOutOfRange):
		return fmt.Sprintf("Move %s out of range, please re-enter:", inputErr.Cell)
	default:
		return "Bad move format, please re-enter:"
	}
}

func moveText(code entity.Code) string {
	row, col := entity.Decode(code)
	return fmt.Sprintf("%d,%d", row, col)
}
