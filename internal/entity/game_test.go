package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: it is ongoing, empty and the computer moves first
	require.NotNil(t, game)
	assert.Empty(t, game.Record)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Equal(t, Computer, game.Turn())
	assert.Equal(t, "", game.Winner())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: the computer plays the center
		err := game.MakeTurn(Computer, 5)
		require.NoError(t, err)

		// Then: the record and the turn move on
		assert.Equal(t, MoveRecord{5}, game.Record)
		assert.Equal(t, Person, game.Turn())
		assert.Equal(t, PlayerX, game.Marks()[4])
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: the computer has played the center
		game := NewGame()
		require.NoError(t, game.MakeTurn(Computer, 5))

		// When: the person plays the same cell
		err := game.MakeTurn(Person, 5)

		// Then: ErrCellOccupied is returned and the record is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, MoveRecord{5}, game.Record)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		game := NewGame()

		err := game.MakeTurn(Person, 1)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Empty(t, game.Record)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		game := NewGame()

		assert.ErrorIs(t, game.MakeTurn(Computer, 0), ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(Computer, 10), ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game the computer won on the diagonal
		game := NewGame()
		for i, code := range MustParseDigits("12539") {
			require.NoError(t, game.MakeTurn(MoverAt(i), code))
		}

		// When: the person tries to play on
		err := game.MakeTurn(Person, 4)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerX, game.Winner())
		assert.Equal(t, Nobody, game.Turn())
	})

	t.Run("Move After Tie", func(t *testing.T) {
		game := NewGame()
		for i, code := range MustParseDigits("123546879") {
			require.NoError(t, game.MakeTurn(MoverAt(i), code))
		}

		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerTie, game.Winner())
		assert.ErrorIs(t, game.MakeTurn(Computer, 1), apperror.ErrGameFinished)
	})
}

func TestGame_Marks(t *testing.T) {
	game := &Game{Record: MustParseDigits("519"), Status: StatusOngoing}

	assert.Equal(t, [MaxMoves]string{PlayerO, "", "", "", PlayerX, "", "", "", PlayerX}, game.Marks())
}
