package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRecord_With(t *testing.T) {
	t.Run("Appends without touching the original", func(t *testing.T) {
		// Given: a record with two plays
		record := MustParseDigits("15")

		// When: a third code is appended
		next, err := record.With(9)

		// Then: the new record holds all three and the old one is unchanged
		require.NoError(t, err)
		assert.Equal(t, MoveRecord{1, 5, 9}, next)
		assert.Equal(t, MoveRecord{1, 5}, record)
	})

	t.Run("Rejects a repeated code", func(t *testing.T) {
		record := MustParseDigits("15")

		_, err := record.With(5)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Rejects an invalid code", func(t *testing.T) {
		_, err := MoveRecord{}.With(10)

		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Rejects a tenth play", func(t *testing.T) {
		record := MustParseDigits("123456789")

		_, err := record.With(1)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestParseDigits(t *testing.T) {
	t.Run("Reads digit strings", func(t *testing.T) {
		record, err := ParseDigits("9517")

		require.NoError(t, err)
		assert.Equal(t, MoveRecord{9, 5, 1, 7}, record)
		assert.Equal(t, "9517", record.String())
	})

	t.Run("Rejects zero", func(t *testing.T) {
		_, err := ParseDigits("105")

		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Rejects duplicates", func(t *testing.T) {
		_, err := ParseDigits("1551")

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestMoveRecord_Queries(t *testing.T) {
	record := MustParseDigits("5193")

	t.Run("HasPrefix", func(t *testing.T) {
		assert.True(t, record.HasPrefix(MustParseDigits("51")))
		assert.True(t, record.HasPrefix(MoveRecord{}))
		assert.False(t, record.HasPrefix(MustParseDigits("59")))
		assert.False(t, record.HasPrefix(MustParseDigits("51938")))
	})

	t.Run("Free", func(t *testing.T) {
		assert.Equal(t, []Code{2, 4, 6, 7, 8}, record.Free())
	})

	t.Run("Cells", func(t *testing.T) {
		assert.Equal(t, []Cell{{2, 2}, {1, 1}, {3, 3}, {1, 3}}, record.Cells())
	})

	t.Run("Rotate", func(t *testing.T) {
		// (2,2) (1,1) (3,3) (1,3) -> (2,2) (3,1) (1,3) (1,1)
		assert.Equal(t, MoveRecord{5, 7, 3, 1}, record.Rotate())
	})
}

func TestMoverAt(t *testing.T) {
	assert.Equal(t, Computer, MoverAt(0))
	assert.Equal(t, Person, MoverAt(1))
	assert.Equal(t, Computer, MoverAt(8))
	assert.Equal(t, PlayerX, Computer.Mark())
	assert.Equal(t, PlayerO, Person.Mark())
}
