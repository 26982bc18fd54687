package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	// Given: a record of seven plays
	record := MustParseDigits("1592473")

	// When: the record is formatted
	line := FormatLine(record)

	// Then: it uses the persisted (row,col) form
	assert.Equal(t, "(1,1)-(2,2)-(3,3)-(1,2)-(2,1)-(3,1)-(1,3)", line)
}

func TestParseLine(t *testing.T) {
	t.Run("Reads a persisted line", func(t *testing.T) {
		record, err := ParseLine("(1,1)-(2,2)-(3,3)-(1,2)-(2,1)-(3,1)-(1,3)")

		require.NoError(t, err)
		assert.Equal(t, MustParseDigits("1592473"), record)
	})

	t.Run("Tolerates spaces", func(t *testing.T) {
		record, err := ParseLine("  ( 2 , 2 )-(1, 3) ")

		require.NoError(t, err)
		assert.Equal(t, MoveRecord{5, 3}, record)
	})

	t.Run("Rejects broken tokens", func(t *testing.T) {
		for _, line := range []string{"(1,1)-(2,x)", "(1,1)-2,2", "(1;1)", "", "(1,1)-(4,1)", "(1,1)-(1,1)", "(1,1)junk-x(2,2)", "(1,1)-((2,2))"} {
			_, err := ParseLine(line)

			require.ErrorIs(t, err, apperror.ErrMalformedRecord, line)
		}
	})
}

func TestOrientations(t *testing.T) {
	t.Run("Diagonal record keeps four ordered variants", func(t *testing.T) {
		// Given: the record (1,1) (2,2) (3,3)
		record := MustParseDigits("159")

		// When: its orientations are produced
		lines := Orientations(record)

		// Then: every quarter turn changes the play order, so no line repeats
		assert.Equal(t, []string{
			"(1,1)-(2,2)-(3,3)",
			"(3,1)-(2,2)-(1,3)",
			"(3,3)-(2,2)-(1,1)",
			"(1,3)-(2,2)-(3,1)",
		}, lines)
	})

	t.Run("Center-only record collapses to one line", func(t *testing.T) {
		lines := Orientations(MustParseDigits("5"))

		assert.Equal(t, []string{"(2,2)"}, lines)
	})

	t.Run("Every variant parses back to a valid record", func(t *testing.T) {
		for _, line := range Orientations(MustParseDigits("1592473")) {
			record, err := ParseLine(line)

			require.NoError(t, err)
			assert.Len(t, record, 7)
		}
	})
}
