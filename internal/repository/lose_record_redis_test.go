package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLoseRecordRepository_Load(t *testing.T) {
	t.Run("Missing key is an absent store", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewRedisLoseRecordRepository(st.Storage, "")

		// When: records are loaded from an empty database
		result, err := repo.Load(ctx)

		// Then: the store is absent
		require.NoError(t, err)
		assert.Equal(t, LoadAbsent, result.Outcome)
		assert.Empty(t, result.Records)
	})

	t.Run("Broken lines are reported", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a list with one good and one broken line
		require.NoError(t, st.Storage.RPush(ctx, "records", "(1,1)-(2,2)", "(1,1)-(").Err())
		repo := NewRedisLoseRecordRepository(st.Storage, "records")

		// When: records are loaded
		result, err := repo.Load(ctx)

		// Then: the good one survives
		require.NoError(t, err)
		assert.Equal(t, LoadCorrupt, result.Outcome)
		assert.Equal(t, []entity.MoveRecord{{1, 5}}, result.Records)
		assert.Len(t, result.Diagnostics, 1)
	})
}

func TestRedisLoseRecordRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewRedisLoseRecordRepository(st.Storage, "")

	// Given: two saves of different records
	require.NoError(t, repo.Save(ctx, entity.MustParseDigits("159")))
	require.NoError(t, repo.Save(ctx, entity.MustParseDigits("5")))

	// When: the raw list is read
	lines, err := st.Storage.LRange(ctx, DefaultRedisKey, 0, -1).Result()

	// Then: four rotations of the first and one line for the second are stored
	require.NoError(t, err)
	assert.Equal(t, []string{
		"(1,1)-(2,2)-(3,3)",
		"(3,1)-(2,2)-(1,3)",
		"(3,3)-(2,2)-(1,1)",
		"(1,3)-(2,2)-(3,1)",
		"(2,2)",
	}, lines)

	// Then: loading returns all five records
	result, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, LoadOK, result.Outcome)
	assert.Len(t, result.Records, 5)
}
