package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

const DefaultRedisKey = "loserecords"

type redisLoseRecords struct {
	client *redis.Client
	key    string
}

// NewRedisLoseRecordRepository keeps lose records as lines of a Redis list.
func NewRedisLoseRecordRepository(client *redis.Client, key string) LoseRecordRepository {
	if key == "" {
		key = DefaultRedisKey
	}

	return &redisLoseRecords{
		client: client,
		key:    key,
	}
}

func (that *redisLoseRecords) Load(ctx context.Context) (*LoadResult, error) {
	exists, err := that.client.Exists(ctx, that.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check lose records: %w", err)
	}

	if exists == 0 {
		return absentResult(), nil
	}

	lines, err := that.client.LRange(ctx, that.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get lose records: %w", err)
	}

	return decodeLines(lines), nil
}

func (that *redisLoseRecords) Save(ctx context.Context, record entity.MoveRecord) error {
	if err := validateLoseRecord(record); err != nil {
		return err
	}

	lines := entity.Orientations(record)
	values := make([]interface{}, len(lines))
	for i, line := range lines {
		values[i] = line
	}

	if err := that.client.RPush(ctx, that.key, values...).Err(); err != nil {
		return fmt.Errorf("failed to save lose record: %w", err)
	}

	return nil
}
