package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

type sqliteLoseRecords struct {
	conn *sql.DB
}

// NewSQLiteLoseRecordRepository keeps lose records as rows of the
// lose_records table, read back in insertion order.
func NewSQLiteLoseRecordRepository(conn *sql.DB) LoseRecordRepository {
	return &sqliteLoseRecords{
		conn: conn,
	}
}

func (that *sqliteLoseRecords) Load(ctx context.Context) (*LoadResult, error) {
	query := `SELECT line FROM lose_records ORDER BY id`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't query lose records: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err = rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("can't scan lose record: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read lose records: %w", err)
	}

	if len(lines) == 0 {
		return absentResult(), nil
	}

	return decodeLines(lines), nil
}

func (that *sqliteLoseRecords) Save(ctx context.Context, record entity.MoveRecord) error {
	if err := validateLoseRecord(record); err != nil {
		return err
	}

	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	query := `INSERT INTO lose_records (line) VALUES (?)`
	for _, line := range entity.Orientations(record) {
		if _, err = tx.ExecContext(ctx, query, line); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("can't save lose record: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit lose record: %w", err)
	}

	return nil
}
