package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

type fileLoseRecords struct {
	path string
}

// NewFileLoseRecordRepository stores one lose record per line of a text file.
func NewFileLoseRecordRepository(path string) LoseRecordRepository {
	return &fileLoseRecords{
		path: path,
	}
}

func (that *fileLoseRecords) Load(_ context.Context) (*LoadResult, error) {
	file, err := os.Open(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return absentResult(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open lose records: %w", err)
	}
	defer file.Close()

	var lines []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lose records: %w", err)
	}

	return decodeLines(lines), nil
}

func (that *fileLoseRecords) Save(_ context.Context, record entity.MoveRecord) error {
	if err := validateLoseRecord(record); err != nil {
		return err
	}

	file, err := os.OpenFile(that.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open lose records: %w", err)
	}

	writer := bufio.NewWriter(file)
	for _, line := range entity.Orientations(record) {
		if _, err = writer.WriteString(line + "\n"); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to write lose record: %w", err)
		}
	}

	if err = writer.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write lose record: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close lose records: %w", err)
	}

	return nil
}
