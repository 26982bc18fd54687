package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

var ErrEmptyRecord = errors.New("lose record is empty")

// LoseRecordRepository persists the games the computer lost. Saving appends
// every rotation of the record; nothing already stored is rewritten.
type LoseRecordRepository interface {
	Load(ctx context.Context) (*LoadResult, error)
	Save(ctx context.Context, record entity.MoveRecord) error
}

type LoadOutcome int

const (
	// LoadOK means the store was read and every line was understood.
	LoadOK LoadOutcome = iota
	// LoadAbsent means there is no store yet, i.e. no prior losses.
	LoadAbsent
	// LoadCorrupt means some lines could not be parsed and were skipped.
	LoadCorrupt
)

func (that LoadOutcome) String() string {
	switch that {
	case LoadOK:
		return "ok"
	case LoadAbsent:
		return "absent"
	case LoadCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Diagnostic describes one stored line that was skipped.
type Diagnostic struct {
	Line int
	Text string
	Err  error
}

type LoadResult struct {
	Records     []entity.MoveRecord
	Outcome     LoadOutcome
	Diagnostics []Diagnostic
}

func absentResult() *LoadResult {
	return &LoadResult{Outcome: LoadAbsent}
}

// decodeLines parses stored lines, skipping blank ones. Line numbers are 1-based.
func decodeLines(lines []string) *LoadResult {
	result := &LoadResult{Outcome: LoadOK}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := entity.ParseLine(line)
		if err != nil {
			result.Outcome = LoadCorrupt
			result.Diagnostics = append(result.Diagnostics, Diagnostic{Line: i + 1, Text: line, Err: err})
			continue
		}

		result.Records = append(result.Records, record)
	}

	return result
}

func validateLoseRecord(record entity.MoveRecord) error {
	if len(record) == 0 {
		return ErrEmptyRecord
	}

	return nil
}
