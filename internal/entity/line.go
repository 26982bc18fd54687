package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
)

const lineSeparator = "-"

// FormatLine renders a record as persisted: "(1,1)-(2,2)-(3,3)".
func FormatLine(record MoveRecord) string {
	parts := make([]string, len(record))
	for i, cell := range record.Cells() {
		parts[i] = cell.String()
	}

	return strings.Join(parts, lineSeparator)
}

// ParseLine reads a persisted lose record back into a move record.
func ParseLine(line string) (MoveRecord, error) {
	tokens := strings.Split(strings.TrimSpace(line), lineSeparator)
	cells := make([]Cell, 0, len(tokens))

	for _, token := range tokens {
		cell, err := parseCellToken(token)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}

	if len(cells) > MaxMoves {
		return nil, fmt.Errorf("%w: %d moves", apperror.ErrMalformedRecord, len(cells))
	}

	record, err := FromCells(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedRecord, err)
	}

	return record, nil
}

func parseCellToken(token string) (Cell, error) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(token), "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}

	if !ok || strings.ContainsAny(inner, "()") {
		return Cell{}, fmt.Errorf("%w: token %q", apperror.ErrMalformedRecord, token)
	}

	row, col, found := strings.Cut(inner, ",")
	if !found {
		return Cell{}, fmt.Errorf("%w: token %q", apperror.ErrMalformedRecord, token)
	}

	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: token %q: %w", apperror.ErrMalformedRecord, token, err)
	}

	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: token %q: %w", apperror.ErrMalformedRecord, token, err)
	}

	return Cell{Row: r, Col: c}, nil
}

// Orientations returns the persisted lines of a record turned 0, 90, 180 and
// 270 degrees. Lines equal to one already produced are left out.
func Orientations(record MoveRecord) []string {
	lines := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)

	current := record
	for turn := 0; turn < 4; turn++ {
		if turn != 0 {
			current = current.Rotate()
		}

		line := FormatLine(current)
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}

	return lines
}
