package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
)

var moveInput = regexp.MustCompile(`^\s*\d\s*,\s*\d\s*$`)

// InputError is a rejected "row,col" entry. Cell is zero for format errors.
type InputError struct {
	Cell Cell
	Err  error
}

func (that *InputError) Error() string {
	if that.Cell == (Cell{}) {
		return that.Err.Error()
	}

	return fmt.Sprintf("%s: %s", that.Err, that.Cell)
}

func (that *InputError) Unwrap() error {
	return that.Err
}

// ParseMove reads a "row,col" entry against the current record. The record
// is not touched.
func ParseMove(input string, record MoveRecord) (Code, error) {
	if !moveInput.MatchString(input) {
		return 0, &InputError{Err: apperror.ErrBadMoveFormat}
	}

	rowText, colText, _ := strings.Cut(input, ",")

	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return 0, &InputError{Err: fmt.Errorf("%w: %w", apperror.ErrBadMoveFormat, err)}
	}

	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return 0, &InputError{Err: fmt.Errorf("%w: %w", apperror.ErrBadMoveFormat, err)}
	}

	cell := Cell{Row: row, Col: col}
	if !cell.Valid() {
		return 0, &InputError{Cell: cell, Err: apperror.ErrMoveOutOfRange}
	}

	if record.Contains(cell.Code()) {
		return 0, &InputError{Cell: cell, Err: apperror.ErrCellOccupied}
	}

	return cell.Code(), nil
}
