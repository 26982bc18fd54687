package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
)

// MoveRecord is the ordered list of plays of one game. Even indices belong to
// the computer, odd indices to the person. A record never repeats a code and
// never holds more than MaxMoves codes.
type MoveRecord []Code

// ParseDigits builds a record from its digit form, e.g. "159".
func ParseDigits(digits string) (MoveRecord, error) {
	record := make(MoveRecord, 0, len(digits))
	for _, ch := range digits {
		if ch < '1' || ch > '9' {
			return nil, fmt.Errorf("%w: digit %q", ErrInvalidCell, ch)
		}

		next, err := record.With(Code(ch - '0'))
		if err != nil {
			return nil, err
		}
		record = next
	}

	return record, nil
}

// MustParseDigits is ParseDigits for literals known to be valid.
func MustParseDigits(digits string) MoveRecord {
	record, err := ParseDigits(digits)
	if err != nil {
		panic(fmt.Errorf("bad move record %q: %w", digits, err))
	}

	return record
}

// FromCells encodes a list of cells into a record.
func FromCells(cells []Cell) (MoveRecord, error) {
	record := make(MoveRecord, 0, len(cells))
	for _, cell := range cells {
		if !cell.Valid() {
			return nil, fmt.Errorf("%w: %s", apperror.ErrMoveOutOfRange, cell)
		}

		next, err := record.With(cell.Code())
		if err != nil {
			return nil, err
		}
		record = next
	}

	return record, nil
}

// With returns a copy of the record with code appended.
func (that MoveRecord) With(code Code) (MoveRecord, error) {
	if !code.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCell, code)
	}

	if len(that) >= MaxMoves {
		return nil, apperror.ErrGameFinished
	}

	if that.Contains(code) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, code.Cell())
	}

	next := make(MoveRecord, len(that), len(that)+1)
	copy(next, that)

	return append(next, code), nil
}

func (that MoveRecord) Contains(code Code) bool {
	for _, c := range that {
		if c == code {
			return true
		}
	}

	return false
}

func (that MoveRecord) HasPrefix(prefix MoveRecord) bool {
	if len(prefix) > len(that) {
		return false
	}

	for i, code := range prefix {
		if that[i] != code {
			return false
		}
	}

	return true
}

// Free lists the codes not yet played, in ascending order.
func (that MoveRecord) Free() []Code {
	free := make([]Code, 0, MaxMoves-len(that))
	for code := Code(1); code <= MaxMoves; code++ {
		if !that.Contains(code) {
			free = append(free, code)
		}
	}

	return free
}

func (that MoveRecord) Cells() []Cell {
	cells := make([]Cell, len(that))
	for i, code := range that {
		cells[i] = code.Cell()
	}

	return cells
}

// Rotate returns the record turned a quarter turn around the board center.
func (that MoveRecord) Rotate() MoveRecord {
	rotated := make(MoveRecord, len(that))
	for i, code := range that {
		rotated[i] = Rotate90(code.Cell()).Code()
	}

	return rotated
}

// String returns the digit form, which is also the key used for lose patterns.
func (that MoveRecord) String() string {
	var sb strings.Builder
	for _, code := range that {
		sb.WriteByte(byte('0' + code))
	}

	return sb.String()
}
