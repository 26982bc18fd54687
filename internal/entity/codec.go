package entity

import (
	"errors"
	"fmt"
)

const (
	BoardSize = 3
	MaxMoves  = BoardSize * BoardSize
)

var ErrInvalidCell = errors.New("invalid cell index")

// Code is a board cell numbered row-major from 1 to 9: (r-1)*3 + c.
type Code int

// Cell is a (row, col) pair, both 1-based.
type Cell struct {
	Row int
	Col int
}

// Encode maps a cell to its position code. Callers validate the range.
func Encode(row, col int) Code {
	return Code((row-1)*BoardSize + col)
}

// Decode is the inverse of Encode.
func Decode(code Code) (int, int) {
	return (int(code)-1)/BoardSize + 1, (int(code)-1)%BoardSize + 1
}

func (that Code) Valid() bool {
	return that >= 1 && that <= MaxMoves
}

func (that Code) Cell() Cell {
	row, col := Decode(that)
	return Cell{Row: row, Col: col}
}

func (that Cell) Valid() bool {
	return that.Row >= 1 && that.Row <= BoardSize && that.Col >= 1 && that.Col <= BoardSize
}

func (that Cell) Code() Code {
	return Encode(that.Row, that.Col)
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Rotate90 turns a cell a quarter turn around the center (2,2): (x,y) -> (-(y-2)+2, (x-2)+2).
func Rotate90(cell Cell) Cell {
	return Cell{
		Row: -(cell.Col-2) + 2,
		Col: (cell.Row - 2) + 2,
	}
}
