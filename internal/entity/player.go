package entity

// Mover is the side that made a ply. The computer always moves first.
type Mover int

const (
	Nobody Mover = iota
	Computer
	Person
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// MoverAt returns the side owning the ply at index i of a move record.
func MoverAt(i int) Mover {
	if i%2 == 0 {
		return Computer
	}
	return Person
}

func (that Mover) Mark() string {
	switch that {
	case Computer:
		return PlayerX
	case Person:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Mover) String() string {
	switch that {
	case Computer:
		return "computer"
	case Person:
		return "person"
	default:
		return "nobody"
	}
}
