package entity

// WinCombos lists every line of three cells as position codes.
var WinCombos = [][3]Code{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Verdict is the outcome of evaluating a move record.
type Verdict struct {
	Ended  bool
	Winner Mover
}

func (that Verdict) Tie() bool {
	return that.Ended && that.Winner == Nobody
}

// Evaluate decides whether the record is terminal. Each side's plays are
// checked on their own for a full row, column or diagonal; a full board
// without a line is a tie.
func Evaluate(record MoveRecord) Verdict {
	for _, mover := range []Mover{Computer, Person} {
		if hasLine(playsOf(record, mover)) {
			return Verdict{Ended: true, Winner: mover}
		}
	}

	if len(record) >= MaxMoves {
		return Verdict{Ended: true, Winner: Nobody}
	}

	return Verdict{}
}

func playsOf(record MoveRecord, mover Mover) [MaxMoves + 1]bool {
	var owned [MaxMoves + 1]bool
	for i, code := range record {
		if MoverAt(i) == mover && code.Valid() {
			owned[code] = true
		}
	}

	return owned
}

func hasLine(owned [MaxMoves + 1]bool) bool {
	for _, combo := range WinCombos {
		if owned[combo[0]] && owned[combo[1]] && owned[combo[2]] {
			return true
		}
	}

	return false
}
