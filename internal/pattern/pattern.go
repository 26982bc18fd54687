// Package pattern derives lose patterns from recorded losses and answers which
// next moves would follow one of them.
package pattern

import (
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

// Set is an immutable collection of lose patterns in insertion order.
type Set struct {
	patterns []entity.MoveRecord
	index    map[string]struct{}
}

func newSet() *Set {
	return &Set{index: make(map[string]struct{})}
}

// add keeps the first occurrence of every pattern.
func (that *Set) add(p entity.MoveRecord) bool {
	key := p.String()
	if _, ok := that.index[key]; ok {
		return false
	}

	that.index[key] = struct{}{}
	that.patterns = append(that.patterns, p)

	return true
}

func (that *Set) Len() int {
	if that == nil {
		return 0
	}

	return len(that.patterns)
}

func (that *Set) Contains(p entity.MoveRecord) bool {
	if that == nil {
		return false
	}

	_, ok := that.index[p.String()]

	return ok
}

// Patterns returns a copy of the patterns.
func (that *Set) Patterns() []entity.MoveRecord {
	if that == nil {
		return nil
	}

	out := make([]entity.MoveRecord, len(that.patterns))
	copy(out, that.patterns)

	return out
}

// ofLength returns the patterns of exactly n plays.
func (that *Set) ofLength(n int) []entity.MoveRecord {
	var out []entity.MoveRecord
	for _, p := range that.patterns {
		if len(p) == n {
			out = append(out, p)
		}
	}

	return out
}

// LoseMoves returns the codes that extend record into a known lose pattern.
// Codes already on the board are left out.
func (that *Set) LoseMoves(record entity.MoveRecord) []entity.Code {
	if that == nil {
		return nil
	}

	var moves []entity.Code
	seen := make(map[entity.Code]struct{})

	for _, p := range that.patterns {
		if len(p) != len(record)+1 || !p.HasPrefix(record) {
			continue
		}

		next := p[len(record)]
		if record.Contains(next) {
			continue
		}

		if _, ok := seen[next]; ok {
			continue
		}
		seen[next] = struct{}{}
		moves = append(moves, next)
	}

	return moves
}
