package pattern

import (
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

const (
	longestPromoted  = 7
	shortestPromoted = 3

	// minGroup is the fewest patterns of one length worth grouping: at ply 7
	// only three cells are left.
	minGroup = 3
)

// Derive turns lose records into lose patterns.
//
// Every record seeds a pattern by dropping its last play. Then, for lengths
// 7, 5 and 3, patterns sharing the same first L-1 plays are grouped; when a
// group holds one pattern for every cell still free at ply L (9-L+1), the
// shared prefix minus its last play is itself a lose pattern and joins the
// next, shorter round.
func Derive(records []entity.MoveRecord) *Set {
	set := newSet()

	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		set.add(record[:len(record)-1])
	}

	for length := longestPromoted; length >= shortestPromoted; length -= 2 {
		candidates := set.ofLength(length)
		if len(candidates) < minGroup {
			continue
		}

		for _, prefix := range saturatedPrefixes(candidates, length) {
			set.add(prefix[:length-2])
		}
	}

	return set
}

// saturatedPrefixes groups patterns of the given length by their first
// length-1 plays and returns the prefixes whose every continuation is known.
func saturatedPrefixes(patterns []entity.MoveRecord, length int) []entity.MoveRecord {
	var order []string
	prefixes := make(map[string]entity.MoveRecord)
	counts := make(map[string]int)

	for _, p := range patterns {
		prefix := p[:length-1]
		key := prefix.String()

		if _, ok := counts[key]; !ok {
			order = append(order, key)
			prefixes[key] = prefix
		}
		counts[key]++
	}

	var saturated []entity.MoveRecord
	for _, key := range order {
		if counts[key] == entity.MaxMoves-length+1 {
			saturated = append(saturated, prefixes[key])
		}
	}

	return saturated
}
