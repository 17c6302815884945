// Package ordering keeps sibling positions dense: every sibling set of size N
// holds exactly the positions 1..N.
//
// The functions here only compute which block of siblings has to move. The
// storage layer applies the result in one statement, inside the transaction
// that holds the parent lock.
package ordering

import "board-service/internal/domain"

// Shift moves every sibling whose position lies in [From, To] by Delta. The
// relocated entity itself is never part of the block.
type Shift struct {
	From  int
	To    int
	Delta int
}

// Empty reports whether the shift touches no position.
func (s Shift) Empty() bool {
	return s.Delta == 0 || s.From > s.To
}

// Contains reports whether a sibling at pos is moved by the shift.
func (s Shift) Contains(pos int) bool {
	return !s.Empty() && pos >= s.From && pos <= s.To
}

// Apply returns where a sibling currently at pos ends up.
func (s Shift) Apply(pos int) int {
	if s.Contains(pos) {
		return pos + s.Delta
	}
	return pos
}

// Next returns the position for a new sibling appended after last, the
// current highest position (0 for an empty set).
func Next(last int) int {
	if last < 0 {
		last = 0
	}
	return last + 1
}

// Relocate plans moving an entity from position old to target in a set of
// count siblings. A target equal to old needs no writes and returns an empty
// shift.
func Relocate(old, target, count int) (Shift, error) {
	if target < 1 || target > count {
		return Shift{}, domain.Validationf("position must be between 1 and %d", count)
	}
	switch {
	case target < old:
		return Shift{From: target, To: old - 1, Delta: 1}, nil
	case target > old:
		return Shift{From: old + 1, To: target, Delta: -1}, nil
	default:
		return Shift{}, nil
	}
}

// Compact plans closing the gap left by removing the sibling at removed from
// a set that held count siblings before the removal.
func Compact(removed, count int) Shift {
	return Shift{From: removed + 1, To: count, Delta: -1}
}

// IsDense reports whether positions is a permutation of 1..len(positions).
func IsDense(positions []int) bool {
	seen := make([]bool, len(positions)+1)
	for _, p := range positions {
		if p < 1 || p > len(positions) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
