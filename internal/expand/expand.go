// Package expand generates the cross-product of a candidate table without
// recursion.
package expand

import (
	"errors"
	"fmt"

	"github.com/ppiankov/anagrank/internal/model"
)

// ErrTooManyCombinations means the cross-product size does not fit in an int
var ErrTooManyCombinations = errors.New("too many combinations")

// Count returns the product of the slot sizes
func Count(table model.CandidateTable) (int, error) {
	const maxInt = int(^uint(0) >> 1)

	total := 1
	for i, set := range table {
		n := len(set)
		if n == 0 {
			return 0, nil
		}
		if total > maxInt/n {
			return 0, fmt.Errorf("slot %d: %w", i, ErrTooManyCombinations)
		}
		total *= n
	}
	return total, nil
}

// partial is a prefix of a combination, stored as one choice index per
// filled slot
type partial []int

// Expand materializes every combination of one entry per slot. It walks
// the table depth-first with an explicit stack of index prefixes, so stack
// usage does not grow with the number of slots. Every index tuple is
// visited exactly once; the output order is that of the walk.
func Expand(table model.CandidateTable) ([]model.Combination, error) {
	total, err := Count(table)
	if err != nil {
		return nil, err
	}

	combos := make([]model.Combination, 0, total)
	stack := []partial{{}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		depth := len(top)
		if depth == len(table) {
			combos = append(combos, resolve(table, top))
			continue
		}

		for i := range table[depth] {
			next := make(partial, depth+1)
			copy(next, top)
			next[depth] = i
			stack = append(stack, next)
		}
	}

	return combos, nil
}

// resolve copies the chosen entries out of the table
func resolve(table model.CandidateTable, idx partial) model.Combination {
	c := make(model.Combination, len(idx))
	for slot, choice := range idx {
		c[slot] = table[slot][choice]
	}
	return c
}
