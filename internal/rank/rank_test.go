package rank

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/anagrank/internal/expand"
	"github.com/ppiankov/anagrank/internal/model"
)

func entries(pairs ...any) model.Combination {
	c := make(model.Combination, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		c = append(c, model.Entry{Word: pairs[i].(string), Weight: pairs[i+1].(int)})
	}
	return c
}

func set(pairs ...any) model.AnagramSet {
	return model.AnagramSet(entries(pairs...))
}

func texts(lines []model.RankedLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestIsFiller(t *testing.T) {
	assert.True(t, IsFiller(model.Entry{Word: "\n", Weight: 3}))
	assert.True(t, IsFiller(model.Entry{Word: " ", Weight: 3}))
	assert.True(t, IsFiller(model.Entry{Word: "eat", Weight: 0}))
	assert.False(t, IsFiller(model.Entry{Word: "eat", Weight: -1}))
	assert.False(t, IsFiller(model.Entry{Word: "  ", Weight: 1}))
}

func TestLine(t *testing.T) {
	l := Line(entries("tea", 5, "dog", -2))
	assert.Equal(t, model.RankedLine{Text: "tea dog ", Weight: 3}, l)

	assert.Equal(t, model.RankedLine{}, Line(nil))
}

func TestCombination_AllOrderings(t *testing.T) {
	lines := Combination(entries("b", 1, "c", 2, "a", 3))

	assert.Equal(t, []string{"c b a ", "c a b ", "b c a ", "b a c ", "a c b ", "a b c "}, texts(lines))
	for _, l := range lines {
		assert.Equal(t, 6, l.Weight)
	}
}

func TestCombination_FactorialCount(t *testing.T) {
	c := entries("a", 1, "b", 2, "c", 3, "d", 4, "e", 5)
	lines := Combination(c)
	require.Len(t, lines, 120)

	seen := make(map[string]bool)
	for _, l := range lines {
		assert.False(t, seen[l.Text], "ordering %q repeated", l.Text)
		seen[l.Text] = true
		assert.Equal(t, 15, l.Weight)

		words := strings.Fields(l.Text)
		sort.Strings(words)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, words)
	}
}

func TestCombination_DuplicateTokens(t *testing.T) {
	lines := Combination(entries("ab", 1, "ab", 1, "cd", 2))
	assert.Equal(t, []string{"cd ab ab ", "ab cd ab ", "ab ab cd "}, texts(lines))
}

func TestCombination_FiltersFillers(t *testing.T) {
	lines := Combination(entries("eat", 5, " ", 9, "zero", 0, "\n", 4))
	require.Len(t, lines, 1)
	assert.Equal(t, model.RankedLine{Text: "eat ", Weight: 5}, lines[0])
}

func TestCombination_EmptyAfterFilter(t *testing.T) {
	lines := Combination(entries("zero", 0, " ", 1))
	require.Len(t, lines, 1)
	assert.Equal(t, model.RankedLine{Text: "", Weight: 0}, lines[0])

	lines = Combination(model.Combination{})
	require.Len(t, lines, 1)
	assert.Equal(t, model.RankedLine{}, lines[0])
}

func TestCombination_DoesNotMutateInput(t *testing.T) {
	c := entries("a", 1, "c", 3, "b", 2)
	Combination(c)
	assert.Equal(t, entries("a", 1, "c", 3, "b", 2), c)
}

func TestSort(t *testing.T) {
	lines := []model.RankedLine{
		{Text: "b ", Weight: 1},
		{Text: "z ", Weight: 9},
		{Text: "a ", Weight: 1},
		{Text: "a ", Weight: 1},
		{Text: "m ", Weight: -3},
		{Text: "c ", Weight: 9},
	}
	Sort(lines)

	assert.Equal(t, []model.RankedLine{
		{Text: "c ", Weight: 9},
		{Text: "z ", Weight: 9},
		{Text: "a ", Weight: 1},
		{Text: "a ", Weight: 1},
		{Text: "b ", Weight: 1},
		{Text: "m ", Weight: -3},
	}, lines)
}

func assertOrdered(t *testing.T, lines []model.RankedLine) {
	t.Helper()
	for i := 1; i < len(lines); i++ {
		a, b := lines[i-1], lines[i]
		require.GreaterOrEqual(t, a.Weight, b.Weight, "line %d", i)
		if a.Weight == b.Weight {
			require.LessOrEqual(t, a.Text, b.Text, "line %d", i)
		}
	}
}

func TestRank_SingleSlotScenario(t *testing.T) {
	combos, err := expand.Expand(model.CandidateTable{set("tea", 5, "eat", 5, "ate", 5)})
	require.NoError(t, err)
	require.Len(t, combos, 3)

	lines, err := NewRanker(1, 0, nil).Rank(context.Background(), combos)
	require.NoError(t, err)
	assert.Equal(t, []model.RankedLine{
		{Text: "ate ", Weight: 5},
		{Text: "eat ", Weight: 5},
		{Text: "tea ", Weight: 5},
	}, lines)
}

func TestRank_TwoSlotScenario(t *testing.T) {
	table := model.CandidateTable{
		set("ab", 3, "ba", 4),
		set("cd", 1, "dc", 2),
	}
	combos, err := expand.Expand(table)
	require.NoError(t, err)
	require.Len(t, combos, 4)

	lines, err := NewRanker(1, 0, nil).Rank(context.Background(), combos)
	require.NoError(t, err)
	require.Len(t, lines, 8)
	assertOrdered(t, lines)

	assert.Equal(t, model.RankedLine{Text: "ba dc ", Weight: 6}, lines[0])
	assert.Equal(t, model.RankedLine{Text: "dc ba ", Weight: 6}, lines[1])
	assert.Equal(t, 5, lines[2].Weight)
	assert.Equal(t, 4, lines[7].Weight)
}

func TestRank_ParallelMatchesSequential(t *testing.T) {
	table := model.CandidateTable{
		set("ab", 3, "ba", 4, "zz", 0),
		set("cd", 1, "dc", 2),
		set("ef", 7, "fe", 7, " ", 5),
	}
	combos, err := expand.Expand(table)
	require.NoError(t, err)

	want, err := NewRanker(1, 0, nil).Rank(context.Background(), combos)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := NewRanker(workers, 2, nil).Rank(context.Background(), combos)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assertOrdered(t, got)
		})
	}
}

func TestRank_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	combos := []model.Combination{entries("a", 1)}
	_, err := NewRanker(1, 0, nil).Rank(ctx, combos)
	require.ErrorIs(t, err, context.Canceled)

	_, err = NewRanker(4, 1, nil).Rank(ctx, combos)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRank_Empty(t *testing.T) {
	lines, err := NewRanker(1, 0, nil).Rank(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
