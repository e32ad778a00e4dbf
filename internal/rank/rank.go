// Package rank turns combinations into every ordering of their tokens,
// scores each ordering and sorts the result.
package rank

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/ppiankov/anagrank/internal/model"
	"github.com/ppiankov/anagrank/internal/permute"
	"github.com/ppiankov/anagrank/internal/worker"
)

// preallocCap bounds the per-combination slice preallocation
const preallocCap = 1024

// IsFiller reports whether a token is a placeholder that must not appear in
// output or contribute weight
func IsFiller(e model.Entry) bool {
	return e.Word == "\n" || e.Word == " " || e.Weight == 0
}

// compareTokens orders tokens by word, then by weight
func compareTokens(a, b model.Entry) int {
	if c := strings.Compare(a.Word, b.Word); c != 0 {
		return c
	}
	return cmp.Compare(a.Weight, b.Weight)
}

// Compare orders ranked lines by weight descending, then text ascending
func Compare(a, b model.RankedLine) int {
	if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
		return c
	}
	return strings.Compare(a.Text, b.Text)
}

// Sort puts lines into report order
func Sort(lines []model.RankedLine) {
	slices.SortFunc(lines, Compare)
}

// Line joins tokens in order, each followed by a single space, and sums
// their weights
func Line(tokens []model.Entry) model.RankedLine {
	size := 0
	for _, t := range tokens {
		size += len(t.Word) + 1
	}

	var b strings.Builder
	b.Grow(size)
	weight := 0
	for _, t := range tokens {
		weight += t.Weight
		b.WriteString(t.Word)
		b.WriteByte(' ')
	}
	return model.RankedLine{Text: b.String(), Weight: weight}
}

// Combination emits one ranked line per distinct ordering of the
// combination's non-filler tokens. A combination with no tokens left
// still yields a single empty line of weight zero.
func Combination(c model.Combination) []model.RankedLine {
	tokens := make([]model.Entry, 0, len(c))
	for _, e := range c {
		if !IsFiller(e) {
			tokens = append(tokens, e)
		}
	}

	lines := make([]model.RankedLine, 0, min(permute.Count(tokens, compareTokens), preallocCap))
	for p := range permute.Descending(tokens, compareTokens) {
		lines = append(lines, Line(p))
	}
	return lines
}

// Ranker scores combinations, optionally spreading them across workers
type Ranker struct {
	workers   int
	chunkSize int
	logger    *slog.Logger
}

// NewRanker creates a ranker. workers <= 1 ranks sequentially.
func NewRanker(workers, chunkSize int, logger *slog.Logger) *Ranker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Ranker{
		workers:   workers,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

// Rank produces every ranked line for combos in report order. Lines are
// generated per combination, possibly concurrently, and then sorted once
// across the whole set.
func (r *Ranker) Rank(ctx context.Context, combos []model.Combination) ([]model.RankedLine, error) {
	progress := worker.NewProgress(r.logger, "rank", len(combos), time.Second)

	var lines []model.RankedLine
	if r.workers <= 1 {
		for _, c := range combos {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("rank: %w", err)
			}
			lines = append(lines, Combination(c)...)
			progress.Add(1)
		}
	} else {
		processor := worker.NewBatchProcessor(rankChunk, r.workers, r.chunkSize).WithProgress(progress)
		for _, part := range processor.Process(ctx, combos) {
			lines = append(lines, part...)
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("rank: %w", err)
		}
	}

	r.logger.Debug("sorting ranked lines", "lines", len(lines))
	Sort(lines)

	return lines, nil
}

func rankChunk(ctx context.Context, chunk []model.Combination) []model.RankedLine {
	var lines []model.RankedLine
	for _, c := range chunk {
		if ctx.Err() != nil {
			return lines
		}
		lines = append(lines, Combination(c)...)
	}
	return lines
}
