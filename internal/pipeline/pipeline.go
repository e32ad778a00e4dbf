package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/anagrank/internal/anagram"
	"github.com/ppiankov/anagrank/internal/cache"
	"github.com/ppiankov/anagrank/internal/expand"
	"github.com/ppiankov/anagrank/internal/lexicon"
	"github.com/ppiankov/anagrank/internal/model"
	"github.com/ppiankov/anagrank/internal/rank"
)

// Pipeline orchestrates a complete ranking run
type Pipeline struct {
	ranker *rank.Ranker
	logger *slog.Logger
	config *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Pipeline{
		ranker: rank.NewRanker(cfg.Ranking.Workers, cfg.Ranking.ChunkSize, logger),
		logger: logger,
		config: cfg,
	}
}

// Run loads both input files and ranks every anagram arrangement
func (p *Pipeline) Run(ctx context.Context, wordsPath, dictPath string) (*model.Report, error) {
	var (
		lex      *lexicon.Lexicon
		words    []string
		lexErr   error
		wordsErr error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		lex, lexErr = lexicon.Load(dictPath, p.logger)
		return lexErr
	})
	g.Go(func() error {
		words, wordsErr = lexicon.LoadWords(wordsPath)
		return wordsErr
	})

	// Report the dictionary first regardless of which load failed sooner
	if err := g.Wait(); err != nil {
		if lexErr != nil {
			return nil, lexErr
		}
		return nil, wordsErr
	}

	return p.Process(ctx, words, lex)
}

// Process ranks every arrangement of anagrams of words found in lex
func (p *Pipeline) Process(ctx context.Context, words []string, lex *lexicon.Lexicon) (*model.Report, error) {
	stats := model.Stats{
		Words:       len(words),
		LexiconSize: lex.Len(),
	}
	p.logger.Debug("inputs loaded",
		"words", humanize.Comma(int64(stats.Words)),
		"lexicon", humanize.Comma(int64(stats.LexiconSize)))

	// 1. Resolve each word into its anagram candidates. The memo is keyed
	// by letters only, so it lives no longer than this lexicon.
	var memo cache.Cache
	if p.config.Cache.Enabled {
		memo = cache.NewMemoryCache()
	}
	resolver := anagram.NewResolver(lex, memo, p.logger)
	table, err := resolver.BuildTable(words)
	if err != nil {
		return nil, err
	}

	stats.SlotSizes = make([]int, len(table))
	for i, set := range table {
		stats.SlotSizes[i] = len(set)
	}
	if memo != nil {
		stats.CachedSets = memo.Len()
	}
	p.logger.Debug("resolved candidates",
		"slots", len(table),
		"cached_sets", stats.CachedSets)

	// 2. Expand the cross-product of all slots
	combos, err := expand.Expand(table)
	if err != nil {
		return nil, fmt.Errorf("expand: %w", err)
	}
	stats.Combinations = len(combos)
	p.logger.Debug("expanded combinations", "count", humanize.Comma(int64(stats.Combinations)))

	// 3. Permute, score and sort
	lines, err := p.ranker.Rank(ctx, combos)
	if err != nil {
		return nil, err
	}
	stats.Lines = len(lines)
	p.logger.Debug("ranked lines", "count", humanize.Comma(int64(stats.Lines)))

	return &model.Report{
		Lines: lines,
		Stats: stats,
	}, nil
}
