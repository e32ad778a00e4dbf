// Package anagram finds the dictionary entries whose letters permute an
// input word and assembles them into a candidate table.
package anagram

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/ppiankov/anagrank/internal/cache"
	"github.com/ppiankov/anagrank/internal/model"
	"github.com/ppiankov/anagrank/internal/permute"
)

// Lexicon is the dictionary lookup the resolver needs
type Lexicon interface {
	Lookup(word string) (model.Entry, bool)
}

// NoAnagramError reports an input word with no dictionary match
type NoAnagramError struct {
	Word string
}

func (e *NoAnagramError) Error() string {
	return fmt.Sprintf("no anagram found for a word: %s", e.Word)
}

// Resolver looks up every permutation of a word's letters in a lexicon
type Resolver struct {
	lexicon Lexicon
	memo    cache.Cache // nil disables memoization
	logger  *slog.Logger
}

// NewResolver creates a resolver. memo may be nil.
func NewResolver(lexicon Lexicon, memo cache.Cache, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		lexicon: lexicon,
		memo:    memo,
		logger:  logger,
	}
}

// Resolve returns every lexicon entry whose letters are a permutation of
// word's letters. Entries appear in descending permutation order, the
// order in which the permutations are visited.
func (r *Resolver) Resolve(word string) model.AnagramSet {
	letters := cache.Canonical(word)

	var key string
	if r.memo != nil {
		key = cache.Key(letters)
		if set, ok := r.memo.Get(key); ok {
			r.logger.Debug("anagram memo hit", "word", word, "matches", len(set))
			return set
		}
	}

	set := model.AnagramSet{}
	for p := range permute.Descending(letters, cmp.Compare[byte]) {
		if e, ok := r.lexicon.Lookup(string(p)); ok {
			set = append(set, e)
		}
	}

	if r.memo != nil {
		r.memo.Set(key, set)
	}
	r.logger.Debug("resolved anagrams", "word", word, "matches", len(set))

	return set
}

// BuildTable resolves each word in order. It fails on the first word that
// has no anagram in the lexicon.
func (r *Resolver) BuildTable(words []string) (model.CandidateTable, error) {
	table := make(model.CandidateTable, 0, len(words))
	for _, w := range words {
		set := r.Resolve(w)
		if len(set) == 0 {
			return nil, &NoAnagramError{Word: w}
		}
		table = append(table, set)
	}
	return table, nil
}
