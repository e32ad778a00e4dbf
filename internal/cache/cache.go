package cache

import (
	"slices"

	"github.com/ppiankov/anagrank/internal/model"
)

// Cache memoizes anagram resolution results
type Cache interface {
	Get(key string) (model.AnagramSet, bool)
	Set(key string, set model.AnagramSet)
	Len() int
}

// Key builds the cache key for a word's letters. Words sharing a letter
// multiset share a key, so letters must already be in canonical order.
func Key(letters []byte) string {
	return "anagrank:v1:" + string(letters)
}

// Canonical returns the letters of word sorted in descending byte order
func Canonical(word string) []byte {
	letters := []byte(word)
	slices.Sort(letters)
	slices.Reverse(letters)
	return letters
}
