// Package lexicon loads the weighted dictionary and the input word list.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ppiankov/anagrank/internal/model"
)

// maxLineBytes bounds a single dictionary or word-list line
const maxLineBytes = 1 << 20

var (
	errNotNumber  = errors.New("not a number")
	errOutOfRange = errors.New("out of range")
)

// Lexicon maps a literal word to its integer weight
type Lexicon struct {
	weights map[string]int
}

// New creates an empty lexicon
func New() *Lexicon {
	return &Lexicon{weights: make(map[string]int)}
}

// Set stores a weight for word, replacing any earlier value
func (l *Lexicon) Set(word string, weight int) {
	l.weights[word] = weight
}

// Lookup returns the entry stored under word
func (l *Lexicon) Lookup(word string) (model.Entry, bool) {
	w, ok := l.weights[word]
	if !ok {
		return model.Entry{}, false
	}
	return model.Entry{Word: word, Weight: w}, true
}

// Len returns the number of distinct words
func (l *Lexicon) Len() int {
	return len(l.weights)
}

// Load reads a dictionary file
func Load(path string, logger *slog.Logger) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	lex, err := Parse(f, logger)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return lex, nil
}

// Parse reads `<word>,<weight>` lines. Lines without a comma are skipped
// silently; lines whose weight does not parse are skipped with a warning.
func Parse(r io.Reader, logger *slog.Logger) (*Lexicon, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	lex := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		word, raw, found := strings.Cut(line, ",")
		if !found {
			continue
		}

		weight, err := parseWeight(raw)
		if err != nil {
			logger.Warn("skipping dictionary line",
				"line", lineNo,
				"reason", err.Error(),
				"text", line)
			continue
		}

		lex.Set(word, weight)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return lex, nil
}

// parseWeight reads a leading signed decimal the way strtol-style parsers
// do: leading whitespace is skipped and anything after the digits ignored.
// The value must fit in 32 bits.
func parseWeight(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, errNotNumber
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, errOutOfRange
	}
	return int(v), nil
}
