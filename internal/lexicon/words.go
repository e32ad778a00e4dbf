package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LoadWords reads the input word list from a file
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open words %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("read words %s: %w", path, err)
	}
	return words, nil
}

// ReadWords flattens whitespace-separated tokens across all lines, keeping
// order and duplicates
func ReadWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if w := scanner.Text(); w != "" {
			words = append(words, w)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return words, nil
}
