package model

// Report is the complete result of a ranking run
type Report struct {
	Lines []RankedLine `json:"lines" yaml:"lines"`
	Stats Stats        `json:"stats" yaml:"stats"`
}

// Stats summarizes the size of each pipeline stage
type Stats struct {
	Words        int   `json:"words" yaml:"words"`               // Input words read
	LexiconSize  int   `json:"lexicon_size" yaml:"lexicon_size"` // Distinct dictionary keys
	SlotSizes    []int `json:"slot_sizes" yaml:"slot_sizes"`     // AnagramSet size per word
	Combinations int   `json:"combinations" yaml:"combinations"` // Cross-product size
	Lines        int   `json:"lines" yaml:"lines"`               // Ranked lines before any limit
	CachedSets   int   `json:"cached_sets" yaml:"cached_sets"`   // Distinct letter multisets memoized
}
