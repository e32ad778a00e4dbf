package model

// Entry is a dictionary word paired with its weight
type Entry struct {
	Word   string `json:"word" yaml:"word"`
	Weight int    `json:"weight" yaml:"weight"`
}

// AnagramSet holds every dictionary entry whose letters permute one input word
type AnagramSet []Entry

// CandidateTable is index-aligned with the input words, one AnagramSet per word
type CandidateTable []AnagramSet

// Combination picks exactly one entry per CandidateTable slot
type Combination []Entry

// RankedLine is one emitted row: a space-joined permutation and its total weight
type RankedLine struct {
	Text   string `json:"text" yaml:"text"`
	Weight int    `json:"weight" yaml:"weight"`
}
