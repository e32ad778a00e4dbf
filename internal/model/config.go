package model

// Config holds all tunables for a ranking run
type Config struct {
	Ranking RankingConfig `yaml:"ranking"`
	Cache   CacheConfig   `yaml:"cache"`
	Output  OutputConfig  `yaml:"output"`
}

// RankingConfig controls how combinations are permuted and scored
type RankingConfig struct {
	Workers   int `yaml:"workers"`    // 1 keeps ranking fully sequential
	ChunkSize int `yaml:"chunk_size"` // Combinations per worker job
}

// CacheConfig controls the anagram resolution memo
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Format  string `yaml:"format"` // text, json, yaml
	Limit   int    `yaml:"limit"`  // 0 prints every line
	Verbose bool   `yaml:"verbose"`
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultConfig returns settings that reproduce the reference output exactly
func DefaultConfig() *Config {
	return &Config{
		Ranking: RankingConfig{
			Workers:   1,
			ChunkSize: 256,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}
