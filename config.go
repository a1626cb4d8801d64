package ordset

import (
	"github.com/anacrolix/log"
)

// Tunables for a Set. The zero Config isn't usable, start from NewDefaultConfig.
type Config struct {
	// Maximum number of elements held by one chunk. Inserting into a full chunk splits it first.
	ChunkCapacity int
	// Where a full chunk is cut when it's split. Zero means half of ChunkCapacity.
	SplitCutoff int
	// Structural changes (splits, dropped chunks, index rebuilds) are logged at debug level.
	Logger log.Logger
	// Check every invariant after every mutation, rather than progressively less often.
	Paranoid bool
}

func NewDefaultConfig() *Config {
	return &Config{
		ChunkCapacity: defaultChunkCapacity,
		SplitCutoff:   defaultSplitCutoff,
		Logger:        log.Default.WithNames("ordset"),
	}
}

// Returns a copy with out of range values replaced by defaults.
func (cfg Config) normalized() Config {
	if cfg.ChunkCapacity < 2 {
		cfg.ChunkCapacity = max(defaultChunkCapacity, 2)
	}
	if cfg.SplitCutoff <= 0 || cfg.SplitCutoff >= cfg.ChunkCapacity {
		cfg.SplitCutoff = cfg.ChunkCapacity / 2
	}
	return cfg
}
