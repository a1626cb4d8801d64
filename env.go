package ordset

import (
	"os"
	"strconv"

	"github.com/anacrolix/log"
	"golang.org/x/exp/constraints"
)

var (
	defaultChunkCapacity = intFromEnv("ORDSET_CHUNK_CAPACITY", 1024)
	// Zero means half of the chunk capacity.
	defaultSplitCutoff = intFromEnv("ORDSET_SPLIT_CUTOFF", 0)
)

// Reads an integer from the environment, falling back if it's unset or doesn't parse.
func intFromEnv[T constraints.Integer](key string, fallback T) T {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	i64, err := strconv.ParseInt(s, 0, 64)
	if err != nil || T(i64) < 0 {
		log.Levelf(log.Warning, "ignoring %s=%q: not a non-negative integer", key, s)
		return fallback
	}
	return T(i64)
}
