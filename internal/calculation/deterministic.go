package calculation

import "time"

// seedFunc returns a pseudo-random seed for batches that do not configure
// one explicitly (override for deterministic tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the fallback seed source.
func SetSeedFunc(f func() int64) { seedFunc = f }
