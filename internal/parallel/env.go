package parallel

import (
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvWorkers    = "NDBUF_WORKERS"
	EnvMinChunk   = "NDBUF_MIN_CHUNK"
	EnvPartitions = "NDBUF_PARTITIONS"
	EnvParallel   = "NDBUF_PARALLEL"
)

// FromEnv returns base with any NDBUF_* overrides applied. Malformed values are
// logged and ignored.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := envInt(EnvWorkers, 1); ok {
		cfg.NumWorkers = v
		cfg.Enabled = cfg.Enabled || v > 1
	}
	if v, ok := envInt(EnvMinChunk, 1); ok {
		cfg.MinChunkSize = v
	}
	if v, ok := envInt(EnvPartitions, 1); ok {
		cfg.Partitions = v
	}
	if raw, set := os.LookupEnv(EnvParallel); set {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			Logger().Warn("ignoring malformed environment variable", "name", EnvParallel, "value", raw)
		} else {
			cfg.Enabled = on
		}
	}
	return cfg
}

func envInt(name string, minValue int) (int, bool) {
	raw, set := os.LookupEnv(name)
	if !set {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < minValue {
		Logger().Warn("ignoring malformed environment variable", "name", name, "value", raw)
		return 0, false
	}
	return v, true
}
