package parallel

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.MinChunkSize = 16

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForRangeCoversDomain(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1, Partitions: 7}
	seen := make([]int32, 100)

	ForRange(len(seen), func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times", i, c)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  Config
		want []Range
	}{
		{"empty", 0, DefaultConfig(), nil},
		{"serial", 10, Serial(), []Range{{0, 10}}},
		{"even", 9, Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1}, []Range{{0, 3}, {3, 6}, {6, 9}}},
		{"remainder first", 10, Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1}, []Range{{0, 4}, {4, 7}, {7, 10}}},
		{"min chunk caps partitions", 10, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 4}, []Range{{0, 4}, {4, 7}, {7, 10}}},
		{"more partitions than items", 2, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}, []Range{{0, 1}, {1, 2}}},
		{"explicit partitions while serial", 4, Config{Partitions: 2, MinChunkSize: 1}, []Range{{0, 2}, {2, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.n, tt.cfg)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%d) = %v, want %v", tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("partition %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRunVisitsEveryPartition(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1, Partitions: 5}
	parts := Split(50, cfg)
	var total int64

	err := Run(context.Background(), parts, cfg, func(_ context.Context, _ int, r Range) error {
		atomic.AddInt64(&total, int64(r.Len()))
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 50 {
		t.Errorf("visited %d indices, want 50", total)
	}
}

func TestRunReportsFirstErrorAfterJoin(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1, Partitions: 4}
	parts := Split(4, cfg)
	boom := errors.New("boom")
	var running, finished int32

	err := Run(context.Background(), parts, cfg, func(ctx context.Context, part int, _ Range) error {
		atomic.AddInt32(&running, 1)
		defer atomic.AddInt32(&finished, 1)
		if part == 1 {
			return boom
		}
		<-ctx.Done()
		return nil
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if running != finished {
		t.Errorf("Run returned with %d of %d partitions still running", running-finished, running)
	}
}

func TestRunHonoursCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	err := Run(ctx, Split(10, Serial()), Serial(), func(context.Context, int, Range) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no calls, got %d", calls)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvWorkers, "6")
	t.Setenv(EnvMinChunk, "32")
	t.Setenv(EnvPartitions, "12")
	t.Setenv(EnvParallel, "false")

	cfg := FromEnv(DefaultConfig())
	if cfg.NumWorkers != 6 || cfg.MinChunkSize != 32 || cfg.Partitions != 12 || cfg.Enabled {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestFromEnvIgnoresMalformed(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	t.Setenv(EnvWorkers, "many")
	t.Setenv(EnvMinChunk, "0")

	base := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 8}
	if got := FromEnv(base); got != base {
		t.Errorf("expected %+v, got %+v", base, got)
	}
	if !strings.Contains(buf.String(), EnvWorkers) {
		t.Errorf("expected a warning naming %s, got %q", EnvWorkers, buf.String())
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 100000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
