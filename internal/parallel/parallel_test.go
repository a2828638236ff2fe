package parallel

import (
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestForCoversEveryIndexOnce(t *testing.T) {
	cfgs := map[string]Config{
		"serial":   Serial(),
		"parallel": {Enabled: true, NumWorkers: 4, MinChunkSize: 1},
		"default":  DefaultConfig(),
	}

	for name, cfg := range cfgs {
		t.Run(name, func(t *testing.T) {
			const n = 10000
			counts := make([]int32, n)
			For(n, func(i int) {
				atomic.AddInt32(&counts[i], 1)
			}, cfg)
			for i, c := range counts {
				if c != 1 {
					t.Fatalf("index %d visited %d times", i, c)
				}
			}
		})
	}
}

func TestForRangePartitionsAreDisjoint(t *testing.T) {
	const n = 5000
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}
	var total atomic.Int64
	counts := make([]int32, n)
	ForRange(n, func(start, end int) {
		if start < 0 || end > n || start >= end {
			t.Errorf("bad range [%d, %d)", start, end)
		}
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
		total.Add(int64(end - start))
	}, cfg)

	if total.Load() != n {
		t.Fatalf("ranges covered %d indices, want %d", total.Load(), n)
	}
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d covered %d times", i, c)
		}
	}
}

func TestForRangeZeroAndSmall(t *testing.T) {
	called := 0
	ForRange(0, func(start, end int) { called++ }, DefaultConfig())
	if called != 0 {
		t.Errorf("ForRange(0) invoked its body %d times", called)
	}

	// Below MinChunkSize the work stays on the calling goroutine.
	seen := 0
	ForRange(3, func(start, end int) { seen += end - start }, DefaultConfig())
	if seen != 3 {
		t.Errorf("small ForRange covered %d indices, want 3", seen)
	}
}

func BenchmarkForRange(b *testing.B) {
	n := 1 << 16
	sink := make([]float64, n)

	b.Run("parallel", func(b *testing.B) {
		cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1 << 10}
		for i := 0; i < b.N; i++ {
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					sink[j] += 1
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfg := Serial()
		for i := 0; i < b.N; i++ {
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					sink[j] += 1
				}
			}, cfg)
		}
	})
}
