//go:build test

package mem

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"testing"
	"time"

	"github.com/bastiangx/hearme/pkg/predict"
	"github.com/bastiangx/hearme/pkg/suggest"
	"github.com/bastiangx/hearme/pkg/vocab"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var journal = []string{
	"I ",
	"I feel",
	"I feel tired and",
	"I feel tired and alone because my family",
	"I feel tired and alone because my family never listens",
	"I want to",
	"I think I need help with work",
	"Lately I have been so anxious",
}

// stuck never answers before its context ends.
type stuck struct{}

func (stuck) Predict(ctx context.Context, _ string) ([]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func newEngine(seed uint64, predictor predict.Predictor) *suggest.Engine {
	gen := predict.NewGenerator(vocab.Builtin(), predict.NewSampler(seed), predict.DefaultOptions())
	if predictor != nil {
		gen = gen.WithPredictor(predictor)
	}
	return suggest.NewEngine(gen, suggest.DefaultLimits())
}

// write runs one pass over the journal, accepting the first suggestion after every edit.
func write(ctx context.Context, t *testing.T, sess *suggest.Session) int {
	ops := 0
	for _, text := range journal {
		sess.SetText(text)
		snap := sess.Generate(ctx)
		ops++
		if len(snap.Current) > 0 {
			snap = sess.Apply(ctx, snap.Current[0])
			ops++
		}
		if len(snap.Current) > suggest.DefaultLimits().Current || len(snap.Previous) > suggest.DefaultLimits().Previous {
			t.Fatalf("pools out of bounds: current=%d previous=%d", len(snap.Current), len(snap.Previous))
		}
	}
	return ops
}

func memDelta(baseline, final runtime.MemStats) int64 {
	return int64(final.Alloc) - int64(baseline.Alloc)
}

func TestMemoryLeakBasic(t *testing.T) {
	iterations := []int{10, 50, 100, 250}

	for _, iterCount := range iterations {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			runBasicMemoryTest(t, iterCount)
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 100},
		{workers: 2, iterationsPerWorker: 50},
		{workers: 4, iterationsPerWorker: 25},
		{workers: 8, iterationsPerWorker: 12},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			runConcurrentMemoryTest(t, config.workers, config.iterationsPerWorker)
		})
	}
}

func TestFallbackDoesNotLeakGoroutines(t *testing.T) {
	fb := predict.NewFallback(stuck{}, predict.NewPatternMatcher(predict.DefaultRules, predict.DefaultNextWords), 2*time.Millisecond)
	sess := suggest.NewSession(newEngine(3, fb), "I ")

	runtime.GC()
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < 50; i++ {
		write(context.Background(), t, sess)
	}

	// give timed out predictor goroutines a moment to return
	time.Sleep(50 * time.Millisecond)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	t.Logf("goroutine_delta=%d", goroutineDelta)
	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

func TestMemoryStabilityLongRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-running memory stability test in short mode")
	}

	runLongRunMemoryTest(t, 50, 20)
}

func runBasicMemoryTest(t *testing.T, iterations int) {
	ctx := context.Background()
	sess := suggest.NewSession(newEngine(1, nil), "I ")

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	totalOps := 0
	for i := 0; i < iterations; i++ {
		totalOps += write(ctx, t, sess)
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines

	delta := memDelta(baseline, final)
	memPerOp := float64(delta) / float64(totalOps)

	t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		iterations, totalOps, delta, memPerOp, goroutineDelta)

	if memPerOp > 1000 {
		t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
	}

	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

func runConcurrentMemoryTest(t *testing.T, workers, iterationsPerWorker int) {
	memFile, err := os.Create("concurrent_memory.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer func() {
		memFile.Close()
		os.Remove("concurrent_memory.prof")
	}()

	ctx := context.Background()
	engine := newEngine(2, nil)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	var wg sync.WaitGroup
	var mu sync.Mutex
	totalOps := 0

	// one session per worker, the engine is shared
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := suggest.NewSession(engine, "I ")
			ops := 0
			for iter := 0; iter < iterationsPerWorker; iter++ {
				ops += write(ctx, t, sess)
			}
			mu.Lock()
			totalOps += ops
			mu.Unlock()
		}()
	}

	wg.Wait()

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines

	delta := memDelta(baseline, final)
	memPerOp := float64(delta) / float64(totalOps)

	t.Logf("workers=%d iter_per_worker=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		workers, iterationsPerWorker, totalOps, delta, memPerOp, goroutineDelta)

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}

	if memPerOp > 1000 {
		t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
	}

	if goroutineDelta > 3 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

func runLongRunMemoryTest(t *testing.T, cycles, passesPerCycle int) {
	memFile, err := os.Create("longrun_stability.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer func() {
		memFile.Close()
		os.Remove("longrun_stability.prof")
	}()

	ctx := context.Background()
	sess := suggest.NewSession(newEngine(4, nil), "I ")

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	totalOps := 0
	maxMemDelta := int64(0)

	for cycle := 0; cycle < cycles; cycle++ {
		for pass := 0; pass < passesPerCycle; pass++ {
			totalOps += write(ctx, t, sess)
		}

		if cycle%10 == 0 {
			var m runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&m)

			delta := memDelta(baseline, m)
			if delta > maxMemDelta {
				maxMemDelta = delta
			}

			t.Logf("cycle=%d ops=%d mem_delta=%d bytes previous=%d goroutine_delta=%d",
				cycle, totalOps, delta, len(sess.Snapshot().Previous), runtime.NumGoroutine()-baselineGoroutines)
		}

		if cycle%20 == 0 && cycle > 0 {
			sess.Reset()
		}

		time.Sleep(5 * time.Millisecond)
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	finalGoroutineDelta := runtime.NumGoroutine() - baselineGoroutines

	finalMemDelta := memDelta(baseline, final)
	finalMemPerOp := float64(finalMemDelta) / float64(totalOps)

	t.Logf("final_summary: cycles=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d max_mem_delta=%d",
		cycles, totalOps, finalMemDelta, finalMemPerOp, finalGoroutineDelta, maxMemDelta)

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}

	if finalMemPerOp > 500 {
		t.Errorf("excessive memory usage per operation: %.2f bytes", finalMemPerOp)
	}

	if finalGoroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", finalGoroutineDelta)
	}

	if maxMemDelta > 10*1024*1024 {
		t.Errorf("excessive peak memory usage: %d bytes", maxMemDelta)
	}
}
