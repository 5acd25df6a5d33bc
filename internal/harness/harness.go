// Package harness implements the benchmark collaborator described in the
// library's "program surface": T worker goroutines hammer a shared
// cset.Set[int] with a mix of Add, Contains, and Remove, then the caller
// checks the set settled into the expected shape. The harness itself is
// out of scope for the set implementations — it is an external
// collaborator exercised only through the Set contract — but it is the
// thing that actually stresses the resize protocols under concurrency.
//
// Workers are orchestrated with an errgroup.Group (the teacher's own
// cmap_test.go instead drives its concurrent tests with a bare
// sync.WaitGroup; errgroup generalizes that to propagate the first
// worker error and cancel the others). Workers return an error only when
// their context is cancelled; a mismatch in the final set is detected
// afterwards by Verify, which the demo binaries turn into an exit code.
package harness

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	cset "github.com/trubby22/concurrent-hash-set"
)

// removalDivisor matches spec §6: a worker removes every element in its
// range whose value is divisible by this during its twenty passes.
const removalDivisor = 20

// passCount is the number of Contains/conditional-Remove passes each
// worker makes over its range before re-adding it.
const passCount = 20

// Config parameterizes a harness run.
type Config struct {
	Threads   int
	ChunkSize int
}

// ExpectedSize returns the element count the set must hold once every
// worker has joined. Each worker i owns the window
// [i*ChunkSize, i*ChunkSize+2*ChunkSize) — width 2*ChunkSize, but offset
// from its neighbors by only ChunkSize, so consecutive workers' windows
// overlap in a ChunkSize-wide band. Telescoping the union of all T
// windows collapses to [0, (T+1)*ChunkSize): the first window contributes
// its own leading ChunkSize band plus the band it shares with window 1,
// window 1 contributes the band it shares with window 2, and so on, with
// the last window contributing the final trailing ChunkSize band alone.
func (c Config) ExpectedSize() int {
	return (c.Threads + 1) * c.ChunkSize
}

// windowFor returns worker id's half-open range of owned values.
func windowFor(id, chunkSize int) (start, end int) {
	start = id * chunkSize
	end = start + 2*chunkSize
	return start, end
}

// Run spawns cfg.Threads workers against s and blocks until all have
// returned. If one returns an error, the remaining workers' context is
// cancelled and, once every worker has returned, the first error is
// returned.
func Run(ctx context.Context, s cset.Set[int], cfg Config) error {
	if cfg.Threads < 1 {
		return fmt.Errorf("harness: threads must be positive, got %d", cfg.Threads)
	}
	if cfg.ChunkSize < 1 {
		return fmt.Errorf("harness: chunk size must be positive, got %d", cfg.ChunkSize)
	}

	g, gctx := errgroup.WithContext(ctx)
	for id := 0; id < cfg.Threads; id++ {
		id := id
		g.Go(func() error {
			return worker(gctx, s, id, cfg.ChunkSize)
		})
	}
	return g.Wait()
}

// worker implements the per-thread protocol from spec §6: add the owned
// range, make twenty Contains/conditional-Remove passes over it, then
// re-add the whole range.
func worker(ctx context.Context, s cset.Set[int], id, chunkSize int) error {
	start, end := windowFor(id, chunkSize)

	for v := start; v < end; v++ {
		s.Add(v)
	}

	for pass := 0; pass < passCount; pass++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for v := start; v < end; v++ {
			s.Contains(v)
			if v%removalDivisor == 0 {
				s.Remove(v)
			}
		}
	}

	for v := start; v < end; v++ {
		s.Add(v)
	}
	return nil
}

// Verify checks the post-Run invariant from spec §6: Size must equal
// ExpectedSize and every value in [0, ExpectedSize) must be present. It
// returns the first mismatch found, formatted as the single-line
// diagnostic the demo binaries print on failure.
func Verify(s cset.Set[int], cfg Config) error {
	expected := cfg.ExpectedSize()
	if got := s.Size(); got != expected {
		return fmt.Errorf("size mismatch: got %d, want %d", got, expected)
	}
	for v := 0; v < expected; v++ {
		if !s.Contains(v) {
			return fmt.Errorf("missing element %d after harness run", v)
		}
	}
	return nil
}
