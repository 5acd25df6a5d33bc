// Command cset-sequential exercises the SequentialSet baseline with no
// concurrency at all: it adds, then removes, a contiguous range of
// integers and checks the set settles back to empty.
package main

import (
	"os"

	"go.uber.org/zap"

	cset "github.com/trubby22/concurrent-hash-set"
	"github.com/trubby22/concurrent-hash-set/internal/democli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	a, err := democli.ParseSequential("cset-sequential", args)
	if err != nil {
		sugar.Errorf("cset-sequential: %v", err)
		return 1
	}

	sugar.Infow("starting sequential demo",
		"initial_capacity", a.InitialCapacity, "count", a.Count)

	s := cset.NewSequentialSet(a.InitialCapacity, cset.IntHash())

	for v := 0; v < a.Count; v++ {
		s.Add(v)
	}
	if got := s.Size(); got != a.Count {
		sugar.Errorf("cset-sequential: size mismatch after add: got %d, want %d", got, a.Count)
		return 1
	}

	for v := 0; v < a.Count; v++ {
		if !s.Remove(v) {
			sugar.Errorf("cset-sequential: remove failed to find previously added %d", v)
			return 1
		}
	}
	if got := s.Size(); got != 0 {
		sugar.Errorf("cset-sequential: size mismatch after remove: got %d, want 0", got)
		return 1
	}

	sugar.Infow("sequential demo succeeded", "count", a.Count)
	return 0
}
