// Command cset-refinable runs the benchmark harness against a
// RefinableSet.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	cset "github.com/trubby22/concurrent-hash-set"
	"github.com/trubby22/concurrent-hash-set/internal/democli"
	"github.com/trubby22/concurrent-hash-set/internal/harness"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	a, err := democli.ParseConcurrent("cset-refinable", args)
	if err != nil {
		sugar.Errorf("cset-refinable: %v", err)
		return 1
	}

	sugar.Infow("starting refinable-set harness",
		"threads", a.Threads, "initial_capacity", a.InitialCapacity, "chunk_size", a.ChunkSize)

	s := cset.NewRefinableSet(a.InitialCapacity, cset.IntHash())
	cfg := harness.Config{Threads: a.Threads, ChunkSize: a.ChunkSize}

	if err := harness.Run(context.Background(), s, cfg); err != nil {
		sugar.Errorf("cset-refinable: %v", err)
		return 1
	}
	if err := harness.Verify(s, cfg); err != nil {
		sugar.Errorf("cset-refinable: %v", err)
		return 1
	}

	sugar.Infow("refinable-set harness succeeded", "size", s.Size())
	return 0
}
