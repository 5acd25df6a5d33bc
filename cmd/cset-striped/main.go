// Command cset-striped runs the benchmark harness against a StripedSet.
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

	a, err := democli.ParseConcurrent("cset-striped", args)
	if err != nil {
		sugar.Errorf("cset-striped: %v", err)
		return 1
	}

	sugar.Infow("starting striped-set harness",
		"threads", a.Threads, "initial_capacity", a.InitialCapacity, "chunk_size", a.ChunkSize)

	s := cset.NewStripedSet(a.InitialCapacity, cset.IntHash())
	cfg := harness.Config{Threads: a.Threads, ChunkSize: a.ChunkSize}

	if err := harness.Run(context.Background(), s, cfg); err != nil {
		sugar.Errorf("cset-striped: %v", err)
		return 1
	}
	if err := harness.Verify(s, cfg); err != nil {
		sugar.Errorf("cset-striped: %v", err)
		return 1
	}

	sugar.Infow("striped-set harness succeeded", "size", s.Size())
	return 0
}
