// Package democli parses the positional-argument command lines shared by
// every demo binary in cmd/, the way calvinalkan-agent-task's cmd/*/main.go
// binaries delegate argument handling to a small internal package instead
// of inlining it in main. Each demo still takes plain positional numeric
// arguments (spec §6), not flags; pflag is used here only for its flag
// parse errors and --help handling, mirroring the teacher pack's own
// pflag dependency. The usage line itself is a hand-written fs.Usage.
package democli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// ConcurrentArgs holds the three positional arguments a concurrent demo
// (coarse, striped, refinable) takes.
type ConcurrentArgs struct {
	Threads         int
	InitialCapacity int
	ChunkSize       int
}

// ParseConcurrent parses "num_threads initial_capacity chunk_size" for a
// concurrent demo binary named progName.
func ParseConcurrent(progName string, args []string) (ConcurrentArgs, error) {
	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Printf("usage: %s num_threads initial_capacity chunk_size\n", progName)
	}
	if err := fs.Parse(args); err != nil {
		return ConcurrentArgs{}, err
	}

	positional := fs.Args()
	if len(positional) != 3 {
		fs.Usage()
		return ConcurrentArgs{}, fmt.Errorf("%s: expected 3 arguments, got %d", progName, len(positional))
	}

	var a ConcurrentArgs
	var err error
	if a.Threads, err = parsePositiveInt(positional[0], "num_threads"); err != nil {
		return ConcurrentArgs{}, err
	}
	if a.InitialCapacity, err = parsePositiveInt(positional[1], "initial_capacity"); err != nil {
		return ConcurrentArgs{}, err
	}
	if a.ChunkSize, err = parsePositiveInt(positional[2], "chunk_size"); err != nil {
		return ConcurrentArgs{}, err
	}
	return a, nil
}

// SequentialArgs holds the two positional arguments the sequential demo
// takes.
type SequentialArgs struct {
	InitialCapacity int
	Count           int
}

// ParseSequential parses "initial_capacity count" for the sequential demo
// binary.
func ParseSequential(progName string, args []string) (SequentialArgs, error) {
	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Printf("usage: %s initial_capacity count\n", progName)
	}
	if err := fs.Parse(args); err != nil {
		return SequentialArgs{}, err
	}

	positional := fs.Args()
	if len(positional) != 2 {
		fs.Usage()
		return SequentialArgs{}, fmt.Errorf("%s: expected 2 arguments, got %d", progName, len(positional))
	}

	var a SequentialArgs
	var err error
	if a.InitialCapacity, err = parsePositiveInt(positional[0], "initial_capacity"); err != nil {
		return SequentialArgs{}, err
	}
	if a.Count, err = parsePositiveInt(positional[1], "count"); err != nil {
		return SequentialArgs{}, err
	}
	return a, nil
}

func parsePositiveInt(s, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", name, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", name, n)
	}
	return n, nil
}
