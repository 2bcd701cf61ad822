// Package perft splits move-tree node counts across a worker pool.
package perft

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Result is the node count below one root move.
type Result struct {
	Move  chess.Move
	Nodes uint64
}

// Option configures Divide.
type Option func(*options)

type options struct {
	workers int
	cache   *hashing.NodeCache
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithCache shares subtree counts between workers through cache.
func WithCache(cache *hashing.NodeCache) Option {
	return func(o *options) {
		o.cache = cache
	}
}

// Divide counts the leaf nodes at depth below each legal root move. Results
// are sorted by the move's UCI text.
func Divide(ctx context.Context, board *chess.Board, depth int, opts ...Option) ([]Result, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft depth %d: must be at least 1", depth)
	}
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	moves := engine.GenerateMoves(board)
	pool := worker.NewPoolWithOptions(subtreeCounter(o.cache),
		worker.WithWorkers(o.workers),
		worker.WithBufferSize(len(moves)+1))
	pool.Start(ctx)

	go func() {
		for i, m := range moves {
			if !pool.Submit(worker.WorkItem{Board: *board, Move: m, Depth: depth, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(moves))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil && firstErr == nil {
			firstErr = r.Error
		}
		results = append(results, Result{Move: r.Move, Nodes: r.Nodes})
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Move.String() < results[j].Move.String()
	})
	return results, nil
}

// subtreeCounter returns the pool's process function.
func subtreeCounter(cache *hashing.NodeCache) worker.ProcessFunc {
	return func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index, Move: item.Move}
		if err := ctx.Err(); err != nil {
			result.Error = err
			return result
		}
		if cache == nil {
			result.Nodes = engine.PerftAfter(&item.Board, item.Move, item.Depth)
			return result
		}
		scratch := item.Board
		engine.ApplyMove(&scratch, item.Move)
		engine.AdvanceTurn(&scratch)
		result.Nodes = CachedPerft(&scratch, item.Depth-1, cache)
		return result
	}
}

// CachedPerft is engine.Perft with subtree counts looked up in and stored to
// cache.
func CachedPerft(board *chess.Board, depth int, cache *hashing.NodeCache) uint64 {
	if depth <= 1 {
		return engine.Perft(board, depth)
	}
	hash := hashing.GenerateZobristHash(board)
	if nodes, ok := cache.Get(hash, depth); ok {
		return nodes
	}
	var nodes uint64
	for _, move := range engine.GenerateMoves(board) {
		scratch := *board
		engine.ApplyMove(&scratch, move)
		engine.AdvanceTurn(&scratch)
		nodes += CachedPerft(&scratch, depth-1, cache)
	}
	cache.Put(hash, depth, nodes)
	return nodes
}

// Total sums the node counts of a divide.
func Total(results []Result) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
