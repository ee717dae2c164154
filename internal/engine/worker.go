package engine

import (
	"runtime"
	"sync"
)

// Parallel expansion pays off only when there is enough frontier to split.
const minParallelNodes = 4

// workerCount resolves the configured thread count; 0 means GOMAXPROCS.
func (s *Solver) workerCount() int {
	if s.cfg.NumThreads > 0 {
		return s.cfg.NumThreads
	}
	return runtime.GOMAXPROCS(0)
}

// expandBeam expands every frontier node by one placement. With parallelism
// enabled the nodes are distributed over a fixed worker pool and joined at
// a barrier; child slices are reassembled in frontier order and per-worker
// stat partials are reduced afterward, so the result is identical to the
// serial expansion.
func (s *Solver) expandBeam(beam []searchNode) []searchNode {
	workers := s.workerCount()
	if !s.cfg.UseParallel || workers < 2 || len(beam) < minParallelNodes {
		var next []searchNode
		for i := range beam {
			next = append(next, s.expandNode(&beam[i], &s.stats)...)
		}
		return next
	}

	results := make([][]searchNode, len(beam))
	partials := make([]Stats, workers)
	tasks := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range tasks {
				results[i] = s.expandNode(&beam[i], &partials[w])
			}
		}(w)
	}
	for i := range beam {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	for _, p := range partials {
		s.stats.NodesEvaluated += p.NodesEvaluated
		s.stats.NodesGenerated += p.NodesGenerated
	}

	var next []searchNode
	for _, children := range results {
		next = append(next, children...)
	}
	return next
}

// forEachMove runs fn for every index, fanning out over the worker pool
// when parallelism is enabled. Each index is touched exactly once; fn must
// only write to its own slot.
func (s *Solver) forEachMove(n int, fn func(i int)) {
	workers := s.workerCount()
	if !s.cfg.UseParallel || workers < 2 || n < minParallelNodes {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	tasks := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		tasks <- i
	}
	close(tasks)
	wg.Wait()
}
