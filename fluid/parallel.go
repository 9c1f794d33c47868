package fluid

import (
	"sync"
)

// parallelRange executes fn for each j in [start, end). The range is split
// into contiguous bands among at most workers goroutines. Only stages whose
// iterations are independent of each other may use it.
func parallelRange(workers, start, end int, fn func(j int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		for j := start; j < end; j++ {
			fn(j)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		s := start + w*chunk
		e := s + chunk
		if e > end {
			e = end
		}
		if s >= end {
			break
		}
		wg.Add(1)
		go func(ss, ee int) {
			for j := ss; j < ee; j++ {
				fn(j)
			}
			wg.Done()
		}(s, e)
	}
	wg.Wait()
}
