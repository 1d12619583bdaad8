package pdb

import (
	"runtime"
	"sync"
)

// ParseJob is one in-memory coordinate file queued for parsing.
type ParseJob struct {
	Seq  int
	Name string
	Data []byte
}

// ParseResult pairs a job with its parsed structure.
type ParseResult struct {
	Seq       int
	Name      string
	Structure *Structure
}

// ParseAll parses jobs using a pool of workers. Results arrive on the
// returned channel in completion order; use OrderedCollect to consume them
// in sequence order. If workers is 0, runtime.NumCPU() is used.
func (p *Parser) ParseAll(jobs <-chan ParseJob, workers int) <-chan ParseResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan ParseResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- ParseResult{
					Seq:       job.Seq,
					Name:      job.Name,
					Structure: p.Parse(job.Data),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order,
// buffering out-of-order arrivals until the next expected sequence number
// is available. Blocks until the results channel is closed.
func OrderedCollect(results <-chan ParseResult, fn func(ParseResult) error) error {
	pending := make(map[int]ParseResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
