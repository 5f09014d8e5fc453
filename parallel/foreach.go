// Package parallel contains the bounded worker loop used for training and batch inference.
package parallel

import "sync"

import "go.uber.org/multierr"

// ForEach calls body for every integer from 0 to length-1 with at most limit
// goroutines running at the same time. With a limit of 1 or less the calls run in
// order on the calling goroutine. All calls run even when some fail; the returned
// error combines the failures in index order.
func ForEach(length, limit int, body func(i int) error) error {
	if length <= 0 {
		return nil // No iterations to perform
	}
	var errs = make([]error, length)
	if limit <= 1 {
		for i := 0; i < length; i++ {
			errs[i] = body(i)
		}
		return multierr.Combine(errs...)
	}

	sem := make(chan struct{}, limit) // Semaphore with buffer size 'limit'
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{} // Acquire semaphore
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore after function exits

			errs[i] = body(i)
		}(i)
	}

	wg.Wait()
	return multierr.Combine(errs...)
}
