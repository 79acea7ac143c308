package keypad

import "sync"

// Parallel calls f on every element of in concurrently and returns the
// results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}
