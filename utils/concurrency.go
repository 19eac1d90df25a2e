package utils

import "sync"

type concurrentResult struct {
	results []any
	errors  []error
}

func (c concurrentResult) HasErrors() bool {
	for _, err := range c.errors {
		if err != nil {
			return true
		}
	}
	return false
}

func (c concurrentResult) Errors() []error {
	errs := make([]error, 0, len(c.errors))
	for _, err := range c.errors {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// GetValue returns the result of the function at index i. The order of the
// results matches the order of the provided functions.
func (c concurrentResult) GetValue(i int) any {
	return c.results[i]
}

// Concurrently runs all provided functions in parallel and waits for all of
// them to finish.
func Concurrently(fns ...func() (any, error)) concurrentResult {
	res := concurrentResult{
		results: make([]any, len(fns)),
		errors:  make([]error, len(fns)),
	}

	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn func() (any, error)) {
			defer wg.Done()
			res.results[i], res.errors[i] = fn()
		}(i, fn)
	}
	wg.Wait()

	return res
}
