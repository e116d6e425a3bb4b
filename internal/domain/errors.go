package domain

import "fmt" // Error messages

// FetchError reports a failed download of the seed dataset.
type FetchError struct {
	URL    string // Seed dataset location
	Status int    // HTTP status, zero when the request never completed
	Err    error  // Underlying transport or decode error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// StoreError reports a failed database operation.
type StoreError struct {
	Op  string // Operation name, e.g. "find"
	Err error  // Driver error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
