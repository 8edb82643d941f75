package feed

import "fmt"

// FetchError reports a network or HTTP failure reaching a feed.
type FetchError struct {
	Feed       string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s feed: unexpected status %d from %s", e.Feed, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("fetch %s feed from %s: %v", e.Feed, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports a feed body that is not the expected JSON document.
type DecodeError struct {
	Feed string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s feed: %v", e.Feed, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
