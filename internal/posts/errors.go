package posts

import (
	"errors"
	"fmt"
)

// ErrFetchFailed matches every failure to retrieve or parse the collection.
var ErrFetchFailed = errors.New("fetch failed")

// FetchError reports a failed fetch. Status is the HTTP status code when a
// response was received, zero otherwise.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch posts: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("fetch posts: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports FetchError as ErrFetchFailed.
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }
