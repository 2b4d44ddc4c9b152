package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrStoreUnavailable wraps any failure of the underlying key-value
// store. Callers match it with errors.Is; the original error text is
// preserved in the message.
var ErrStoreUnavailable = errors.New("store unavailable")

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
