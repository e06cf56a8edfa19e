package registry

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is the sentinel matched by every lookup miss.
var ErrNotRegistered = errors.New("item is not registered")

// NotRegisteredError reports a lookup for a key with no registered entry.
type NotRegisteredError struct {
	Key any
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("item with key '%v' is not registered", e.Key)
}

func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// IsNotRegistered checks if an error is a lookup miss.
func IsNotRegistered(err error) bool {
	return errors.Is(err, ErrNotRegistered)
}
