package httperr

import (
	"errors"
	"fmt"
)

// ErrOperationFailed is the opaque signal for store failures that survived
// the retry policy. Callers should offer a retry.
var ErrOperationFailed = errors.New("operation_failed")

type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrOperationFailed, e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func (e *OperationError) Is(target error) bool {
	return target == ErrOperationFailed
}

// Operation wraps a store failure unless it already is a business error.
func Operation(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsBusiness(err); ok {
		return err
	}
	var oe *OperationError
	if errors.As(err, &oe) {
		return err
	}
	return &OperationError{Op: op, Err: err}
}

func IsRetryable(err error) bool {
	return errors.Is(err, ErrOperationFailed)
}
