package domain

import (
	"errors"
	"fmt"
)

// BadRequestError marks a caller input problem, as opposed to an internal
// generation fault. The HTTP layer maps it to a 400-class response.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string {
	return e.Reason
}

func BadRequestf(format string, args ...any) error {
	return &BadRequestError{Reason: fmt.Sprintf(format, args...)}
}

func IsBadRequest(err error) bool {
	var bre *BadRequestError
	return errors.As(err, &bre)
}
