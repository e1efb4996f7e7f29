package upstream

import (
	"errors"
	"fmt"
)

// RejectionError is a non-2xx response from the activity service with
// its structured detail message. Detail is surfaced to the user
// verbatim; an empty Detail means the server sent no usable message.
type RejectionError struct {
	Status int
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("service rejected request (status %d)", e.Status)
	}
	return fmt.Sprintf("service rejected request (status %d): %s", e.Status, e.Detail)
}

// AsRejection unwraps err into a RejectionError, if it is one.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
