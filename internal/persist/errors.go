package persist

import (
	"errors"
	"fmt"
)

// ErrRemoteUnavailable routes an operation to the local cache only: the mirror
// is not configured or the identity is the guest. It is never returned by a
// public Facade method.
var ErrRemoteUnavailable = errors.New("remote mirror unavailable")

// RemoteError reports a failed mirror write. The local write it followed has
// already been committed and is not rolled back.
type RemoteError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
