package repository

import "errors"

// ErrNotFound is returned (wrapped) when a row does not exist or is not owned
// by the requesting user.
var ErrNotFound = errors.New("not found")
