package services

import "errors"

// Shared outcome sentinels. ErrNotFound is returned both when a record is
// absent and when it exists outside the caller's visible scope, so object
// existence never leaks through the status code.
var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("forbidden")
)
