package repository

import "errors"

// ErrNotFound is returned when no day exists for the requested date.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned by Create when the date already has a menu.
var ErrAlreadyExists = errors.New("already exists")
