package lar

import "github.com/joshuapare/larkit/internal/format"

// Errors returned by archive operations. Match them with errors.Is.
var (
	ErrAlreadyExists    = format.ErrAlreadyExists
	ErrIO               = format.ErrIO
	ErrSizeMismatch     = format.ErrSizeMismatch
	ErrCapacity         = format.ErrCapacity
	ErrArchiveFull      = format.ErrArchiveFull
	ErrMemory           = format.ErrMemory
	ErrInvalidName      = format.ErrInvalidName
	ErrInvalidBootblock = format.ErrInvalidBootblock
	ErrInvalidHandle    = format.ErrInvalidHandle
	ErrCorrupt          = format.ErrCorrupt
)
