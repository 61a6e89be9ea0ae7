package entity

import "errors"

var (
	// ErrNotFound is returned by repositories when an id does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrScheduleConflict is raised by the appointments store when the
	// exclusion constraint rejects an overlapping scheduled interval.
	ErrScheduleConflict = errors.New("appointment overlaps an existing scheduled appointment")

	ErrDuplicateKey = errors.New("record already exists")
)
