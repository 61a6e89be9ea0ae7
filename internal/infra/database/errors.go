package database

import (
	"errors"

	"github.com/lib/pq"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

// SQLSTATEs this layer cares about.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// mapPgError translates constraint violations into domain sentinels. The
// exclusion constraint on scheduled appointment intervals is the source of
// truth for the no-overlap invariant, so 23P01 becomes a schedule conflict.
func mapPgError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return entity.ErrDuplicateKey
		case pgExclusionViolation:
			return entity.ErrScheduleConflict
		}
	}
	return err
}

// nullString stores empty strings as NULL.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
