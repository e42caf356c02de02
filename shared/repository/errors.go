package repository

import (
	"cinema/shared/constant"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Constraint violations surface wrapped in these sentinels so services can map them to failures
// without importing the driver.
var (
	ErrUniqueViolation     = errors.New("unique violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrExclusionViolation  = errors.New("exclusion violation")
)

func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		return fmt.Errorf("%w (%s): %w", ErrUniqueViolation, pqErr.Constraint, err)
	case constant.PqErrorCodeFkViolation:
		return fmt.Errorf("%w (%s): %w", ErrForeignKeyViolation, pqErr.Constraint, err)
	case constant.PqErrorCodeExclusionViolation:
		return fmt.Errorf("%w (%s): %w", ErrExclusionViolation, pqErr.Constraint, err)
	default:
		return err
	}
}
