package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Sentinel errors for the two constraint classes the UI distinguishes.
// Everything else surfaces as a generic storage error.
var (
	ErrForeignKey    = errors.New("foreign key constraint violated")
	ErrAlreadyExists = errors.New("identifier already exists")
)

// ClassifyErr wraps driver constraint errors with the matching sentinel so
// callers can errors.Is them without depending on the driver package.
func ClassifyErr(err error) error {
	if err == nil {
		return nil
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %v", ErrForeignKey, err)
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
	}
	return err
}
