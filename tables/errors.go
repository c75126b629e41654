package tables

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument indicates a nil tree or a non-positive sequence length.
	ErrInvalidArgument = errors.New("tables: invalid argument")

	// ErrBadTables indicates tables that violate the layout rules.
	ErrBadTables = errors.New("tables: malformed tables")
)
