package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrEntryNotFound is returned when a lookup targets a configuration
	// key that is not part of the materialized table.
	ErrEntryNotFound = errors.New("configuration entry was not found")

	// ErrBuildingSQLQuery is returned when squirrel fails to render a
	// statement.
	ErrBuildingSQLQuery = errors.New("error building SQL query")

	// ErrExecutingQuery is returned when a statement fails against the
	// database.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrBeginningTransaction is returned when a load transaction cannot
	// be opened.
	ErrBeginningTransaction = errors.New("error beginning transaction")

	// ErrCommittingTransaction is returned when a load transaction cannot
	// be committed.
	ErrCommittingTransaction = errors.New("error committing transaction")

	// ErrScanningRow is returned when a single-row result cannot be
	// decoded.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when a multi-row result cannot be
	// decoded.
	ErrScanningRows = errors.New("error scanning rows")
)
