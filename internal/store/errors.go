package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when the user directory has no record for
	// the requested external id and tenant.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDocenteNotFound is returned when no docente matches the requested id.
	ErrDocenteNotFound = errors.New("docente was not found")

	// ErrSyllabusNotFound is returned when no syllabus matches the requested id,
	// including inserts that reference a missing syllabus.
	ErrSyllabusNotFound = errors.New("syllabus was not found")

	// ErrAporteAlreadyExists is returned when a syllabus already declares a
	// contribution to the same program outcome.
	ErrAporteAlreadyExists = errors.New("aporte already exists")

	// ErrDatabaseUnavailable wraps driver errors classified as [Retryable]:
	// lost connections, deadlocks and serialization failures.
	ErrDatabaseUnavailable = errors.New("database is temporarily unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
