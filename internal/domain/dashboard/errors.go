package dashboard

import "errors"

var (
	// ErrMatrixNotFound means the requested assessment matrix does not exist.
	ErrMatrixNotFound = errors.New("assessment matrix not found")

	// ErrTenantMismatch means the matrix exists but belongs to another
	// tenant. Callers must not reveal anything beyond the denial itself.
	ErrTenantMismatch = errors.New("tenant mismatch")
)
