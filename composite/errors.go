package composite

import "fmt"

// InvalidInputError reports a request field that failed validation: a
// volume fraction outside (0, 1] or an unrecognized enumerated variant.
// It is recoverable at the call site; no partial result accompanies it.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a fiber/matrix pair absent from the material
// database. The table is immutable, so retrying cannot help; it indicates
// the enumerated domains were extended without updating the table.
type NotFoundError struct {
	Fiber  FiberType
	Matrix MatrixType
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no material record for fiber %q with matrix %q", e.Fiber, e.Matrix)
}
