package intmat

import "errors"

// Sentinel errors returned by the matrix engine. Callers match them with
// errors.Is; wrapping adds context at the call site but never replaces the
// sentinel.
var (
	// ErrShape reports an invalid shape or parameter: negative dimensions,
	// mismatched product dimensions, inverted ranges, non-positive moduli.
	ErrShape = errors.New("intmat: invalid shape or parameter")

	// ErrIndex reports a row, column or range index outside the matrix.
	ErrIndex = errors.New("intmat: index out of range")

	// ErrDomain reports a value not representable in the fixed-width backend.
	ErrDomain = errors.New("intmat: value outside fixed-width range")

	// ErrMixedBackend reports arithmetic between rows or matrices whose
	// backends differ.
	ErrMixedBackend = errors.New("intmat: mixed integer backends")

	// ErrUnsupported reports an operation the engine deliberately does not
	// provide, such as reconstructing from an unknown backend tag.
	ErrUnsupported = errors.New("intmat: unsupported operation")

	// ErrShortSource reports a bulk-import source with fewer values than the
	// matrix has cells.
	ErrShortSource = errors.New("intmat: import source exhausted")

	// ErrJaggedRows reports a parsed file whose later rows disagree with the
	// first row's column count. The engine rejects such files rather than
	// padding or truncating.
	ErrJaggedRows = errors.New("intmat: rows have differing column counts")
)
