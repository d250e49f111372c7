package catalog

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for catalog resolution. These are sentinel errors that
// can be compared with errors.Is().
var (
	// ErrUnknownStandardUnit indicates a catalog entry referring to a
	// standard unit the registry does not know.
	ErrUnknownStandardUnit = constError("unknown standard unit")

	// ErrMissingName indicates a catalog entry without a long or short
	// name.
	ErrMissingName = constError("catalog entry missing unit name")

	// ErrNonPositiveFactor indicates a conversion factor of zero or
	// below. Multiplicative unit conversions require positive factors.
	ErrNonPositiveFactor = constError("non-positive conversion factor")
)
