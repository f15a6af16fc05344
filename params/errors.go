package params

import "errors"

// Sentinel errors for parameter-block operations. Callers match them with
// errors.Is; wrapping with fmt.Errorf("...: %w", Err) is allowed at the
// boundary where extra context helps.
var (
	// ErrParametersNotInitialized indicates an operation required a CIM that
	// has not been set or estimated yet.
	ErrParametersNotInitialized = errors.New("params: parameters not initialized")

	// ErrInvalidCIM indicates a CIM rejected by validation: wrong shape,
	// positive diagonal entry, or a row that does not sum to zero within
	// sqrt(machine epsilon).
	ErrInvalidCIM = errors.New("params: invalid CIM")
)
