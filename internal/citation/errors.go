package citation

import "errors"

// Errors returned while formatting citations.
var (
	// ErrNameFormat indicates an author string that cannot be split into
	// given-name and family-name tokens.
	ErrNameFormat = errors.New("invalid author format")

	// ErrUnsupportedEncoding indicates an encoding outside "raw" and "html"
	// handed to the NLM, Chicago or IEEE assemblers.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrUnsupportedFormat indicates an unrecognized citation style.
	ErrUnsupportedFormat = errors.New("unsupported citation format")
)
