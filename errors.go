package pasteboard

import (
	"errors"
	"fmt"
)

// ErrorDomain is the domain carried by every ServerError this package
// produces.
const ErrorDomain = "com.glasspane.pasteboard"

var (
	// ErrNoData is returned by FileURLs and FilePaths when the pasteboard
	// server answers with its null sentinel instead of an object list. An
	// empty board is not an error; this is a retrieval fault.
	ErrNoData error = &ServerError{
		Code:        666,
		Domain:      ErrorDomain,
		Description: "pasteboard server returned no data",
	}

	// ErrUnsupported is returned by NewAppKitService on platforms without
	// a native pasteboard server.
	ErrUnsupported = errors.New("pasteboard: no native pasteboard server on this platform")
)

// ServerError is a pasteboard server fault: a fixed diagnostic code, the
// domain it belongs to and a human-readable description.
type ServerError struct {
	Code        int
	Domain      string
	Description string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %s (code %d)", e.Domain, e.Description, e.Code)
}
