//go:build !darwin

package pasteboard

import "github.com/rs/zerolog/log"

// The native pasteboard server exists only on darwin. Everywhere else the
// process default is an in-process server, so callers keep working in
// headless environments and cross-platform builds.
func newPlatformService() Service {
	return NewMemoryService(log.Logger)
}

// NewAppKitService constructs the native pasteboard service. On platforms
// without one it reports ErrUnsupported.
func NewAppKitService() (Service, error) {
	return nil, ErrUnsupported
}
