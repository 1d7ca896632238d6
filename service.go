package pasteboard

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Ref is an opaque reference to a server-side pasteboard object. A Ref is
// only meaningful to the Service that produced it.
type Ref uintptr

// Service is the narrow surface of the pasteboard server this layer calls
// into. The darwin implementation messages the OS server directly;
// MemoryService implements the same contract in-process for tests and for
// platforms without a native server.
//
// Reads return snapshots; mutating a returned slice never affects server
// state. ReadFileURLs reports ok == false only for the server's null
// sentinel. A board without URLs is (empty, true).
type Service interface {
	// General binds the system's general pasteboard.
	General() Ref
	// Named binds the pasteboard called name, creating it on first use.
	Named(name Name) Ref
	// Unique binds a fresh pasteboard whose name is guaranteed unique
	// among live pasteboards.
	Unique() Ref
	// Release drops a binding once the last handle sharing it is gone.
	// Server-managed backends treat it as a no-op.
	Release(ref Ref)

	// SetString stores value on the board under the given type identifier,
	// replacing the board's current value for that identifier.
	SetString(ref Ref, value, uti string)
	// WriteURLs replaces the board's object list with the given URLs,
	// preserving order.
	WriteURLs(ref Ref, urls []string)
	// ClearContents empties the board and advances its change count.
	ClearContents(ref Ref)
	// ReleaseGlobally lets the server drop global retention of the board's
	// resources. Current contents stay readable.
	ReleaseGlobally(ref Ref)

	// GetString returns the board's value for the given type identifier.
	GetString(ref Ref, uti string) (string, bool)
	// ReadFileURLs returns the board's object list as URL strings in
	// server order, or ok == false for the server's null sentinel.
	ReadFileURLs(ref Ref) (urls []string, ok bool)
	// Types lists the type identifiers currently present on the board.
	Types(ref Ref) []string
	// ChangeCount returns the board's change counter. It advances on every
	// content change, whoever made it.
	ChangeCount(ref Ref) int64
}

const defaultPollInterval = 500 * time.Millisecond

type config struct {
	svc      Service
	log      zerolog.Logger
	interval time.Duration
}

// Option configures handles returned by Default, Named, Unique and With.
type Option func(*config)

// WithService binds the handle to svc instead of the process default.
func WithService(svc Service) Option {
	return func(c *config) {
		c.svc = svc
	}
}

// WithLogger attaches a logger for trace-level operation logging. The
// default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithPollInterval sets the change-count polling interval used by Watch.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		log:      zerolog.Nop(),
		interval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.svc == nil {
		cfg.svc = DefaultService()
	}
	return cfg
}

var defaultService struct {
	once sync.Once
	svc  Service
}

// DefaultService returns the process-wide Service: the native pasteboard
// server where one exists, otherwise an in-process MemoryService. The
// choice is made once, on first use.
func DefaultService() Service {
	defaultService.once.Do(func() {
		defaultService.svc = newPlatformService()
	})
	return defaultService.svc
}
