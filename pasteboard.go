// Package pasteboard gives typed, shared-handle access to the system
// pasteboard server, the store behind copy, paste and drag-and-drop
// exchange between applications. A handle binds to the general board, a
// named board or a freshly allocated unique board; typed reads and writes
// then resolve logical content kinds to the server's canonical identifiers
// and encode payloads the way the server expects.
//
// Handles are cheap, safe to share across goroutines and reference
// counted: Clone shares a binding, Release drops it. Contents live on the
// server and outlive every handle unless cleared.
//
// Writes are fire-and-forget. The server acknowledges writes without a
// usable failure signal, so none of the write operations return one. Reads
// are different: the object-read path distinguishes a legitimately empty
// board (empty result, nil error) from the server's null answer (ErrNoData),
// because callers must handle staleness and faults differently.
//
// On platforms without a native pasteboard server the package falls back to
// an in-process MemoryService, so the same code runs everywhere, headless
// CI included. Tests use the same service for determinism.
package pasteboard

import (
	"net/url"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Pasteboard is a shared handle to one server-side pasteboard store. The
// handle itself is immutable; only server-side contents change. A handle
// never owns those contents. Releasing every handle leaves the board and
// its data intact on the server.
type Pasteboard struct {
	svc   Service
	ref   Ref
	owned bool

	refs *atomic.Int64

	log      zerolog.Logger
	interval time.Duration
}

func newHandle(cfg config, ref Ref, owned bool) *Pasteboard {
	refs := new(atomic.Int64)
	refs.Store(1)
	return &Pasteboard{
		svc:      cfg.svc,
		ref:      ref,
		owned:    owned,
		refs:     refs,
		log:      cfg.log,
		interval: cfg.interval,
	}
}

// Default binds the system's general pasteboard. It never fails; the
// server guarantees the general board exists.
func Default(opts ...Option) *Pasteboard {
	cfg := newConfig(opts)
	return newHandle(cfg, cfg.svc.General(), true)
}

// Named binds the pasteboard called name, creating it server-side on first
// use. Distinct names are fully isolated stores.
func Named(name Name, opts ...Option) *Pasteboard {
	cfg := newConfig(opts)
	return newHandle(cfg, cfg.svc.Named(name), true)
}

// Unique binds a freshly allocated pasteboard whose name is guaranteed
// unique among live pasteboards. The name is the server's business; callers
// address the board through the handle alone.
func Unique(opts ...Option) *Pasteboard {
	cfg := newConfig(opts)
	return newHandle(cfg, cfg.svc.Unique(), true)
}

// With wraps a pasteboard reference handed over by another subsystem, a
// drag-and-drop callback typically. The reference's origin is not
// validated, and the handle never owns the server-side binding; releasing
// it is the originator's job.
func With(ref Ref, opts ...Option) *Pasteboard {
	cfg := newConfig(opts)
	return newHandle(cfg, ref, false)
}

// Clone returns a handle sharing this binding. Each clone must be released
// independently.
func (p *Pasteboard) Clone() *Pasteboard {
	p.refs.Add(1)
	q := *p
	return &q
}

// Release drops this handle's share of the binding. When the last share is
// gone the service binding is released too, a no-op on server-managed
// backends. Board contents are unaffected.
func (p *Pasteboard) Release() {
	if p.refs.Add(-1) == 0 && p.owned {
		p.svc.Release(p.ref)
	}
}

// Ref exposes the underlying service reference, for subsystems that need
// to hand the binding onward. Pair it with With on the receiving side.
func (p *Pasteboard) Ref() Ref {
	return p.ref
}

// CopyText puts text on the board as the plain-string kind, replacing the
// board's current value for that kind.
func (p *Pasteboard) CopyText(text string) {
	p.Copy(text, TypeString)
}

// Copy puts value on the board under an explicit content kind, replacing
// the board's current value for that kind. The server reports no usable
// failure for writes, so neither does this layer.
func (p *Pasteboard) Copy(value string, kind Type) {
	p.svc.SetString(p.ref, value, kind.UTI())
	p.log.Trace().Stringer("kind", kind).Int("len", len(value)).Msg("copy")
}

// CopyFiles puts paths on the board as an ordered list of file URLs,
// replacing prior content. An empty paths writes an empty list; that is a
// valid board state, not an error.
func (p *Pasteboard) CopyFiles(paths []string) {
	urls := make([]string, 0, len(paths))
	for _, path := range paths {
		urls = append(urls, fileURL(path))
	}
	p.svc.WriteURLs(p.ref, urls)
	p.log.Trace().Int("files", len(urls)).Msg("copy files")
}

// ClearContents empties every kind held by the board and advances its
// change count, so concurrent readers observe the staleness.
func (p *Pasteboard) ClearContents() {
	p.svc.ClearContents(p.ref)
	p.log.Trace().Msg("clear contents")
}

// ReleaseGlobally hints that the server may drop any global retention of
// this board's resources. Unlike ClearContents it does not change what
// readers currently see.
func (p *Pasteboard) ReleaseGlobally() {
	p.svc.ReleaseGlobally(p.ref)
	p.log.Trace().Msg("release globally")
}

// FileURLs returns the file URLs currently on the board, in server order.
// An empty board yields an empty slice and a nil error. The error is
// reserved for the server's null answer, reported as ErrNoData, which
// signals a retrieval fault rather than emptiness.
func (p *Pasteboard) FileURLs() ([]*url.URL, error) {
	raw, ok := p.svc.ReadFileURLs(p.ref)
	if !ok {
		return nil, ErrNoData
	}
	return decodeFileURLs(raw), nil
}

// FilePaths is FileURLs reduced to filesystem paths, percent-decoded.
func (p *Pasteboard) FilePaths() ([]string, error) {
	urls, err := p.FileURLs()
	if err != nil {
		return nil, err
	}
	return filePaths(urls), nil
}

// ReadString returns the board's current value for kind. Absence is not an
// error; the string getter tells "no value of that kind" apart from
// content.
func (p *Pasteboard) ReadString(kind Type) (string, bool) {
	return p.svc.GetString(p.ref, kind.UTI())
}

// Text is shorthand for ReadString of the plain-string kind.
func (p *Pasteboard) Text() (string, bool) {
	return p.ReadString(TypeString)
}

// Types reports the content kinds currently on the board, classified
// through the type registry. Identifiers outside the registry are dropped.
func (p *Pasteboard) Types() []Type {
	raw := p.svc.Types(p.ref)
	out := make([]Type, 0, len(raw))
	for _, uti := range raw {
		if t, ok := TypeFromUTI(uti); ok {
			out = append(out, t)
		}
	}
	return out
}

// ChangeCount returns the server's change counter for this board. It
// advances whenever board contents change, whoever changed them.
func (p *Pasteboard) ChangeCount() int64 {
	return p.svc.ChangeCount(p.ref)
}
