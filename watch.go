package pasteboard

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"

	"github.com/glasspane/pasteboard/internal/ctxlog"
)

// Change describes one observed pasteboard transition.
type Change struct {
	// Count is the server change count at observation time.
	Count int64
	// Types are the content kinds present after the change.
	Types []Type
	// Hash digests the observable content; identical content hashes
	// identically across transitions.
	Hash uint64
}

func (c Change) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("count", c.Count)
	e.Uint64("hash", c.Hash)
	e.Int("types", len(c.Types))
}

type deduplicator struct {
	lastHash atomic.Uint64
}

func (d *deduplicator) check(h uint64) bool {
	if h == d.lastHash.Load() {
		return false
	}
	d.lastHash.Store(h)
	return true
}

func (d *deduplicator) mark(h uint64) {
	d.lastHash.Store(h)
}

// Watch polls the board's change count and sends a Change for every content
// transition until ctx is done. The server advances its count even for
// rewrites of identical content; those are suppressed, so consecutive
// identical contents emit once. Content present before Watch starts is not
// emitted.
//
// Watch closes updates before returning and returns ctx.Err().
func (p *Pasteboard) Watch(ctx context.Context, updates chan<- Change) error {
	defer close(updates)

	logger := ctxlog.Op(p.log, "pasteboard.watch")

	var dedup deduplicator
	dedup.mark(p.digest())
	last := p.svc.ChangeCount(p.ref)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logger.Debug().Dur("interval", p.interval).Msg("watching")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cc := p.svc.ChangeCount(p.ref)
			if cc == last {
				continue
			}
			last = cc

			h := p.digest()
			if !dedup.check(h) {
				continue
			}

			change := Change{Count: cc, Types: p.Types(), Hash: h}
			select {
			case updates <- change:
				logger.Trace().Object("change", change).Msg("pasteboard changed")
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// digest hashes the observable board content: the identifiers present, the
// plain-string payload and the URL list.
func (p *Pasteboard) digest() uint64 {
	d := xxhash.New()
	sep := []byte{0}
	for _, uti := range p.svc.Types(p.ref) {
		_, _ = d.Write([]byte(uti))
		_, _ = d.Write(sep)
	}
	if s, ok := p.svc.GetString(p.ref, TypeString.UTI()); ok {
		_, _ = d.Write([]byte(s))
	}
	_, _ = d.Write(sep)
	if urls, ok := p.svc.ReadFileURLs(p.ref); ok {
		for _, u := range urls {
			_, _ = d.Write([]byte(u))
			_, _ = d.Write(sep)
		}
	}
	return d.Sum64()
}
