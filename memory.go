package pasteboard

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"

	"github.com/glasspane/pasteboard/internal/storage"
)

type boardIndex = storage.SyncMap[Name, *memoryBoard]
type refIndex = storage.SyncMap[Ref, *memoryBoard]

var _ Service = (*MemoryService)(nil)

// MemoryService is an in-process pasteboard server honoring the same
// contract as the native one: named boards, typed string values, an ordered
// object list and a change count per board. It backs the process default on
// platforms without a native server and doubles as the test fixture;
// FailReads simulates the server's null-read fault.
//
// The zero value is not usable. Construct with NewMemoryService.
type MemoryService struct {
	log zerolog.Logger

	boards *boardIndex
	refs   *refIndex

	nextRef   atomic.Uint64
	failReads atomic.Bool

	names nameGenerator
}

type memoryBoard struct {
	ref  Ref
	name Name

	mu      sync.RWMutex
	strings map[string]string
	urls    []string

	change  atomic.Int64
	handles atomic.Int64
	reclaim atomic.Bool
}

// NewMemoryService creates an empty in-process pasteboard server.
func NewMemoryService(logger zerolog.Logger) *MemoryService {
	return &MemoryService{
		log:    logger,
		boards: storage.NewSyncMapStorage[Name, *memoryBoard](),
		refs:   storage.NewSyncMapStorage[Ref, *memoryBoard](),
	}
}

func (m *MemoryService) General() Ref {
	return m.bind(NameGeneral)
}

func (m *MemoryService) Named(name Name) Ref {
	return m.bind(name)
}

func (m *MemoryService) Unique() Ref {
	for {
		name := Name("unique." + m.names.next())
		if m.boards.Exist(name) {
			continue
		}
		return m.bind(name)
	}
}

func (m *MemoryService) bind(name Name) Ref {
	b := &memoryBoard{
		name:    name,
		strings: make(map[string]string),
	}
	b.ref = Ref(m.nextRef.Add(1))

	actual, loaded := m.boards.Add(name, b)
	m.refs.Add(actual.ref, actual)
	if !loaded {
		m.log.Debug().Str("board", string(name)).Msg("board created")
	}
	actual.handles.Add(1)
	return actual.ref
}

func (m *MemoryService) Release(ref Ref) {
	b, ok := m.refs.Get(ref)
	if !ok {
		return
	}
	if b.handles.Add(-1) <= 0 && b.reclaim.Load() {
		m.boards.Delete(b.name)
		m.refs.Delete(b.ref)
		m.log.Debug().Str("board", string(b.name)).Msg("board reclaimed")
	}
}

func (m *MemoryService) SetString(ref Ref, value, uti string) {
	b, ok := m.refs.Get(ref)
	if !ok {
		return
	}
	b.mu.Lock()
	b.strings[uti] = value
	b.mu.Unlock()
	b.change.Add(1)
}

func (m *MemoryService) WriteURLs(ref Ref, urls []string) {
	b, ok := m.refs.Get(ref)
	if !ok {
		return
	}
	b.mu.Lock()
	b.strings = make(map[string]string)
	b.urls = append(b.urls[:0:0], urls...)
	b.mu.Unlock()
	b.change.Add(1)
}

func (m *MemoryService) ClearContents(ref Ref) {
	b, ok := m.refs.Get(ref)
	if !ok {
		return
	}
	b.mu.Lock()
	b.strings = make(map[string]string)
	b.urls = nil
	b.mu.Unlock()
	b.change.Add(1)
}

func (m *MemoryService) ReleaseGlobally(ref Ref) {
	b, ok := m.refs.Get(ref)
	if !ok {
		return
	}
	b.reclaim.Store(true)
}

func (m *MemoryService) GetString(ref Ref, uti string) (string, bool) {
	b, ok := m.refs.Get(ref)
	if !ok {
		return "", false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.strings[uti]
	return v, ok
}

func (m *MemoryService) ReadFileURLs(ref Ref) ([]string, bool) {
	if m.failReads.Load() {
		return nil, false
	}
	b, ok := m.refs.Get(ref)
	if !ok {
		return []string{}, true
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.urls))
	copy(out, b.urls)
	return out, true
}

func (m *MemoryService) Types(ref Ref) []string {
	b, ok := m.refs.Get(ref)
	if !ok {
		return nil
	}
	b.mu.RLock()
	out := make([]string, 0, len(b.strings)+1)
	for uti := range b.strings {
		out = append(out, uti)
	}
	if len(b.urls) > 0 {
		out = append(out, TypeFileURL.UTI())
	}
	b.mu.RUnlock()

	sort.Strings(out)
	return out
}

func (m *MemoryService) ChangeCount(ref Ref) int64 {
	b, ok := m.refs.Get(ref)
	if !ok {
		return 0
	}
	return b.change.Load()
}

// FailReads toggles the null-read fault: while enabled, every ReadFileURLs
// answers with the server's null sentinel instead of content. Writes and
// string reads are unaffected.
func (m *MemoryService) FailReads(fail bool) {
	m.failReads.Store(fail)
}

// Boards returns the number of live boards.
func (m *MemoryService) Boards() int {
	return m.boards.Len()
}

// Names returns the names of all live boards, sorted.
func (m *MemoryService) Names() []Name {
	out := make([]Name, 0, m.boards.Len())
	m.boards.Tap(func(name Name, _ *memoryBoard) bool {
		out = append(out, name)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type nameGenerator struct {
	node *snowflake.Node
	once sync.Once
}

func (g *nameGenerator) next() string {
	g.once.Do(func() {
		node, err := snowflake.NewNode(1)
		if err != nil {
			panic(fmt.Sprintf("failed to initialize snowflake node: %s", err))
		}
		g.node = node
	})
	return g.node.Generate().Base36()
}
