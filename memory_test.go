package pasteboard_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/glasspane/pasteboard"
	"github.com/rs/zerolog"
)

func TestMemoryService_Unique_NamesNeverCollide(t *testing.T) {
	svc := pasteboard.NewMemoryService(zerolog.Nop())

	const n = 64
	refs := make([]pasteboard.Ref, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			refs[i] = svc.Unique()
		}(i)
	}
	wg.Wait()

	seen := make(map[pasteboard.Ref]bool, n)
	for _, ref := range refs {
		if seen[ref] {
			t.Fatalf("ref %v allocated twice", ref)
		}
		seen[ref] = true
	}

	if got := svc.Boards(); got != n {
		t.Errorf("expected %d live boards, got %d", n, got)
	}
	if names := svc.Names(); len(names) != n {
		t.Errorf("expected %d distinct names, got %d", n, len(names))
	}
}

func TestMemoryService_ConcurrentReadersAndWriters(t *testing.T) {
	svc := pasteboard.NewMemoryService(zerolog.Nop())
	board := pasteboard.Named("contended", pasteboard.WithService(svc))
	defer board.Release()

	const writers = 8
	const rounds = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				board.CopyText(fmt.Sprintf("writer %d round %d", w, i))
				board.Text()
				board.Types()
				board.ChangeCount()
			}
		}(w)
	}
	wg.Wait()

	if _, ok := board.Text(); !ok {
		t.Fatal("expected some final payload after concurrent writes")
	}
	if got := board.ChangeCount(); got != writers*rounds {
		t.Errorf("expected %d mutations counted, got %d", writers*rounds, got)
	}
}

func TestMemoryService_RefsAreStablePerName(t *testing.T) {
	svc := pasteboard.NewMemoryService(zerolog.Nop())

	const n = 16
	refs := make([]pasteboard.Ref, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			refs[i] = svc.Named("single")
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if refs[i] != refs[0] {
			t.Fatalf("binding the same name must yield one server object, got %v and %v", refs[0], refs[i])
		}
	}
	if got := svc.Boards(); got != 1 {
		t.Errorf("expected a single live board, got %d", got)
	}

	for i := 0; i < n; i++ {
		svc.Release(refs[0])
	}
}

func TestMemoryService_ReleaseWithoutReclaimKeepsBoard(t *testing.T) {
	svc := pasteboard.NewMemoryService(zerolog.Nop())

	ref := svc.Named("durable")
	svc.SetString(ref, "sticky", pasteboard.TypeString.UTI())
	svc.Release(ref)

	// Without a release-globally hint the store survives its handles.
	again := svc.Named("durable")
	if v, ok := svc.GetString(again, pasteboard.TypeString.UTI()); !ok || v != "sticky" {
		t.Errorf("expected contents to outlive the binding, got %q (present: %v)", v, ok)
	}
	svc.Release(again)
}

func TestMemoryService_UnknownRefIsInert(t *testing.T) {
	svc := pasteboard.NewMemoryService(zerolog.Nop())

	const bogus = pasteboard.Ref(0xDEAD)

	svc.SetString(bogus, "x", pasteboard.TypeString.UTI())
	svc.ClearContents(bogus)
	svc.Release(bogus)

	if _, ok := svc.GetString(bogus, pasteboard.TypeString.UTI()); ok {
		t.Error("unknown refs must read as absent")
	}
	if urls, ok := svc.ReadFileURLs(bogus); !ok || len(urls) != 0 {
		t.Errorf("unknown refs must read as empty success, got %v (ok: %v)", urls, ok)
	}
	if got := svc.Boards(); got != 0 {
		t.Errorf("operations on unknown refs must not create boards, got %d", got)
	}
}

func TestMemoryService_FailReadsLeavesWritesAlone(t *testing.T) {
	svc := pasteboard.NewMemoryService(zerolog.Nop())
	ref := svc.General()
	defer svc.Release(ref)

	svc.FailReads(true)

	svc.SetString(ref, "written during fault", pasteboard.TypeString.UTI())
	if v, ok := svc.GetString(ref, pasteboard.TypeString.UTI()); !ok || v != "written during fault" {
		t.Errorf("string reads must not be gated by the object-read fault, got %q (present: %v)", v, ok)
	}

	svc.WriteURLs(ref, []string{"file:///tmp/during-fault.txt"})
	if _, ok := svc.ReadFileURLs(ref); ok {
		t.Fatal("expected the null sentinel while the fault is on")
	}

	svc.FailReads(false)
	urls, ok := svc.ReadFileURLs(ref)
	if !ok || len(urls) != 1 {
		t.Errorf("expected the faulted-period write to be visible afterwards, got %v (ok: %v)", urls, ok)
	}
}
