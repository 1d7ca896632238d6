//go:build darwin

package pasteboard

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
	"github.com/rs/zerolog/log"
)

var _ Service = appKitService{}

// appKitService messages the OS pasteboard server through dynamic
// Objective-C dispatch. Refs are the server's own pasteboard object
// pointers; their lifetime is server-managed, so Release is a no-op. Every
// operation pins its OS thread and runs inside a fresh autorelease pool.
type appKitService struct{}

var appKit struct {
	once sync.Once
	err  error

	clsPasteboard      objc.Class
	clsString          objc.Class
	clsURL             objc.Class
	clsMutableArray    objc.Class
	clsArray           objc.Class
	clsAutoreleasePool objc.Class

	selAlloc   objc.SEL
	selInit    objc.SEL
	selRelease objc.SEL

	selGeneralPasteboard     objc.SEL
	selPasteboardWithName    objc.SEL
	selPasteboardUniqueName  objc.SEL
	selSetStringForType      objc.SEL
	selStringForType         objc.SEL
	selWriteObjects          objc.SEL
	selReadObjectsForClasses objc.SEL
	selClearContents         objc.SEL
	selReleaseGlobally       objc.SEL
	selChangeCount           objc.SEL
	selTypes                 objc.SEL

	selStringWithUTF8String objc.SEL
	selUTF8String           objc.SEL
	selURLWithString        objc.SEL
	selAbsoluteString       objc.SEL
	selArrayWithObject      objc.SEL
	selArray                objc.SEL
	selAddObject            objc.SEL
	selCount                objc.SEL
	selObjectAtIndex        objc.SEL
}

func loadAppKit() error {
	appKit.once.Do(func() {
		if _, err := purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_GLOBAL|purego.RTLD_LAZY); err != nil {
			appKit.err = fmt.Errorf("pasteboard: failed to load AppKit: %w", err)
			return
		}

		appKit.clsPasteboard = objc.GetClass("NSPasteboard")
		appKit.clsString = objc.GetClass("NSString")
		appKit.clsURL = objc.GetClass("NSURL")
		appKit.clsMutableArray = objc.GetClass("NSMutableArray")
		appKit.clsArray = objc.GetClass("NSArray")
		appKit.clsAutoreleasePool = objc.GetClass("NSAutoreleasePool")

		appKit.selAlloc = objc.RegisterName("alloc")
		appKit.selInit = objc.RegisterName("init")
		appKit.selRelease = objc.RegisterName("release")

		appKit.selGeneralPasteboard = objc.RegisterName("generalPasteboard")
		appKit.selPasteboardWithName = objc.RegisterName("pasteboardWithName:")
		appKit.selPasteboardUniqueName = objc.RegisterName("pasteboardWithUniqueName")
		appKit.selSetStringForType = objc.RegisterName("setString:forType:")
		appKit.selStringForType = objc.RegisterName("stringForType:")
		appKit.selWriteObjects = objc.RegisterName("writeObjects:")
		appKit.selReadObjectsForClasses = objc.RegisterName("readObjectsForClasses:options:")
		appKit.selClearContents = objc.RegisterName("clearContents")
		appKit.selReleaseGlobally = objc.RegisterName("releaseGlobally")
		appKit.selChangeCount = objc.RegisterName("changeCount")
		appKit.selTypes = objc.RegisterName("types")

		appKit.selStringWithUTF8String = objc.RegisterName("stringWithUTF8String:")
		appKit.selUTF8String = objc.RegisterName("UTF8String")
		appKit.selURLWithString = objc.RegisterName("URLWithString:")
		appKit.selAbsoluteString = objc.RegisterName("absoluteString")
		appKit.selArrayWithObject = objc.RegisterName("arrayWithObject:")
		appKit.selArray = objc.RegisterName("array")
		appKit.selAddObject = objc.RegisterName("addObject:")
		appKit.selCount = objc.RegisterName("count")
		appKit.selObjectAtIndex = objc.RegisterName("objectAtIndex:")
	})
	return appKit.err
}

// NewAppKitService constructs the native pasteboard service, loading
// AppKit on first use.
func NewAppKitService() (Service, error) {
	if err := loadAppKit(); err != nil {
		return nil, err
	}
	return appKitService{}, nil
}

func newPlatformService() Service {
	svc, err := NewAppKitService()
	if err != nil {
		log.Warn().Err(err).Msg("native pasteboard unavailable, falling back to in-process service")
		return NewMemoryService(log.Logger)
	}
	return svc
}

// begin pins the goroutine to its OS thread and opens an autorelease pool.
// The returned func tears both down.
func (appKitService) begin() func() {
	runtime.LockOSThread()
	pool := objc.ID(appKit.clsAutoreleasePool).Send(appKit.selAlloc).Send(appKit.selInit)
	return func() {
		if pool != 0 {
			pool.Send(appKit.selRelease)
		}
		runtime.UnlockOSThread()
	}
}

func (s appKitService) General() Ref {
	defer s.begin()()
	return Ref(objc.ID(appKit.clsPasteboard).Send(appKit.selGeneralPasteboard))
}

func (s appKitService) Named(name Name) Ref {
	defer s.begin()()
	return Ref(objc.ID(appKit.clsPasteboard).Send(appKit.selPasteboardWithName, nsString(string(name))))
}

func (s appKitService) Unique() Ref {
	defer s.begin()()
	return Ref(objc.ID(appKit.clsPasteboard).Send(appKit.selPasteboardUniqueName))
}

func (appKitService) Release(Ref) {}

func (s appKitService) SetString(ref Ref, value, uti string) {
	defer s.begin()()
	objc.ID(ref).Send(appKit.selSetStringForType, nsString(value), nsString(uti))
}

func (s appKitService) WriteURLs(ref Ref, urls []string) {
	defer s.begin()()
	arr := objc.ID(appKit.clsMutableArray).Send(appKit.selArray)
	for _, raw := range urls {
		u := objc.ID(appKit.clsURL).Send(appKit.selURLWithString, nsString(raw))
		if u == 0 {
			continue
		}
		arr.Send(appKit.selAddObject, u)
	}
	objc.ID(ref).Send(appKit.selClearContents)
	objc.ID(ref).Send(appKit.selWriteObjects, arr)
}

func (s appKitService) ClearContents(ref Ref) {
	defer s.begin()()
	objc.ID(ref).Send(appKit.selClearContents)
}

func (s appKitService) ReleaseGlobally(ref Ref) {
	defer s.begin()()
	objc.ID(ref).Send(appKit.selReleaseGlobally)
}

func (s appKitService) GetString(ref Ref, uti string) (string, bool) {
	defer s.begin()()
	nsStr := objc.ID(ref).Send(appKit.selStringForType, nsString(uti))
	if nsStr == 0 {
		return "", false
	}
	return goString(nsStr), true
}

func (s appKitService) ReadFileURLs(ref Ref) ([]string, bool) {
	defer s.begin()()
	classes := objc.ID(appKit.clsArray).Send(appKit.selArrayWithObject, objc.ID(appKit.clsURL))
	contents := objc.ID(ref).Send(appKit.selReadObjectsForClasses, classes, objc.ID(0))
	if contents == 0 {
		return nil, false
	}

	count := int(contents.Send(appKit.selCount))
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		obj := contents.Send(appKit.selObjectAtIndex, i)
		if obj == 0 {
			continue
		}
		if abs := obj.Send(appKit.selAbsoluteString); abs != 0 {
			urls = append(urls, goString(abs))
		}
	}
	return urls, true
}

func (s appKitService) Types(ref Ref) []string {
	defer s.begin()()
	arr := objc.ID(ref).Send(appKit.selTypes)
	if arr == 0 {
		return nil
	}

	count := int(arr.Send(appKit.selCount))
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if t := arr.Send(appKit.selObjectAtIndex, i); t != 0 {
			out = append(out, goString(t))
		}
	}
	return out
}

func (s appKitService) ChangeCount(ref Ref) int64 {
	defer s.begin()()
	return int64(objc.ID(ref).Send(appKit.selChangeCount))
}

func nsString(str string) objc.ID {
	return objc.ID(appKit.clsString).Send(appKit.selStringWithUTF8String, str)
}

func goString(nsStr objc.ID) string {
	ptr := uintptr(nsStr.Send(appKit.selUTF8String))
	if ptr == 0 {
		return ""
	}
	var length int
	for {
		if *(*byte)(unsafe.Pointer(ptr + uintptr(length))) == 0 {
			break
		}
		length++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}
