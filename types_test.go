package pasteboard_test

import (
	"testing"

	"github.com/glasspane/pasteboard"
)

func TestType_IdentifierBijection(t *testing.T) {
	seen := make(map[string]pasteboard.Type)

	for _, kind := range pasteboard.RegisteredTypes() {
		uti := kind.UTI()
		if uti == "" {
			t.Errorf("%v has no identifier", kind)
			continue
		}
		if prev, dup := seen[uti]; dup {
			t.Errorf("identifier %q claimed by both %v and %v", uti, prev, kind)
		}
		seen[uti] = kind

		back, ok := pasteboard.TypeFromUTI(uti)
		if !ok {
			t.Errorf("identifier %q does not resolve back", uti)
		} else if back != kind {
			t.Errorf("identifier %q resolves to %v, want %v", uti, back, kind)
		}
	}
}

func TestType_WellKnownIdentifiers(t *testing.T) {
	tests := []struct {
		kind pasteboard.Type
		uti  string
	}{
		{pasteboard.TypeString, "public.utf8-plain-text"},
		{pasteboard.TypeFileURL, "public.file-url"},
		{pasteboard.TypePDF, "com.adobe.pdf"},
		{pasteboard.TypeRTFD, "com.apple.flat-rtfd"},
		{pasteboard.TypeFont, "com.apple.cocoa.pasteboard.character-formatting"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.UTI(); got != tt.uti {
				t.Errorf("expected %q, got %q", tt.uti, got)
			}
		})
	}
}

func TestTypeFromUTI_OutsideRegistry(t *testing.T) {
	for _, uti := range []string{"", "com.example.bogus", "public.utf8-plain-text "} {
		if kind, ok := pasteboard.TypeFromUTI(uti); ok {
			t.Errorf("identifier %q should not resolve, got %v", uti, kind)
		}
	}
}

func TestType_UnknownValues(t *testing.T) {
	unknown := pasteboard.Type(-1)
	if unknown.UTI() != "" {
		t.Errorf("expected no identifier for out-of-range value, got %q", unknown.UTI())
	}
	if unknown.String() != "unknown" {
		t.Errorf("expected %q, got %q", "unknown", unknown.String())
	}
}

func TestRegisteredTypes_ReturnsCopy(t *testing.T) {
	first := pasteboard.RegisteredTypes()
	first[0] = pasteboard.Type(1000)

	second := pasteboard.RegisteredTypes()
	if second[0] == pasteboard.Type(1000) {
		t.Error("mutating the returned slice must not leak into the registry")
	}
}
