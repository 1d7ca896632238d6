package pasteboard

// Type is one of the logical content kinds this layer moves through the
// pasteboard server. The set is closed; every Type maps to exactly one
// canonical server type identifier and back.
type Type int32

const (
	TypeString Type = iota
	TypeFileURL
	TypeURL
	TypeHTML
	TypePDF
	TypePNG
	TypeRTF
	TypeRTFD
	TypeTIFF
	TypeTabularText
	TypeMultipleTextSelection
	TypeFont
	TypeColor
	TypeRuler
	TypeSound
)

var allTypes = []Type{
	TypeString,
	TypeFileURL,
	TypeURL,
	TypeHTML,
	TypePDF,
	TypePNG,
	TypeRTF,
	TypeRTFD,
	TypeTIFF,
	TypeTabularText,
	TypeMultipleTextSelection,
	TypeFont,
	TypeColor,
	TypeRuler,
	TypeSound,
}

var utiIndex map[string]Type

func init() {
	utiIndex = make(map[string]Type, len(allTypes))
	for _, t := range allTypes {
		utiIndex[t.UTI()] = t
	}
}

// UTI returns the canonical type identifier the pasteboard server uses
// for t. Unknown values map to the empty string.
func (t Type) UTI() string {
	switch t {
	case TypeString:
		return "public.utf8-plain-text"
	case TypeFileURL:
		return "public.file-url"
	case TypeURL:
		return "public.url"
	case TypeHTML:
		return "public.html"
	case TypePDF:
		return "com.adobe.pdf"
	case TypePNG:
		return "public.png"
	case TypeRTF:
		return "public.rtf"
	case TypeRTFD:
		return "com.apple.flat-rtfd"
	case TypeTIFF:
		return "public.tiff"
	case TypeTabularText:
		return "public.utf8-tab-separated-values-text"
	case TypeMultipleTextSelection:
		return "com.apple.cocoa.pasteboard.multiple-text-selection"
	case TypeFont:
		return "com.apple.cocoa.pasteboard.character-formatting"
	case TypeColor:
		return "com.apple.cocoa.pasteboard.color"
	case TypeRuler:
		return "com.apple.cocoa.pasteboard.paragraph-formatting"
	case TypeSound:
		return "com.apple.cocoa.pasteboard.sound"
	default:
		return ""
	}
}

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeFileURL:
		return "file-url"
	case TypeURL:
		return "url"
	case TypeHTML:
		return "html"
	case TypePDF:
		return "pdf"
	case TypePNG:
		return "png"
	case TypeRTF:
		return "rtf"
	case TypeRTFD:
		return "rtfd"
	case TypeTIFF:
		return "tiff"
	case TypeTabularText:
		return "tabular-text"
	case TypeMultipleTextSelection:
		return "multiple-text-selection"
	case TypeFont:
		return "font"
	case TypeColor:
		return "color"
	case TypeRuler:
		return "ruler"
	case TypeSound:
		return "sound"
	default:
		return "unknown"
	}
}

// RegisteredTypes returns every content kind this layer understands, in
// declaration order. The returned slice is a copy.
func RegisteredTypes() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// TypeFromUTI resolves a server type identifier back to its logical kind.
// Identifiers outside the registry report false.
func TypeFromUTI(uti string) (Type, bool) {
	t, ok := utiIndex[uti]
	return t, ok
}
