package pasteboard

// Name addresses a pasteboard store on the server. The standard stores are
// listed below; any other value names a custom store, created server-side
// on first use.
type Name string

// Standard server-side pasteboard stores.
const (
	NameGeneral Name = "Apple CFPasteboard general"
	NameDrag    Name = "Apple CFPasteboard drag"
	NameFind    Name = "Apple CFPasteboard find"
	NameFont    Name = "Apple CFPasteboard font"
	NameRuler   Name = "Apple CFPasteboard ruler"
)
