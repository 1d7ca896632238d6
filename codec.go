package pasteboard

import "net/url"

// fileURL renders a filesystem path as the URL string written to the board.
// The path is prefixed verbatim; the server and readers handle escaping.
func fileURL(path string) string {
	return "file://" + path
}

// decodeFileURLs parses raw board objects back into URLs, keeping only the
// file URLs this layer understands and preserving server order.
func decodeFileURLs(raw []string) []*url.URL {
	out := make([]*url.URL, 0, len(raw))
	for _, s := range raw {
		u, err := url.Parse(s)
		if err != nil || u.Scheme != "file" {
			continue
		}
		out = append(out, u)
	}
	return out
}

// filePaths reduces file URLs to their filesystem paths, percent-decoded.
func filePaths(urls []*url.URL) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		out = append(out, u.Path)
	}
	return out
}
