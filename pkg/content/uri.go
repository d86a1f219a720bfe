package content

import "strings"

// URIBuilder turns a relative path into an absolute, externally
// reachable URI under the configured public base.
type URIBuilder struct {
	base string
}

func NewURIBuilder(publicBaseURL string) *URIBuilder {
	return &URIBuilder{base: strings.TrimRight(publicBaseURL, "/")}
}

func (b *URIBuilder) Build(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.base + path
}
