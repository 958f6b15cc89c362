package domain

import "strings"

// Request is the transport-independent view of an incoming asset request.
// Boundary adapters construct it from their native request objects and pass
// it by value into the responder.
type Request struct {
	Path    string
	Query   map[string]string
	Headers map[string]string
}

// Header returns the value of the named header, matching case-insensitively.
func (r Request) Header(name string) (string, bool) {
	if v, ok := r.Headers[name]; ok {
		return v, true
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// Version returns the version token from the query, if any.
func (r Request) Version() (string, bool) {
	v, ok := r.Query[VersionParam]
	return v, ok
}

// Response is the outcome of handling a Request. Boundary adapters translate
// it back into their native response objects.
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}
