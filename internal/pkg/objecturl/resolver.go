// Package objecturl resolves stored object keys to public URLs. Resolution is
// a pure string operation; the object store itself is never contacted.
package objecturl

import "strings"

type Resolver struct {
	baseURL string
}

func NewResolver(publicBaseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// ToURL returns the public URL for an object key, or nil when there is no key.
func (r *Resolver) ToURL(objectKey *string) *string {
	if objectKey == nil || *objectKey == "" {
		return nil
	}
	u := r.baseURL + "/" + strings.TrimLeft(*objectKey, "/")
	return &u
}
