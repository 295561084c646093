// Package media turns stored upload paths into the URLs clients download them from.
package media

import (
	"context"
	"net/url"
	"strings"

	"github.com/volatiletech/null/v8"
)

// Resolver maps a stored file path such as "members/alice.jpg" to a public URL.
// An empty path resolves to null.
type Resolver interface {
	URL(ctx context.Context, path string) null.String
}

type baseURLKey struct{}

// WithBaseURL attaches the scheme and host of the current request, used to make
// relative media URLs absolute.
func WithBaseURL(ctx context.Context, base string) context.Context {
	return context.WithValue(ctx, baseURLKey{}, strings.TrimRight(base, "/"))
}

// BaseURL returns the value stored by WithBaseURL, or "".
func BaseURL(ctx context.Context) string {
	base, _ := ctx.Value(baseURLKey{}).(string)
	return base
}

// LocalResolver serves files from a URL prefix, e.g. "/media/" in front of the
// application or "https://cdn.example.org/media/".
type LocalResolver struct {
	prefix string
}

func NewLocalResolver(prefix string) *LocalResolver {
	if prefix == "" {
		prefix = "/media/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &LocalResolver{prefix: prefix}
}

func (r *LocalResolver) URL(ctx context.Context, path string) null.String {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return null.String{}
	}

	escaped := (&url.URL{Path: path}).EscapedPath()
	full := r.prefix + escaped
	if strings.HasPrefix(full, "/") {
		if base := BaseURL(ctx); base != "" {
			full = base + full
		}
	}
	return null.StringFrom(full)
}
