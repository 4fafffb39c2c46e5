package domain

import "context"

// ImageStore gives access to the images on the local disk.
type ImageStore interface {
	// Exists reports whether anything exists at `path`.
	Exists(path string) bool
	// Read returns the file content as-is.
	Read(path string) ([]byte, error)
	// DetectMIMEType sniffs the MIME type of the content.
	DetectMIMEType(data []byte) string
}

// Poster delivers the payload to the posting API.
type Poster interface {
	Submit(ctx context.Context, apiURL string, post *Post) (*Response, error)
}

// HealthProbe fetches the API's health endpoint.
type HealthProbe interface {
	Probe(ctx context.Context, healthURL string) (*Response, error)
}

// URLFinder tells remote image sources from local file paths.
type URLFinder interface {
	IsURL(str string) bool
}
