package web

import (
	"strings"

	"github.com/mvdan/xurls"
)

type URLFinder struct{}

func NewURLFinder() *URLFinder {
	return &URLFinder{}
}

// IsURL is true only if the whole string is a single http(s) URL: local paths which merely contain something
// URL-like (e.g. "C:\photos\example.com.jpg") stay local.
func (u *URLFinder) IsURL(str string) bool {
	str = strings.TrimSpace(str)
	lower := strings.ToLower(str)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	return xurls.Strict.FindString(str) == str
}
