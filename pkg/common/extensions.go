package common

import (
	"path/filepath"
	"strings"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// IsImageFormat tells by the extension whether `path` (a file path or a URL) looks like an image.
func IsImageFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, imageExt := range imageExtensions {
		if ext == imageExt {
			return true
		}
	}
	return false
}
