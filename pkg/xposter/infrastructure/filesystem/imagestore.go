package filesystem

import (
	"os"

	"github.com/gabriel-vasile/mimetype"
)

type ImageStore struct{}

func NewImageStore() *ImageStore {
	return &ImageStore{}
}

func (i *ImageStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (i *ImageStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (i *ImageStore) DetectMIMEType(data []byte) string {
	return mimetype.Detect(data).String()
}
