package domain

import (
	"encoding/base64"
	"errors"
	"strings"
)

var errMalformedDataURI = errors.New("malformed data URI")

const (
	dataURIScheme       = "data:"
	dataURIBase64Marker = ";base64,"
)

// EncodeDataURI embeds binary content as "data:<mimeType>;base64,<payload>".
func EncodeDataURI(mimeType string, data []byte) string {
	var sb strings.Builder
	sb.Grow(len(dataURIScheme) + len(mimeType) + len(dataURIBase64Marker) + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString(dataURIScheme)
	sb.WriteString(mimeType)
	sb.WriteString(dataURIBase64Marker)
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String()
}

// DecodeDataURI is the inverse of EncodeDataURI.
func DecodeDataURI(dataURI string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(dataURI, dataURIScheme) {
		return "", nil, errMalformedDataURI
	}
	header, payload, ok := strings.Cut(dataURI[len(dataURIScheme):], dataURIBase64Marker)
	if !ok || header == "" {
		return "", nil, errMalformedDataURI
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return header, data, nil
}
