package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURI(t *testing.T) {
	data := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	dataURI := EncodeDataURI("image/jpeg", data)

	assert.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(data), dataURI)

	mimeType, decoded, err := DecodeDataURI(dataURI)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	assert.Equal(t, data, decoded)
}

func TestEncodeDataURIEmpty(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,", EncodeDataURI("image/png", nil))
}

func TestDecodeDataURIMalformed(t *testing.T) {
	for _, dataURI := range []string{
		"",
		"image/jpeg;base64,AAAA",
		"data:image/jpeg,AAAA",
		"data:;base64,AAAA",
		"data:image/jpeg;base64,***",
	} {
		_, _, err := DecodeDataURI(dataURI)
		assert.Error(t, err, dataURI)
	}
}
