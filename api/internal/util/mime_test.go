package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeDataURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AAAA", MakeDataURL("image/png", "AAAA"))
}

func TestDecodeBase64Loose(t *testing.T) {
	data := []byte{0xFF, 0xEF, 0x01}

	std, err := DecodeBase64Loose(base64.StdEncoding.EncodeToString(data))
	require.NoError(t, err)
	assert.Equal(t, data, std)

	urlSafe, err := DecodeBase64Loose(base64.URLEncoding.EncodeToString(data))
	require.NoError(t, err)
	assert.Equal(t, data, urlSafe)

	_, err = DecodeBase64Loose("@@@@")
	assert.Error(t, err)
}
