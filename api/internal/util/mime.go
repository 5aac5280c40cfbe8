package util

import "encoding/base64"

// MakeDataURL собирает data:URI из MIME и base64-пейлоада.
func MakeDataURL(mime, b64 string) string {
	return "data:" + mime + ";base64," + b64
}

// DecodeBase64Loose декодирует base64: стандартный алфавит, затем URL-safe — на случай вариаций.
func DecodeBase64Loose(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	} else if b2, err2 := base64.URLEncoding.DecodeString(s); err2 == nil {
		return b2, nil
	} else {
		return nil, err
	}
}
