package detect

import (
	"fmt"
	"strings"

	"vision-guard/api/internal/util"
)

// DecodeImage разбирает base64-строку или data:URI в ImagePart.
// MIME берём из заголовка до первой запятой: jpeg только если он назван явно,
// при любом другом заголовке png; без заголовка считаем jpeg.
func DecodeImage(raw string) (ImagePart, error) {
	s := strings.TrimSpace(raw)

	body := s
	mime := "image/jpeg"
	if i := strings.IndexByte(s, ','); i != -1 {
		header := s[:i]
		body = s[i+1:]
		if strings.Contains(header, "image/jpeg") || strings.Contains(header, "image/jpg") {
			mime = "image/jpeg"
		} else {
			mime = "image/png"
		}
	}

	data, err := util.DecodeBase64Loose(body)
	if err != nil {
		return ImagePart{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return ImagePart{MIMEType: mime, Data: data}, nil
}
