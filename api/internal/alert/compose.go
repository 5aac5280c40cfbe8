package alert

import (
	"encoding/base64"
	"fmt"
	"html"

	"vision-guard/api/internal/detect"
	"vision-guard/api/internal/util"
)

const weaponSubject = "Weapon detected"

// ComposeWeaponAlert собирает тему и HTML-тело письма: четыре поля результата
// плюс превью исходного снимка как data:URI.
func ComposeWeaponAlert(res detect.DetectionResult, img detect.ImagePart) (subject, htmlBody string) {
	body := fmt.Sprintf(
		"<h3>Alert</h3>"+
			"<p>Weapon detected: %v</p>"+
			"<p>Gun detected: %v</p>"+
			"<p>Knife detected: %v</p>"+
			"<p>Extracted text:</p><pre>%s</pre>",
		res.WeaponDetected, res.GunDetected, res.KnifeDetected,
		html.EscapeString(res.ExtractedText),
	)
	if len(img.Data) > 0 {
		preview := util.MakeDataURL(img.MIMEType, base64.StdEncoding.EncodeToString(img.Data))
		body += fmt.Sprintf(`<p><img src=%q alt="detection"/></p>`, preview)
	}
	return weaponSubject, body
}
