package detect

// DetectionResult — итог анализа одного снимка. Все четыре поля присутствуют всегда:
// отсутствующие у модели значения заменяются на false/"" ещё при разборе.
type DetectionResult struct {
	WeaponDetected bool   `json:"weapon_detected"`
	GunDetected    bool   `json:"gun_detected"`
	KnifeDetected  bool   `json:"knife_detected"`
	ExtractedText  string `json:"extracted_text"`
}

// ImagePart — бинарный снимок с MIME для мультимодального запроса.
// Живёт в пределах одного запроса, никуда не сохраняется.
type ImagePart struct {
	MIMEType string
	Data     []byte
}
