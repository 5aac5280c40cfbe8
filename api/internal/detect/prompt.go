package detect

// BuildPrompt возвращает фиксированную инструкцию для vision-модели.
// Формат ответа здесь — контракт, на который опирается ParseModelOutput:
// меняя текст, меняй и валидатор.
func BuildPrompt() string {
	return "You are a vision safety analyzer. Analyze the provided image and respond with a single JSON object. " +
		"Determine if any weapon is present focusing on guns and knives. Extract any readable text using optical character recognition. " +
		"Return strictly formatted JSON with fields: " +
		"weapon_detected (boolean), gun_detected (boolean), knife_detected (boolean), extracted_text (string). " +
		"Use true or false for booleans. Do not include markdown, code fences, or additional commentary. " +
		"If no text is readable, extracted_text must be an empty string. "
}
