package detect

import (
	"encoding/json"
	"fmt"

	"vision-guard/api/internal/util"
)

// ParseModelOutput приводит сырой текст модели к DetectionResult.
// Поля коэрсим, а не отбраковываем: отсутствующее поле это false/"",
// ошибка только на непарсибельном JSON.
func ParseModelOutput(raw string) (DetectionResult, error) {
	txt := util.StripCodeFences(raw)

	var m map[string]any
	if err := json.Unmarshal([]byte(txt), &m); err != nil {
		return DetectionResult{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return DetectionResult{
		WeaponDetected: truthy(m["weapon_detected"]),
		GunDetected:    truthy(m["gun_detected"]),
		KnifeDetected:  truthy(m["knife_detected"]),
		ExtractedText:  stringify(m["extracted_text"]),
	}, nil
}

// truthy — правдивость значения из JSON: false/0/""/пустые коллекции дают false.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return true
}

// stringify — строковое представление; ложные значения сводятся к пустой строке.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if !x {
			return ""
		}
	case float64:
		if x == 0 {
			return ""
		}
	case []any:
		if len(x) == 0 {
			return ""
		}
	case map[string]any:
		if len(x) == 0 {
			return ""
		}
	}
	return fmt.Sprint(v)
}
