package detect

import "errors"

// Классы ошибок пайплайна. Клиент видит только класс, подробности идут в лог.
var (
	ErrDecode             = errors.New("bad image payload")
	ErrBackendUnavailable = errors.New("inference backend unavailable")
	ErrEmptyResult        = errors.New("empty inference result")
	ErrMalformed          = errors.New("malformed model response")
)
