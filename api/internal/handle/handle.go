package handle

import (
	"encoding/json"
	"net/http"

	"vision-guard/api/internal/detect"
)

type Handle struct {
	analyzer *detect.Analyzer
}

func New(a *detect.Analyzer) *Handle {
	return &Handle{
		analyzer: a,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
