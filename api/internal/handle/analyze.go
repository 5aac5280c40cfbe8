package handle

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"vision-guard/api/internal/detect"
)

type AnalyzeRequest struct {
	ImageBase64 string `json:"image_base64"`
}

func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "POST only"})
		return
	}
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "bad json: " + err.Error()})
		return
	}

	deadline := 180 * time.Second
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), deadline)
	defer cancel()

	res, err := h.analyzer.Analyze(ctx, req.ImageBase64)
	if err != nil {
		log.Printf("analyze error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": errDetail(err)})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// errDetail — формулировка класса ошибки для клиента; детали остаются в логе.
func errDetail(err error) string {
	switch {
	case errors.Is(err, detect.ErrDecode):
		return "invalid image payload"
	case errors.Is(err, detect.ErrEmptyResult):
		return "empty or blocked model response"
	case errors.Is(err, detect.ErrMalformed):
		return "malformed model response"
	case errors.Is(err, detect.ErrBackendUnavailable):
		return "inference backend unavailable"
	}
	return "analyze failed"
}
