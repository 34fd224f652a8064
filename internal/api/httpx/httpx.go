package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/baharkarakas/airdrop-scanner/internal/models"
)

var ErrBodyTooLarge = errors.New("request body too large")

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = sonic.ConfigStd.NewEncoder(w).Encode(v)
}

// WriteMessage writes the {"message": ...} body used for every error status.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, models.MessageResponse{Message: msg})
}

// DecodeAny reads at most limit bytes of JSON into a generic value.
// limit <= 0 means no cap.
func DecodeAny(r *http.Request, limit int64) (any, error) {
	var body io.Reader = r.Body
	if limit > 0 {
		body = io.LimitReader(r.Body, limit+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if limit > 0 && int64(len(raw)) > limit {
		return nil, ErrBodyTooLarge
	}
	var v any
	if err := sonic.ConfigStd.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return v, nil
}
