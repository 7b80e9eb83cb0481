package web

import (
	"encoding/json"
	"net/http"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"go.uber.org/zap"
)

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Error writes the classified error to the caller. Internal errors are logged
// with their cause and surfaced as a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	if apperr.KindOf(err) == apperr.Internal {
		zap.L().Error("internal error",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err))
	}
	Respond(w, apperr.Status(err), map[string]string{"error": apperr.Message(err)})
}
