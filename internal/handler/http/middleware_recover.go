package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-notes/internal/logger"
)

// withRecover turns a panic in a handler into a logged 500 with the usual
// {"detail": ...} body. http.ErrAbortHandler is re-raised so net/http can
// drop the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			writeDetail(w, http.StatusInternalServerError, detailInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
