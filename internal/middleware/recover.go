package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"petcare-api/internal/platform/httpjson"
)

// Recover reemplaza a chi/middleware.Recoverer: loguea el panic con el logger
// del request y responde el mismo 500 JSON que el resto de la API.
// Debe ir después de RequestLogger.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			LoggerFrom(r.Context()).Error("panic recovered", map[string]any{
				"panic": fmt.Sprint(rec),
				"stack": string(debug.Stack()),
			})
			httpjson.WriteDetail(w, http.StatusInternalServerError, "Internal Server Error")
		}()

		next.ServeHTTP(w, r)
	})
}
