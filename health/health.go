// Package health exposes the liveness endpoint used by the hosting
// platform. It runs independently of the bot's event loop.
package health

import (
	"net/http"

	"github.com/gorilla/mux"

	"drama-bot/utils"
)

// NewRouter builds the health router: GET /health answers 200 "OK", every
// other path 404.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	})
	return r
}

// Start runs the health server on addr. It blocks, so callers run it on its
// own goroutine.
func Start(addr string) {
	utils.Info("health", "start", "health check server listening on "+addr)
	if err := http.ListenAndServe(addr, NewRouter()); err != nil {
		utils.Error("health", "start", "health server stopped: "+err.Error())
	}
}
